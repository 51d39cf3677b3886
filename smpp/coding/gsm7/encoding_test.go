package gsm7

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/transform"
)

func TestEncodingBytes(t *testing.T) {
	assert := assert.New(t)

	enc := ShiftTables{}.Encoding()
	septets, err := enc.NewEncoder().Bytes([]byte("[x]€"))
	assert.NoError(err)
	assert.Equal([]byte{0x1B, 0x3C, 0x78, 0x1B, 0x3E, 0x1B, 0x65}, septets)

	text, err := enc.NewDecoder().Bytes(septets)
	assert.NoError(err)
	assert.Equal("[x]€", string(text))

	// unknown characters degrade to a space, like Encode
	lossy, err := enc.NewEncoder().String("pay 3M₽")
	assert.NoError(err)
	assert.Equal("pay 3M ", lossy)

	text, err = enc.NewDecoder().Bytes([]byte{'A', Escape})
	assert.NoError(err)
	assert.Equal("A ", string(text))

	assert.Equal("GSM 7-bit (turkish/default)", ShiftTables{Locking: Turkish}.Encoding().(interface{ String() string }).String())
}

func TestEncodingNational(t *testing.T) {
	assert := assert.New(t)

	enc := ShiftTables{Locking: Hindi}.Encoding()
	septets, err := enc.NewEncoder().String("नमस्ते")
	assert.NoError(err)
	assert.Equal([]byte{0x2F, 0x42, 0x4C, 0x5F, 0x27, 0x59}, []byte(septets))

	text, err := enc.NewDecoder().String(septets)
	assert.NoError(err)
	assert.Equal("नमस्ते", text)
}

// oneByteReader hands out a single byte per Read so transformers see every
// possible chunk boundary.
type oneByteReader struct {
	r io.Reader
}

func (o oneByteReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	return o.r.Read(p[:1])
}

func TestEncodingChunked(t *testing.T) {
	assert := assert.New(t)

	enc := ShiftTables{Single: Turkish}.Encoding()

	// multi-byte runes split across reads
	r := transform.NewReader(oneByteReader{bytes.NewReader([]byte("Ğ€a"))}, enc.NewEncoder())
	septets, err := io.ReadAll(r)
	assert.NoError(err)
	assert.Equal([]byte{0x1B, 0x47, 0x1B, 0x65, 0x61}, septets)

	// escapes split from the septet they modify
	r = transform.NewReader(oneByteReader{bytes.NewReader(septets)}, enc.NewDecoder())
	text, err := io.ReadAll(r)
	assert.NoError(err)
	assert.Equal("Ğ€a", string(text))

	// a dangling escape at EOF still yields a space
	r = transform.NewReader(oneByteReader{bytes.NewReader([]byte{'a', Escape})}, enc.NewDecoder())
	text, err = io.ReadAll(r)
	assert.NoError(err)
	assert.Equal("a ", string(text))
}

func TestEncodingShortDst(t *testing.T) {
	assert := assert.New(t)

	dec := ShiftTables{}.Encoding().NewDecoder()
	dst := make([]byte, 2)

	// € needs 3 bytes; the escape must survive the failed attempt
	nDst, nSrc, err := dec.Transform(dst, []byte{'a', Escape, 0x65}, true)
	assert.ErrorIs(err, transform.ErrShortDst)
	assert.Equal(1, nDst)
	assert.Equal(2, nSrc)

	dst = make([]byte, 8)
	nDst, nSrc, err = dec.Transform(dst, []byte{0x65}, true)
	assert.NoError(err)
	assert.Equal(1, nSrc)
	assert.Equal("€", string(dst[:nDst]))

	enc := ShiftTables{}.Encoding().NewEncoder()
	nDst, nSrc, err = enc.Transform(make([]byte, 1), []byte("€"), true)
	assert.ErrorIs(err, transform.ErrShortDst)
	assert.Equal(0, nDst)
	assert.Equal(0, nSrc)
}
