package coding

import (
	"strings"
	"testing"

	smpppdu "github.com/M2MGateway/go-smpp/pdu"
	"github.com/stretchr/testify/assert"

	"msggw-gsm7/smpp/coding/gsm7"
	"msggw-gsm7/smpp/pdu"
)

func TestHeader(t *testing.T) {
	assert := assert.New(t)

	assert.Nil(Header{}.Bytes())
	assert.Nil(Header{Total: 1, Seq: 1}.Bytes())

	h := Header{
		Tables: gsm7.ShiftTables{Single: gsm7.Spanish, Locking: gsm7.Turkish},
		Ref:    7,
		Total:  2,
		Seq:    1,
	}
	raw := h.Bytes()
	assert.Equal([]byte{11, 0x00, 3, 7, 2, 1, 0x24, 1, 2, 0x25, 1, 1}, raw)

	parsed, rest, err := ParseHeader(append(raw, 'h', 'i'))
	assert.NoError(err)
	assert.Equal(h, parsed)
	assert.Equal([]byte("hi"), rest)

	udh := h.UserDataHeader()
	assert.Equal(smpppdu.UserDataHeader{
		0x00: {7, 2, 1},
		0x24: {2},
		0x25: {1},
	}, udh)
	assert.Equal(len(raw), udh.Len())
	assert.Equal(&smpppdu.ConcatenatedHeader{Reference: 7, TotalParts: 2, Sequence: 1}, udh.ConcatenatedHeader())
	assert.Nil(Header{Tables: gsm7.ShiftTables{}}.UserDataHeader())
}

func TestParseHeaderElements(t *testing.T) {
	assert := assert.New(t)

	// every element counts, not only the first one
	h, rest, err := ParseHeader([]byte{8, 0x00, 3, 12, 3, 2, 0x24, 1, 1, 0xE9})
	assert.NoError(err)
	assert.Equal(Header{Tables: gsm7.ShiftTables{Single: gsm7.Turkish}, Ref: 12, Total: 3, Seq: 2}, h)
	assert.Equal([]byte{0xE9}, rest)

	// 16-bit concatenation reference
	h, _, err = ParseHeader([]byte{6, 0x08, 4, 0xF4, 0x2E, 2, 1})
	assert.NoError(err)
	assert.Equal(Header{Ref: 62510, Total: 2, Seq: 1}, h)
	assert.Equal([]byte{6, 0x08, 4, 0xF4, 0x2E, 2, 1}, Header{Ref: 62510, Total: 2, Seq: 1}.Bytes())

	_, _, err = ParseHeader([]byte{5, 0x08, 3, 0xF4, 0x2E, 2})
	assert.ErrorIs(err, pdu.ErrInvalidHeader)
}

func TestParseHeader(t *testing.T) {
	assert := assert.New(t)

	// unknown elements are skipped, unknown languages fall back to default
	h, rest, err := ParseHeader([]byte{6, 0x70, 1, 0xFF, 0x25, 1, 42, 'x'})
	assert.NoError(err)
	assert.Equal(Header{}, h)
	assert.Equal([]byte("x"), rest)

	for _, raw := range [][]byte{
		nil,
		{5, 0x00, 3, 1},
		{3, 0x00, 3, 1},
		{4, 0x00, 2, 1, 1},
		{4, 0x24, 2, 1, 1},
		{1, 0x24},
	} {
		_, _, err := ParseHeader(raw)
		assert.ErrorIs(err, pdu.ErrInvalidHeader, "%v", raw)
	}
}

func TestSegments(t *testing.T) {
	assert := assert.New(t)

	segments, err := Segments("hi", GSM7BitCoding, gsm7.ShiftTables{}, 9)
	assert.NoError(err)
	assert.Len(segments, 1)
	assert.Nil(segments[0].Header)
	assert.Equal([]byte("hi"), segments[0].Payload)

	segments, err = Segments(strings.Repeat("a", 161), GSM7BitCoding, gsm7.ShiftTables{}, 9)
	assert.NoError(err)
	assert.Len(segments, 2)
	assert.Equal([]byte{5, 0x00, 3, 9, 2, 1}, segments[0].Header)
	assert.Equal([]byte{5, 0x00, 3, 9, 2, 2}, segments[1].Header)
	assert.Len(segments[0].Payload, 153)
	assert.Len(segments[1].Payload, 8)

	turkish := gsm7.ShiftTables{Locking: gsm7.Turkish}
	segments, err = Segments("Ğ", GSM7BitCoding, turkish, 0)
	assert.NoError(err)
	assert.Equal([]byte{3, 0x25, 1, 1}, segments[0].Header)
	assert.Equal([]byte{0x0B}, segments[0].Payload)

	// shift tables mean nothing outside GSM 7-bit
	segments, err = Segments("Ж", UCS2Coding, turkish, 0)
	assert.NoError(err)
	assert.Nil(segments[0].Header)
	assert.Equal([]byte{0x04, 0x16}, segments[0].Payload)
}
