package main

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"msggw-gsm7/smpp/coding/gsm7"
	"msggw-gsm7/smpp/pdu"
)

// memorySink keeps records for assertions.
type memorySink struct {
	mu   sync.Mutex
	recs []ConversionRecord
}

func (s *memorySink) Record(rec ConversionRecord) {
	s.mu.Lock()
	s.recs = append(s.recs, rec)
	s.mu.Unlock()
}

func (s *memorySink) last() ConversionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recs[len(s.recs)-1]
}

func newTestTranscoder() (*Transcoder, *memorySink) {
	sink := &memorySink{}
	return NewTranscoder(NewMetrics(), sink), sink
}

func TestTranscoderEncode(t *testing.T) {
	tr, sink := newTestTranscoder()

	t.Run("packed", func(t *testing.T) {
		assert := assert.New(t)
		resp, err := tr.Encode(EncodeRequest{Text: "Hello"}, "test")
		require.NoError(t, err)
		assert.Equal("c8329bfd06", resp.Payload)
		assert.Equal(5, resp.Octets)
		assert.Equal(5, resp.Septets)
		assert.NotEmpty(resp.ID)
		assert.Empty(resp.Missed)

		rec := sink.last()
		assert.Equal(resp.ID, rec.LogID)
		assert.Equal("encode", rec.Operation)
		assert.Equal("gsm7", rec.Coding)
		assert.Equal(5, rec.Octets)
	})

	t.Run("unpacked", func(t *testing.T) {
		resp, err := tr.Encode(EncodeRequest{Text: "[x]", Unpacked: true}, "test")
		require.NoError(t, err)
		assert.Equal(t, "1b3c781b3e", resp.Payload)
		assert.Equal(t, 5, resp.Septets)
	})

	t.Run("cr padding", func(t *testing.T) {
		resp, err := tr.Encode(EncodeRequest{Text: "abcdefg", CRPadding: true}, "test")
		require.NoError(t, err)
		assert.Equal(t, "61f1985c369f1b", resp.Payload)
	})

	t.Run("auto tables", func(t *testing.T) {
		assert := assert.New(t)
		resp, err := tr.Encode(EncodeRequest{Text: "Ğ", Auto: true}, "test")
		require.NoError(t, err)
		assert.Equal(gsm7.ShiftTables{Locking: gsm7.Turkish}, resp.Tables)
		assert.Equal("0b", resp.Payload)
		assert.Equal("turkish", sink.last().Locking)
	})

	t.Run("lossy", func(t *testing.T) {
		assert := assert.New(t)
		resp, err := tr.Encode(EncodeRequest{Text: "pay 3M₽ now ₽"}, "test")
		require.NoError(t, err)
		assert.Equal([]string{"₽"}, resp.Missed)

		rec := sink.last()
		assert.Equal(2, rec.Missed)
		assert.Equal("pay 3M₽ now ₽", rec.Sample)
	})

	t.Run("bad tables", func(t *testing.T) {
		_, err := tr.Encode(EncodeRequest{Text: "x", Tables: gsm7.ShiftTables{Single: 99}}, "test")
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})
}

func TestTranscoderDecode(t *testing.T) {
	tr, sink := newTestTranscoder()

	tests := []struct {
		name string
		req  DecodeRequest
		text string
	}{
		{"packed", DecodeRequest{Payload: "c8329bfd06"}, "Hello"},
		{"unpacked", DecodeRequest{Payload: "1b3c781b3e", Unpacked: true}, "[x]"},
		{"cr padding", DecodeRequest{Payload: "61f1985c369f1b", CRPadding: true}, "abcdefg"},
		{"national tables", DecodeRequest{Payload: "0b", Tables: gsm7.ShiftTables{Locking: gsm7.Turkish}}, "Ğ"},
		{"ucs2", DecodeRequest{Payload: "04160061", Coding: "ucs2"}, "Жa"},
		{"latin1", DecodeRequest{Payload: "e921", Coding: "latin1"}, "é!"},
		// turkish locking announced in the header, text after 3 fill bits
		{"packed with header", DecodeRequest{Payload: "032501015800", UDH: true}, "Ğ"},
		{"unpacked with header", DecodeRequest{Payload: "0325010161", UDH: true, Unpacked: true}, "a"},
		{"ucs2 with header", DecodeRequest{Payload: "050003070201" + "0416", UDH: true, Coding: "ucs2"}, "Ж"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := tr.Decode(tt.req, "test")
			require.NoError(t, err)
			assert.Equal(t, tt.text, resp.Text)
			assert.Equal(t, len([]rune(tt.text)), resp.CodePoints)
		})
	}

	resp, err := tr.Decode(DecodeRequest{Payload: "032501015800", UDH: true}, "test")
	require.NoError(t, err)
	assert.Equal(t, gsm7.Turkish, resp.Tables.Locking)
	assert.Equal(t, "decode", sink.last().Operation)

	for name, req := range map[string]DecodeRequest{
		"not hex":        {Payload: "zz"},
		"unknown coding": {Payload: "00", Coding: "ebcdic"},
		"bad header":     {Payload: "0900", UDH: true},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := tr.Decode(req, "test")
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}

func TestTranscoderSeek(t *testing.T) {
	tr, sink := newTestTranscoder()
	assert := assert.New(t)

	resp, err := tr.Seek(SeekRequest{Text: "23€"}, "test")
	require.NoError(t, err)
	assert.Equal("lossless", resp.Result)
	assert.Equal("gsm7", resp.Coding)
	assert.Equal(1, resp.Escapes)
	assert.Equal(1, resp.Score)

	resp, err = tr.Seek(SeekRequest{Text: "नमस्ते"}, "test")
	require.NoError(t, err)
	assert.Equal(gsm7.ShiftTables{Locking: gsm7.Hindi}, resp.Tables)
	assert.Equal(300, resp.Score)

	resp, err = tr.Seek(SeekRequest{Text: "Жук"}, "test")
	require.NoError(t, err)
	assert.Equal("lossy", resp.Result)
	assert.Equal("ucs2", resp.Coding)
	assert.Equal(3, resp.Missed)

	rec := sink.last()
	assert.Equal("seek", rec.Operation)
	assert.Equal("lossy", rec.Result)
	// UCS-2 carries every character, so nothing is recorded as missed
	assert.Zero(rec.Missed)
	assert.Empty(rec.MissedChars)
	assert.Zero(tr.metrics.missed["seek"])
}

func TestTranscoderSplit(t *testing.T) {
	tr, _ := newTestTranscoder()
	ref := uint8(9)

	t.Run("auto coding", func(t *testing.T) {
		assert := assert.New(t)
		text := ""
		for i := 0; i < 161; i++ {
			text += "a"
		}
		resp, err := tr.Split(SplitRequest{Text: text, Ref: &ref}, "test")
		require.NoError(t, err)
		assert.Equal("gsm7", resp.Coding)
		assert.Len(resp.Segments, 2)
		assert.Equal("050003090201", resp.Segments[0].Header)
		assert.Equal("050003090202", resp.Segments[1].Header)
	})

	t.Run("ucs2 for lossy text", func(t *testing.T) {
		assert := assert.New(t)
		resp, err := tr.Split(SplitRequest{Text: "Жук"}, "test")
		require.NoError(t, err)
		assert.Equal("ucs2", resp.Coding)
		assert.Equal(gsm7.ShiftTables{}, resp.Tables)
		assert.Equal("04160443043a", resp.Segments[0].Payload)
		assert.Empty(resp.Segments[0].Header)
	})

	t.Run("explicit coding with auto tables", func(t *testing.T) {
		assert := assert.New(t)
		resp, err := tr.Split(SplitRequest{Text: "Ğ", Coding: "gsm7", Auto: true}, "test")
		require.NoError(t, err)
		assert.Equal(gsm7.ShiftTables{Locking: gsm7.Turkish}, resp.Tables)
		assert.Equal("03250101", resp.Segments[0].Header)
		assert.Equal("0b", resp.Segments[0].Payload)
	})

	t.Run("unknown coding", func(t *testing.T) {
		_, err := tr.Split(SplitRequest{Text: "x", Coding: "ebcdic"}, "test")
		assert.ErrorIs(t, err, ErrInvalidRequest)
		assert.ErrorIs(t, err, pdu.ErrUnknownDataCoding)
	})
}

func TestTableInfo(t *testing.T) {
	assert := assert.New(t)
	info := tableInfo()
	assert.Len(info, 14)
	assert.Equal(gsm7.Default, info[0].Name)
	assert.Equal(10, info[0].Single)
	assert.Greater(info[0].Locking, 100)
}

func TestPartiallyRedactMessage(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("**********", PartiallyRedactMessage("short"))
	assert.Equal("Ğüzel*****", PartiallyRedactMessage("Ğüzel günler dilerim"))
}
