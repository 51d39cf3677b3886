package coding

import (
	"strings"
	"testing"

	smppcoding "github.com/M2MGateway/go-smpp/coding"
	"github.com/stretchr/testify/assert"

	"msggw-gsm7/smpp/coding/gsm7"
	"msggw-gsm7/smpp/pdu"
)

func TestBestCoding(t *testing.T) {
	assert := assert.New(t)

	choice := BestCoding("hello")
	assert.Equal(GSM7BitCoding, choice.Coding)
	assert.Equal(gsm7.Optimal, choice.Result)

	choice = BestCoding("Ğüzel")
	assert.Equal(GSM7BitCoding, choice.Coding)
	assert.Equal(gsm7.Lossless, choice.Result)
	assert.Equal(gsm7.Turkish, choice.Rank.Tables.Locking)

	choice = BestCoding("Жук")
	assert.Equal(UCS2Coding, choice.Coding)
	assert.Equal(gsm7.Lossy, choice.Result)
}

func TestEncodeDecode(t *testing.T) {
	tests := []struct {
		coding  DataCoding
		tables  gsm7.ShiftTables
		text    string
		payload []byte
	}{
		{GSM7BitCoding, gsm7.ShiftTables{}, "a€", []byte{0x61, 0x1B, 0x65}},
		{GSM7BitCoding, gsm7.ShiftTables{Locking: gsm7.Turkish}, "Ğ", []byte{0x0B}},
		{Latin1Coding, gsm7.ShiftTables{}, "é!", []byte{0xE9, 0x21}},
		{UCS2Coding, gsm7.ShiftTables{}, "Жa", []byte{0x04, 0x16, 0x00, 0x61}},
	}
	for _, tt := range tests {
		t.Run(tt.coding.String()+"/"+tt.text, func(t *testing.T) {
			assert := assert.New(t)

			payload, err := Encode(tt.coding, tt.tables, tt.text)
			assert.NoError(err)
			assert.Equal(tt.payload, payload)

			text, err := Decode(tt.coding, tt.tables, payload)
			assert.NoError(err)
			assert.Equal(tt.text, text)
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := Encode(Latin1Coding, gsm7.ShiftTables{}, "Ж")
	assert.Error(err)

	_, err = Encode(DataCoding(0x04), gsm7.ShiftTables{}, "x")
	assert.ErrorIs(err, pdu.ErrUnknownDataCoding)

	_, err = Decode(UCS2Coding, gsm7.ShiftTables{}, make([]byte, pdu.MaxPayload+1))
	assert.ErrorIs(err, pdu.ErrDataTooLarge)

	_, err = Encode(UCS2Coding, gsm7.ShiftTables{}, strings.Repeat("a", pdu.MaxPayload))
	assert.ErrorIs(err, pdu.ErrDataTooLarge)
}

func TestParseDataCoding(t *testing.T) {
	assert := assert.New(t)

	for _, c := range []DataCoding{GSM7BitCoding, Latin1Coding, UCS2Coding} {
		parsed, err := ParseDataCoding(c.String())
		assert.NoError(err)
		assert.Equal(c, parsed)
	}

	parsed, err := ParseDataCoding("")
	assert.NoError(err)
	assert.Equal(GSM7BitCoding, parsed)

	_, err = ParseDataCoding("ebcdic")
	assert.ErrorIs(err, pdu.ErrUnknownDataCoding)
	assert.Equal("0x04", DataCoding(0x04).String())
}

func TestDataCodingSMPP(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(smppcoding.GSM7BitCoding, GSM7BitCoding.SMPP())
	assert.Equal(smppcoding.Latin1Coding, Latin1Coding.SMPP())
	assert.Equal(smppcoding.UCS2Coding, UCS2Coding.SMPP())

	// latin1 and ucs2 come straight from go-smpp, gsm7 adds the shift tables
	for _, c := range []DataCoding{Latin1Coding, UCS2Coding} {
		enc, err := c.Encoding(gsm7.ShiftTables{})
		assert.NoError(err)
		assert.Equal(c.SMPP().Encoding(), enc)
	}
	enc, err := GSM7BitCoding.Encoding(gsm7.ShiftTables{Locking: gsm7.Turkish})
	assert.NoError(err)
	assert.Equal(gsm7.ShiftTables{Locking: gsm7.Turkish}.Encoding(), enc)

	sp, err := UCS2Coding.Splitter(gsm7.ShiftTables{})
	assert.NoError(err)
	assert.Equal(16, sp('Ж'))
	assert.Equal(32, sp('😀'))
}
