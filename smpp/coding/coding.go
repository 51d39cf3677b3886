package coding

import (
	"fmt"

	smppcoding "github.com/M2MGateway/go-smpp/coding"
	"golang.org/x/text/encoding"

	"msggw-gsm7/smpp/coding/gsm7"
	"msggw-gsm7/smpp/pdu"
)

// DataCoding is the SMPP data_coding value of a short message. It shares
// its values with go-smpp and adds the national language aware GSM 7-bit
// encoding on top.
type DataCoding smppcoding.DataCoding

const (
	GSM7BitCoding = DataCoding(smppcoding.GSM7BitCoding)
	Latin1Coding  = DataCoding(smppcoding.Latin1Coding)
	UCS2Coding    = DataCoding(smppcoding.UCS2Coding)
)

// SMPP returns c as go-smpp sees it, for submit_sm and deliver_sm fields.
func (c DataCoding) SMPP() smppcoding.DataCoding {
	return smppcoding.DataCoding(c)
}

func (c DataCoding) String() string {
	switch c {
	case GSM7BitCoding:
		return "gsm7"
	case Latin1Coding:
		return "latin1"
	case UCS2Coding:
		return "ucs2"
	}
	return fmt.Sprintf("0x%02X", byte(c))
}

// ParseDataCoding accepts the names returned by String.
func ParseDataCoding(name string) (DataCoding, error) {
	switch name {
	case "gsm7", "":
		return GSM7BitCoding, nil
	case "latin1":
		return Latin1Coding, nil
	case "ucs2":
		return UCS2Coding, nil
	}
	return 0, fmt.Errorf("%w: %q", pdu.ErrUnknownDataCoding, name)
}

// Encoding returns the text encoding behind c. GSM 7-bit payloads are
// unpacked, one septet per octet, using the given shift tables; go-smpp's
// own GSM 7-bit encoding only knows the default alphabet.
func (c DataCoding) Encoding(st gsm7.ShiftTables) (encoding.Encoding, error) {
	switch c {
	case GSM7BitCoding:
		return st.Encoding(), nil
	case Latin1Coding, UCS2Coding:
		return c.SMPP().Encoding(), nil
	}
	return nil, pdu.ErrUnknownDataCoding
}

// Choice is the cheapest coding found for a text.
type Choice struct {
	Coding DataCoding
	Rank   gsm7.Rank
	Result gsm7.Result
}

// BestCoding picks GSM 7-bit with the best shift tables when the text survives
// it, and UCS-2 otherwise.
func BestCoding(text string) Choice {
	rank, result := gsm7.Seek(gsm7.CodePoints(text))
	if result == gsm7.Lossy {
		return Choice{Coding: UCS2Coding, Rank: rank, Result: result}
	}
	return Choice{Coding: GSM7BitCoding, Rank: rank, Result: result}
}

// Encode converts text to a short message payload.
func Encode(c DataCoding, st gsm7.ShiftTables, text string) ([]byte, error) {
	enc, err := c.Encoding(st)
	if err != nil {
		return nil, err
	}
	out, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", c, err)
	}
	if len(out) > pdu.MaxPayload {
		return nil, pdu.ErrDataTooLarge
	}
	return out, nil
}

// Decode converts a short message payload back to text.
func Decode(c DataCoding, st gsm7.ShiftTables, payload []byte) (string, error) {
	if len(payload) > pdu.MaxPayload {
		return "", pdu.ErrDataTooLarge
	}
	enc, err := c.Encoding(st)
	if err != nil {
		return "", err
	}
	out, err := enc.NewDecoder().Bytes(payload)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", c, err)
	}
	return string(out), nil
}
