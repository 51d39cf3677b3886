package coding

import (
	"bytes"

	smpppdu "github.com/M2MGateway/go-smpp/pdu"

	"msggw-gsm7/smpp/coding/gsm7"
	"msggw-gsm7/smpp/pdu"
)

// Information element identifiers, 3GPP TS 23.040 9.2.3.24.
const (
	ieConcat       = 0x00
	ieConcat16     = 0x08
	ieSingleShift  = 0x24
	ieLockingShift = 0x25
)

// Header is the part of a user data header this gateway understands:
// concatenation and the national language shift tables.
type Header struct {
	Tables gsm7.ShiftTables
	Ref    uint16
	Total  byte
	Seq    byte
}

// UserDataHeader returns h as go-smpp's element map, or nil when there is
// nothing to announce.
func (h Header) UserDataHeader() smpppdu.UserDataHeader {
	udh := smpppdu.UserDataHeader{}
	if h.Total > 1 {
		smpppdu.ConcatenatedHeader{Reference: h.Ref, TotalParts: h.Total, Sequence: h.Seq}.Set(udh)
	}
	if h.Tables.Single != gsm7.Default {
		udh[ieSingleShift] = []byte{byte(h.Tables.Single)}
	}
	if h.Tables.Locking != gsm7.Default {
		udh[ieLockingShift] = []byte{byte(h.Tables.Locking)}
	}
	if len(udh) == 0 {
		return nil
	}
	return udh
}

// Bytes renders h, UDHL first, elements in identifier order. A header with
// nothing to announce is empty.
func (h Header) Bytes() []byte {
	udh := h.UserDataHeader()
	if udh == nil {
		return nil
	}
	var buf bytes.Buffer
	if _, err := udh.WriteTo(&buf); err != nil {
		return nil
	}
	return buf.Bytes()
}

// ParseHeader reads the user data header at the start of ud and returns it
// with the rest of the user data. Unknown elements are skipped.
//
// go-smpp's UserDataHeader.ReadFrom stops after the first element, so the
// elements are walked here and collected into its map instead.
func ParseHeader(ud []byte) (Header, []byte, error) {
	var h Header
	if len(ud) == 0 || int(ud[0])+1 > len(ud) {
		return h, nil, pdu.ErrInvalidHeader
	}
	udhl := int(ud[0]) + 1
	ies, rest := ud[1:udhl], ud[udhl:]

	udh := smpppdu.UserDataHeader{}
	for len(ies) > 0 {
		if len(ies) < 2 || int(ies[1])+2 > len(ies) {
			return h, nil, pdu.ErrInvalidHeader
		}
		end := int(ies[1]) + 2
		udh[ies[0]] = ies[2:end]
		ies = ies[end:]
	}

	if data, ok := udh[ieConcat]; ok && len(data) != 3 {
		return h, nil, pdu.ErrInvalidHeader
	}
	if data, ok := udh[ieConcat16]; ok && len(data) != 4 {
		return h, nil, pdu.ErrInvalidHeader
	}
	if concat := udh.ConcatenatedHeader(); concat != nil {
		h.Ref, h.Total, h.Seq = concat.Reference, concat.TotalParts, concat.Sequence
	}

	var err error
	if h.Tables.Single, err = language(udh, ieSingleShift); err != nil {
		return h, nil, err
	}
	if h.Tables.Locking, err = language(udh, ieLockingShift); err != nil {
		return h, nil, err
	}
	return h, rest, nil
}

// language reads a national language element. Receivers treat unknown
// languages as the default alphabet.
func language(udh smpppdu.UserDataHeader, id byte) (gsm7.Table, error) {
	data, ok := udh[id]
	if !ok {
		return gsm7.Default, nil
	}
	if len(data) != 1 {
		return gsm7.Default, pdu.ErrInvalidHeader
	}
	if t := gsm7.Table(data[0]); t.Valid() {
		return t, nil
	}
	return gsm7.Default, nil
}

// Segment is one SMS of a possibly concatenated message.
type Segment struct {
	Text    string
	Header  []byte
	Payload []byte
}

// Segments splits text and encodes every part, each with the header that
// announces its place in the message and the shift tables in use.
func Segments(text string, c DataCoding, st gsm7.ShiftTables, ref byte) ([]Segment, error) {
	if c != GSM7BitCoding {
		st = gsm7.ShiftTables{}
	}
	parts, err := SplitSMS(text, c, st)
	if err != nil {
		return nil, err
	}
	sp, err := c.Splitter(st)
	if err != nil {
		return nil, err
	}

	segments := make([]Segment, 0, len(parts))
	for i, part := range parts {
		h := Header{Tables: st}
		if len(parts) > 1 {
			h.Ref, h.Total, h.Seq = uint16(ref), byte(len(parts)), byte(i+1)
		}
		header := h.Bytes()
		if len(header)+sp.Len(part) > pdu.MaxShortMessage {
			return nil, pdu.ErrShortMessageTooLarge
		}

		payload, err := Encode(c, st, part)
		if err != nil {
			return nil, err
		}
		segments = append(segments, Segment{Text: part, Header: header, Payload: payload})
	}
	return segments, nil
}
