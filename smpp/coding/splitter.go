package coding

import (
	"msggw-gsm7/smpp/coding/gsm7"
	"msggw-gsm7/smpp/pdu"
)

// Splitter reports how many bits a rune occupies on the air. It has the
// shape of go-smpp's splitter but counts and cuts in bits, which GSM 7-bit
// with escapes and header fill bits needs.
type Splitter func(rune) int

// GSM7Splitter counts 7 bits per character and 14 for characters that need
// an escape into the single shift table.
func GSM7Splitter(st gsm7.ShiftTables) Splitter {
	return func(r rune) int {
		if r > 0xFFFF {
			r = 0xFFFD
		}
		return 7 * st.Septets(uint16(r))
	}
}

// Splitter returns the bit counter for c.
func (c DataCoding) Splitter(st gsm7.ShiftTables) (Splitter, error) {
	switch c {
	case GSM7BitCoding:
		return GSM7Splitter(st), nil
	case Latin1Coding, UCS2Coding:
		return Splitter(c.SMPP().Splitter()), nil
	}
	return nil, pdu.ErrUnknownDataCoding
}

// Bits is the encoded size of input.
func (fn Splitter) Bits(input string) (n int) {
	for _, point := range input {
		n += fn(point)
	}
	return n
}

// Len is the encoded size of input in octets, rounded up.
func (fn Splitter) Len(input string) int {
	return (fn.Bits(input) + 7) / 8
}

// Split cuts input into pieces of at most limit bits without breaking a
// character. A character wider than limit on its own becomes its own piece.
func (fn Splitter) Split(input string, limit int) (segments []string) {
	points := []rune(input)
	var start, length int
	for i := 0; i < len(points); i++ {
		size := fn(points[i])
		if length > 0 && length+size > limit {
			segments = append(segments, string(points[start:i]))
			start, length = i, 0
		}
		length += size
	}
	if length > 0 {
		segments = append(segments, string(points[start:]))
	}
	return
}

const (
	udhLengthOctets = 1
	concatIEOctets  = 5 // IEI, IEDL, reference, total, sequence
	nliIEOctets     = 3 // IEI, IEDL, language
)

// headerOctets is the user data header size, UDHL included, for a message
// using st, or 0 when no header is needed.
func headerOctets(st gsm7.ShiftTables, multipart bool) int {
	n := gsm7.Rank{Tables: st}.HeaderOctets()
	if multipart {
		n += concatIEOctets
	}
	if n == 0 {
		return 0
	}
	return udhLengthOctets + n
}

// capacity is the number of payload bits left after a header of udh octets.
// GSM 7-bit text starts on the next septet boundary after the header.
func capacity(c DataCoding, udh int) int {
	bits := (pdu.MaxShortMessage - udh) * 8
	if c == GSM7BitCoding && udh > 0 {
		bits -= (7 - udh*8%7) % 7
	}
	return bits
}

// SplitSMS will split `msg` into the correct single- or multipart segments
// based on SMS rules, the data coding and, for GSM 7-bit, the shift tables
// that are announced in every segment's header.
func SplitSMS(msg string, c DataCoding, st gsm7.ShiftTables) ([]string, error) {
	if c != GSM7BitCoding {
		st = gsm7.ShiftTables{}
	}
	sp, err := c.Splitter(st)
	if err != nil {
		return nil, err
	}

	// if it fits in one SMS…
	if sp.Bits(msg) <= capacity(c, headerOctets(st, false)) {
		return []string{msg}, nil
	}
	// otherwise chop into pieces that leave room for the concatenation header
	segments := sp.Split(msg, capacity(c, headerOctets(st, true)))
	if len(segments) > pdu.MaxSegments {
		return nil, pdu.ErrMultipartTooMuch
	}
	return segments, nil
}
