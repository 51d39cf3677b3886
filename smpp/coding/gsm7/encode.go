package gsm7

import "unicode/utf8"

// septet resolves one code point: the locking table first, then an escape
// into the single shift table. ok is false when neither table maps cp.
func (st ShiftTables) septet(cp uint16) (s byte, escaped, ok bool) {
	if s, ok = LockingTable(st.Locking).Septet(cp); ok {
		return s, false, true
	}
	if s, ok = SingleShiftTable(st.Single).Septet(cp); ok {
		return s, true, true
	}
	return space, false, false
}

// Septets reports how many septets cp costs under st: 1 for a locking table
// character or the space fallback, 2 for an escaped character.
func (st ShiftTables) Septets(cp uint16) int {
	if _, escaped, _ := st.septet(cp); escaped {
		return 2
	}
	return 1
}

// Encodable reports whether cp survives encoding under st.
func (st ShiftTables) Encodable(cp uint16) bool {
	_, _, ok := st.septet(cp)
	return ok
}

// EncodeSeptets maps code points to septets, one byte each, without packing.
// Characters missing from both tables are replaced by a space. At most
// len(dst) septets are written; the return value is the total count.
func EncodeSeptets(dst []byte, src []uint16, st ShiftTables) int {
	out := cursor[byte]{buf: dst}
	encodeSeptets(src, st, out.put)
	return out.n
}

func encodeSeptets(src []uint16, st ShiftTables, emit func(byte)) {
	for _, cp := range src {
		s, escaped, _ := st.septet(cp)
		if escaped {
			emit(Escape)
		}
		emit(s)
	}
}

// Encode maps code points to septets and packs them. At most len(dst) octets
// are written; the return value is the total count.
func Encode(dst []byte, src []uint16, st ShiftTables) int {
	out := cursor[byte]{buf: dst}
	p := packer{emit: out.put}
	encodeSeptets(src, st, p.put)
	p.flush()
	return out.n
}

// EncodePadded is Encode with the CR padding of TS 23.038 6.1.2.1.1: when the
// packed stream would end with 7 fill bits a CR is sent in their place, and a
// message that really ends in CR on an octet boundary gets a second CR so the
// receiver can tell padding from text.
func EncodePadded(dst []byte, src []uint16, st ShiftTables) int {
	septets := make([]byte, 0, len(src)+len(src)/4+1)
	encodeSeptets(src, st, func(s byte) { septets = append(septets, s) })

	switch n := len(septets); {
	case n%8 == 7:
		septets = append(septets, cr)
	case n > 0 && n%8 == 0 && septets[n-1] == cr:
		septets = append(septets, cr)
	}
	return Pack(dst, septets)
}

// EncodeString is a convenience wrapper around Encode returning the packed octets.
func EncodeString(s string, st ShiftTables) []byte {
	cps := CodePoints(s)
	n := Encode(nil, cps, st)
	buf := make([]byte, n)
	Encode(buf, cps, st)
	return buf
}

// CodePoints converts s to 16-bit code points. Runes outside the Basic
// Multilingual Plane cannot appear in any alphabet and become U+FFFD.
func CodePoints(s string) []uint16 {
	cps := make([]uint16, 0, len(s))
	for _, r := range s {
		if r > 0xFFFF {
			r = utf8.RuneError
		}
		cps = append(cps, uint16(r))
	}
	return cps
}
