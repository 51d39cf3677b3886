package gsm7

const (
	space = 0x20
	cr    = 0x0D
)

// decoder is the escape state machine shared by the packed and unpacked paths.
type decoder struct {
	single  *LanguageTable
	locking *LanguageTable
	escaped bool
}

func newDecoder(st ShiftTables) decoder {
	return decoder{single: SingleShiftTable(st.Single), locking: LockingTable(st.Locking)}
}

// feed consumes one septet and reports the code point it produces, if any.
func (d *decoder) feed(septet byte) (uint16, bool) {
	septet &= 0x7F
	table := d.locking
	switch {
	case d.escaped:
		d.escaped = false
		table = d.single
	case septet == Escape:
		d.escaped = true
		return 0, false
	}
	if cp, ok := table.Rune(septet); ok {
		return cp, true
	}
	return space, true
}

// flush terminates the stream; a dangling escape stands for one unknown character.
func (d *decoder) flush() (uint16, bool) {
	if d.escaped {
		d.escaped = false
		return space, true
	}
	return 0, false
}

func (d *decoder) run(septets []byte, out *cursor[uint16]) {
	for _, s := range septets {
		if cp, ok := d.feed(s); ok {
			out.put(cp)
		}
	}
	if cp, ok := d.flush(); ok {
		out.put(cp)
	}
}

// Decode converts a packed septet stream into code points using the given
// shift tables. Unmapped septets and a dangling escape become spaces. At most
// len(dst) code points are written; the return value is the total count, so a
// result larger than len(dst) means dst was too short.
func Decode(dst []uint16, packed []byte, st ShiftTables) int {
	out := cursor[uint16]{buf: dst}
	d := newDecoder(st)
	unpack(packed, func(s byte) {
		if cp, ok := d.feed(s); ok {
			out.put(cp)
		}
	})
	if cp, ok := d.flush(); ok {
		out.put(cp)
	}
	return out.n
}

// DecodePadded is Decode for streams written by EncodePadded: when the septet
// count is a multiple of 8 and the last septet is CR, that CR only filled the
// final 7 spare bits and is dropped.
func DecodePadded(dst []uint16, packed []byte, st ShiftTables) int {
	septets := make([]byte, 0, len(packed)*8/7)
	unpack(packed, func(s byte) { septets = append(septets, s) })

	if n := len(septets); n > 0 && n%8 == 0 && septets[n-1] == cr {
		septets = septets[:n-1]
	}

	out := cursor[uint16]{buf: dst}
	d := newDecoder(st)
	d.run(septets, &out)
	return out.n
}

// DecodeUnpacked is Decode for input holding one septet per byte; bit 7 of
// every byte is ignored.
func DecodeUnpacked(dst []uint16, septets []byte, st ShiftTables) int {
	out := cursor[uint16]{buf: dst}
	d := newDecoder(st)
	d.run(septets, &out)
	return out.n
}

// DecodeString is a convenience wrapper around Decode returning a string.
func DecodeString(packed []byte, st ShiftTables) string {
	buf := make([]uint16, len(packed)*8/7+1)
	n := Decode(buf, packed, st)
	return FromCodePoints(buf[:n])
}

// FromCodePoints is the inverse of CodePoints.
func FromCodePoints(cps []uint16) string {
	runes := make([]rune, len(cps))
	for i, cp := range cps {
		runes[i] = rune(cp)
	}
	return string(runes)
}
