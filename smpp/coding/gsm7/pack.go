package gsm7

// cursor writes into a fixed buffer while counting every value offered to it,
// so callers learn the full size even when buf is too short.
type cursor[T any] struct {
	buf []T
	n   int
}

func (c *cursor[T]) put(v T) {
	if c.n < len(c.buf) {
		c.buf[c.n] = v
	}
	c.n++
}

// PackedLen is the number of octets needed to hold n septets.
func PackedLen(n int) int {
	return (n*7 + 7) / 8
}

// Unpack splits a packed septet stream (TS 23.038 6.1.2.1.1) into one septet
// per byte. Trailing fill bits that do not form a whole septet are dropped.
// It writes at most len(dst) septets and returns the total count.
func Unpack(dst, packed []byte) int {
	out := cursor[byte]{buf: dst}
	unpack(packed, out.put)
	return out.n
}

func unpack(packed []byte, emit func(byte)) {
	var reg uint16
	var bits uint
	for _, octet := range packed {
		reg |= uint16(octet) << bits
		bits += 8
		for bits >= 7 {
			emit(byte(reg & 0x7F))
			reg >>= 7
			bits -= 7
		}
	}
}

// Pack concatenates the low 7 bits of each septet into an octet stream,
// zero filling the last octet. It writes at most len(dst) octets and returns
// the total count.
func Pack(dst, septets []byte) int {
	out := cursor[byte]{buf: dst}
	p := packer{emit: out.put}
	for _, septet := range septets {
		p.put(septet)
	}
	p.flush()
	return out.n
}

// packer is the shift register behind Pack, fed one septet at a time.
type packer struct {
	emit func(byte)
	reg  uint16
	bits uint
}

func (p *packer) put(septet byte) {
	p.reg |= uint16(septet&0x7F) << p.bits
	p.bits += 7
	if p.bits >= 8 {
		p.emit(byte(p.reg))
		p.reg >>= 8
		p.bits -= 8
	}
}

func (p *packer) flush() {
	if p.bits > 0 {
		p.emit(byte(p.reg))
		p.reg, p.bits = 0, 0
	}
}
