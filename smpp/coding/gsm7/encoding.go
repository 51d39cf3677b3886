package gsm7

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Encoding returns an x/text encoding between UTF-8 and unpacked septets,
// one septet per byte, as most SMPP peers expect in short_message. Characters
// the tables cannot represent are encoded as a space.
func (st ShiftTables) Encoding() encoding.Encoding {
	return septetEncoding{tables: st}
}

type septetEncoding struct {
	tables ShiftTables
}

func (e septetEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: &septetDecoder{dec: newDecoder(e.tables)}}
}

func (e septetEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: septetEncoder{tables: e.tables}}
}

func (e septetEncoding) String() string {
	return "GSM 7-bit (" + e.tables.String() + ")"
}

// septetDecoder keeps the escape flag between calls, so an escape at the end
// of one chunk applies to the first septet of the next.
type septetDecoder struct {
	dec decoder
}

func (d *septetDecoder) Reset() {
	d.dec.escaped = false
}

func (d *septetDecoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		escaped := d.dec.escaped
		if cp, ok := d.dec.feed(src[nSrc]); ok {
			n, ok := putRune(dst[nDst:], cp)
			if !ok {
				d.dec.escaped = escaped
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += n
		}
		nSrc++
	}
	if atEOF {
		if cp, ok := d.dec.flush(); ok {
			n, ok := putRune(dst[nDst:], cp)
			if !ok {
				d.dec.escaped = true
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += n
		}
	}
	return nDst, nSrc, nil
}

func putRune(dst []byte, cp uint16) (int, bool) {
	r := rune(cp)
	n := utf8.RuneLen(r)
	if n < 0 {
		r, n = utf8.RuneError, 3
	}
	if len(dst) < n {
		return 0, false
	}
	return utf8.EncodeRune(dst, r), true
}

type septetEncoder struct {
	transform.NopResetter
	tables ShiftTables
}

func (e septetEncoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		r, size := rune(src[nSrc]), 1
		if r >= utf8.RuneSelf {
			if !atEOF && !utf8.FullRune(src[nSrc:]) {
				return nDst, nSrc, transform.ErrShortSrc
			}
			r, size = utf8.DecodeRune(src[nSrc:])
		}
		if r > 0xFFFF {
			r = utf8.RuneError
		}

		s, escaped, _ := e.tables.septet(uint16(r))
		need := 1
		if escaped {
			need = 2
		}
		if len(dst)-nDst < need {
			return nDst, nSrc, transform.ErrShortDst
		}
		if escaped {
			dst[nDst] = Escape
			nDst++
		}
		dst[nDst] = s
		nDst++
		nSrc += size
	}
	return nDst, nSrc, nil
}
