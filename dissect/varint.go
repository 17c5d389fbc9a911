package dissect

// Uvarint decodes a base-128 varint (little-endian 7-bit groups, high bit
// set on every byte but the last) starting at offset.
// Reading past the end of b yields (0, cursor) instead of failing, where
// cursor is the offset the missing byte was expected at. No maximum length
// is enforced.
func Uvarint(b []byte, offset int) (uint64, int) {
	var v uint64
	var s uint
	o := offset
	for {
		if o < 0 || o >= len(b) {
			return 0, o
		}
		c := b[o]
		o++
		v |= uint64(c&0x7f) << s
		if c&0x80 == 0 {
			return v, o
		}
		s += 7
	}
}
