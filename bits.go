package blockcoding

import (
	"strings"
)

// A Bitstream is a sequence of bits packed most significant bit first.
type Bitstream struct {
	buf   []byte
	nbits int
}

// WriteBit appends a single bit, which must be 0 or 1.
func (bs *Bitstream) WriteBit(bit int) {
	if bs.nbits%8 == 0 {
		bs.buf = append(bs.buf, 0)
	}
	if bit != 0 {
		bs.buf[len(bs.buf)-1] |= 0x80 >> uint(bs.nbits%8)
	}
	bs.nbits++
}

// WriteCode appends the bits of c.
func (bs *Bitstream) WriteCode(c Code) {
	for i := 0; i < len(c); i++ {
		bs.WriteBit(int(c[i] - '0'))
	}
}

// Len returns the number of bits written.
func (bs *Bitstream) Len() int {
	return bs.nbits
}

// Bit returns the i'th bit.
func (bs *Bitstream) Bit(i int) int {
	return int(bs.buf[i/8]>>(7-uint(i%8))) & 1
}

// Bytes returns the packed bits. Unused bits of the last byte are zero.
func (bs *Bitstream) Bytes() []byte {
	return bs.buf
}

// String renders the bits as '0' and '1' characters.
func (bs *Bitstream) String() string {
	var sb strings.Builder
	sb.Grow(bs.nbits)
	for i := 0; i < bs.nbits; i++ {
		sb.WriteByte(byte('0' + bs.Bit(i)))
	}
	return sb.String()
}
