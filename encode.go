package blockcoding

import (
	"github.com/pkg/errors"
)

// Encode partitions seq into blocks exactly like BlockDistribution and concatenates their codewords.
// A *MissingCodeError is returned if a block has no codeword in table.
func Encode(seq []rune, blockSize int, table CodeTable) (*Bitstream, error) {
	blocks, err := Blocks(seq, blockSize)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}

	bs := &Bitstream{}
	for _, b := range blocks {
		c, ok := table[b]
		if !ok {
			return nil, errors.WithStack(&MissingCodeError{Token: b})
		}
		bs.WriteCode(c)
	}
	return bs, nil
}

// Decode splits bits back into the blocks whose codewords they concatenate.
// table must be prefix-free. ErrTruncated is returned if the last bits do not form a whole codeword.
func Decode(bits *Bitstream, table CodeTable) ([]string, error) {
	tokens := make(map[Code]string, len(table))
	maxLen := 0
	for t, c := range table {
		tokens[c] = t
		if len(c) > maxLen {
			maxLen = len(c)
		}
	}

	var blocks []string
	cur := make([]byte, 0, maxLen)
	for i := 0; i < bits.Len(); i++ {
		cur = append(cur, byte('0'+bits.Bit(i)))
		if t, ok := tokens[Code(cur)]; ok {
			blocks = append(blocks, t)
			cur = cur[:0]
			continue
		}
		if len(cur) >= maxLen {
			return nil, errors.Errorf("no codeword matches %q at bit %d", cur, i+1-len(cur))
		}
	}
	if len(cur) > 0 {
		return nil, errors.Wrapf(ErrTruncated, "%d trailing bits", len(cur))
	}
	return blocks, nil
}
