package blockcoding

import (
	"sort"

	"github.com/pkg/errors"
)

// A Distribution maps tokens to their empirical probability.
// A token is a single symbol or a block of symbols, represented by the UTF-8 encoding of its symbols.
// Tokens that were never observed are absent.
type Distribution map[string]float64

// Tokens returns the tokens of d in byte-wise lexical order.
// Folds over a distribution use this order so that floating point results are reproducible.
func (d Distribution) Tokens() []string {
	tokens := make([]string, 0, len(d))
	for t := range d {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return tokens
}

// Blocks partitions seq into consecutive non-overlapping blocks of blockSize symbols starting at offset 0.
// A trailing remainder shorter than blockSize is dropped.
func Blocks(seq []rune, blockSize int) ([]string, error) {
	if blockSize <= 0 {
		return nil, errors.Wrapf(ErrInvalidBlockSize, "%d", blockSize)
	}
	n := len(seq) / blockSize
	blocks := make([]string, n)
	for i := 0; i < n; i++ {
		blocks[i] = string(seq[i*blockSize : (i+1)*blockSize])
	}
	return blocks, nil
}

// SymbolDistribution returns the probability of every distinct symbol of seq.
func SymbolDistribution(seq []rune) (Distribution, error) {
	dist, err := BlockDistribution(seq, 1)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	return dist, nil
}

// BlockDistribution returns the probability of every distinct complete block of blockSize symbols in seq.
// The probability of a block is its number of occurrences over the number of complete blocks.
func BlockDistribution(seq []rune, blockSize int) (Distribution, error) {
	blocks, err := Blocks(seq, blockSize)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	if len(blocks) == 0 {
		return nil, errors.Wrapf(ErrEmptyInput, "%d symbols, block size %d", len(seq), blockSize)
	}

	counts := make(map[string]int)
	for _, b := range blocks {
		counts[b]++
	}
	total := float64(len(blocks))
	dist := make(Distribution, len(counts))
	for b, c := range counts {
		dist[b] = float64(c) / total
	}
	return dist, nil
}
