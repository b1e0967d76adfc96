// Package blockcoding measures how well a symbol stream compresses when Huffman coded block by block.
//
// For every block size from 1 to a maximum, the stream is cut into non-overlapping blocks,
// the empirical distribution of those blocks is Huffman coded,
// and the resulting code length per symbol is compared with the entropy per symbol of the stream.
//
// Below is an example of analysing a text file from the command line:
//
//	go run blockstats/main.go -max 4 input_data.txt
package blockcoding

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/pkg/errors"
)

// A Row holds the coding figures of one block size. Entropies and lengths are in bits per symbol.
type Row struct {
	BlockSize     int
	BlockEntropy  float64 // entropy of the block distribution divided by BlockSize
	AvgCodeLength float64 // expected Huffman codeword length divided by BlockSize
	Redundancy    float64 // AvgCodeLength minus the symbol entropy

	Distinct    int // number of distinct blocks
	EncodedBits int // length of the Huffman coded sequence
}

// An Analysis is the result of Analyze.
type Analysis struct {
	SymbolEntropy float64
	Rows          []Row
}

type options struct {
	workers int
}

// An Option configures Analyze.
type Option func(*options)

// WithWorkers analyses block sizes on n goroutines. The result does not depend on n.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// Analyze computes one Row for every block size from 1 to maxBlockSize, in increasing order.
func Analyze(seq []rune, maxBlockSize int, opts ...Option) (*Analysis, error) {
	if maxBlockSize <= 0 {
		return nil, errors.Wrapf(ErrInvalidBlockSize, "max block size %d", maxBlockSize)
	}
	o := options{workers: 1}
	for _, opt := range opts {
		opt(&o)
	}

	symbols, err := SymbolDistribution(seq)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	a := &Analysis{
		SymbolEntropy: Entropy(symbols),
		Rows:          make([]Row, maxBlockSize),
	}

	sizes := make(chan int)
	errs := make([]error, maxBlockSize)
	var wg sync.WaitGroup
	for w := 0; w < min(o.workers, maxBlockSize); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for bsize := range sizes {
				a.Rows[bsize-1], errs[bsize-1] = analyzeBlockSize(seq, bsize, a.SymbolEntropy)
			}
		}()
	}
	for bsize := 1; bsize <= maxBlockSize; bsize++ {
		sizes <- bsize
	}
	close(sizes)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, errors.Wrapf(err, "block size %d", i+1)
		}
	}
	return a, nil
}

func analyzeBlockSize(seq []rune, blockSize int, symbolEntropy float64) (Row, error) {
	dist, err := BlockDistribution(seq, blockSize)
	if err != nil {
		return Row{}, errors.Wrap(err, "")
	}
	tree, err := BuildTree(dist)
	if err != nil {
		return Row{}, errors.Wrap(err, "")
	}
	table := tree.Codes()
	avg, err := table.ExpectedLength(dist)
	if err != nil {
		return Row{}, errors.Wrap(err, "")
	}
	encoded, err := Encode(seq, blockSize, table)
	if err != nil {
		return Row{}, errors.Wrap(err, "")
	}

	bs := float64(blockSize)
	row := Row{
		BlockSize:     blockSize,
		BlockEntropy:  Entropy(dist) / bs,
		AvgCodeLength: avg / bs,
		Distinct:      len(dist),
		EncodedBits:   encoded.Len(),
	}
	row.Redundancy = row.AvgCodeLength - symbolEntropy
	return row, nil
}

// Digest returns a fingerprint of the exact values of a.
// Two analyses have the same digest if and only if all their figures are bit-for-bit equal, barring hash collisions.
func (a *Analysis) Digest() uint64 {
	var h xxhash.Digest
	h.Reset()
	binary.Write(&h, binary.BigEndian, math.Float64bits(a.SymbolEntropy))
	for _, r := range a.Rows {
		binary.Write(&h, binary.BigEndian, int64(r.BlockSize))
		binary.Write(&h, binary.BigEndian, math.Float64bits(r.BlockEntropy))
		binary.Write(&h, binary.BigEndian, math.Float64bits(r.AvgCodeLength))
		binary.Write(&h, binary.BigEndian, math.Float64bits(r.Redundancy))
		binary.Write(&h, binary.BigEndian, int64(r.Distinct))
		binary.Write(&h, binary.BigEndian, int64(r.EncodedBits))
	}
	return h.Sum64()
}

// Fingerprint returns a hash of the symbols of seq.
func Fingerprint(seq []rune) uint64 {
	var h xxhash.Digest
	h.Reset()
	binary.Write(&h, binary.BigEndian, seq)
	return h.Sum64()
}
