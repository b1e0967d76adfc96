package blockcoding

import (
	"math"
)

// Entropy returns the Shannon entropy of d in bits.
// Entries with zero probability contribute nothing.
func Entropy(d Distribution) float64 {
	var h float64
	for _, t := range d.Tokens() {
		p := d[t]
		if p <= 0 {
			continue
		}
		h -= p * math.Log2(p)
	}
	return h
}
