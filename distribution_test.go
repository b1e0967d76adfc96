package blockcoding

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func sum(d Distribution) float64 {
	var s float64
	for _, t := range d.Tokens() {
		s += d[t]
	}
	return s
}

func TestSymbolDistribution(t *testing.T) {
	seq := []rune("AAAAAAAABBBBCCD")
	d, err := SymbolDistribution(seq)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	want := map[string]float64{"A": 8.0 / 15, "B": 4.0 / 15, "C": 2.0 / 15, "D": 1.0 / 15}
	if len(d) != len(want) {
		t.Fatalf("%v", d)
	}
	for tok, p := range want {
		if d[tok] != p {
			t.Errorf("%q: %f != %f", tok, d[tok], p)
		}
	}
}

func TestDistributionNormalized(t *testing.T) {
	inputs := []string{
		"a",
		"abracadabra",
		"Four score and seven years ago our fathers brought forth on this continent",
		"ёжик в тумане, ёжик в тумане",
	}
	for _, in := range inputs {
		seq := []rune(in)
		for bsize := 1; bsize <= 4 && bsize <= len(seq); bsize++ {
			d, err := BlockDistribution(seq, bsize)
			if err != nil {
				t.Fatalf("%q %d: %+v", in, bsize, err)
			}
			if s := sum(d); math.Abs(s-1) > 1e-9 {
				t.Errorf("%q %d: sum %f", in, bsize, s)
			}
		}
	}
}

func TestBlockDistributionDropsRemainder(t *testing.T) {
	// 7 symbols in blocks of 3: "abc", "abc", and "a" is dropped.
	d, err := BlockDistribution([]rune("abcabca"), 3)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if len(d) != 1 || d["abc"] != 1 {
		t.Errorf("%v", d)
	}
}

func TestBlockDistributionMultibyteSymbols(t *testing.T) {
	d, err := BlockDistribution([]rune("ééàé"), 2)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if d["éé"] != 0.5 || d["àé"] != 0.5 {
		t.Errorf("%v", d)
	}
}

func TestDistributionErrors(t *testing.T) {
	if _, err := SymbolDistribution(nil); errors.Cause(err) != ErrEmptyInput {
		t.Errorf("%v", err)
	}
	if _, err := BlockDistribution([]rune("abc"), 4); errors.Cause(err) != ErrEmptyInput {
		t.Errorf("%v", err)
	}
	for _, bsize := range []int{0, -1} {
		if _, err := BlockDistribution([]rune("abc"), bsize); errors.Cause(err) != ErrInvalidBlockSize {
			t.Errorf("%d: %v", bsize, err)
		}
	}
}

func TestTokensSorted(t *testing.T) {
	d := Distribution{"c": 0.25, "a": 0.25, "b": 0.5}
	tokens := d.Tokens()
	if len(tokens) != 3 || tokens[0] != "a" || tokens[1] != "b" || tokens[2] != "c" {
		t.Errorf("%v", tokens)
	}
}
