package blockcoding

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func TestAnalyzeExample(t *testing.T) {
	a, err := Analyze([]rune("AAAAAAAABBBBCCD"), 4)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if math.Abs(a.SymbolEntropy-1.640224) > 1e-6 {
		t.Errorf("%f", a.SymbolEntropy)
	}

	want := []Row{
		{BlockSize: 1, BlockEntropy: 1.640224, AvgCodeLength: 25.0 / 15, Distinct: 4, EncodedBits: 25},
		{BlockSize: 2, BlockEntropy: 0.689392, AvgCodeLength: 5.0 / 7, Distinct: 3, EncodedBits: 10},
		{BlockSize: 3, BlockEntropy: 0.640643, AvgCodeLength: 2.0 / 3, Distinct: 4, EncodedBits: 10},
		{BlockSize: 4, BlockEntropy: 0.229574, AvgCodeLength: 0.25, Distinct: 2, EncodedBits: 3},
	}
	if len(a.Rows) != len(want) {
		t.Fatalf("%d rows", len(a.Rows))
	}
	for i, w := range want {
		r := a.Rows[i]
		if r.BlockSize != w.BlockSize || r.Distinct != w.Distinct || r.EncodedBits != w.EncodedBits {
			t.Errorf("%d: %+v", i, r)
		}
		if math.Abs(r.BlockEntropy-w.BlockEntropy) > 1e-6 {
			t.Errorf("%d: entropy %f != %f", i, r.BlockEntropy, w.BlockEntropy)
		}
		if math.Abs(r.AvgCodeLength-w.AvgCodeLength) > 1e-12 {
			t.Errorf("%d: length %f != %f", i, r.AvgCodeLength, w.AvgCodeLength)
		}
		if red := r.AvgCodeLength - a.SymbolEntropy; r.Redundancy != red {
			t.Errorf("%d: redundancy %f != %f", i, r.Redundancy, red)
		}
	}
	if math.Abs(a.Rows[0].Redundancy-0.026443) > 1e-6 {
		t.Errorf("%f", a.Rows[0].Redundancy)
	}
}

func TestAnalyzeRedundancyBlockOne(t *testing.T) {
	inputs := []string{
		"abracadabra",
		"the quick brown fox jumps over the lazy dog",
		"zzzzzzzz",
		"ab",
	}
	for _, in := range inputs {
		a, err := Analyze([]rune(in), 1)
		if err != nil {
			t.Fatalf("%q: %+v", in, err)
		}
		if r := a.Rows[0].Redundancy; r < -1e-9 || r > 1 {
			t.Errorf("%q: %f", in, r)
		}
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	seq := []rune("It is rather for us to be here dedicated to the great task remaining before us")
	first, err := Analyze(seq, 6)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	for _, workers := range []int{1, 2, 3, 8} {
		a, err := Analyze(seq, 6, WithWorkers(workers))
		if err != nil {
			t.Fatalf("%+v", err)
		}
		if len(a.Rows) != len(first.Rows) {
			t.Fatalf("%d: %d rows", workers, len(a.Rows))
		}
		for i := range a.Rows {
			if a.Rows[i] != first.Rows[i] {
				t.Errorf("%d: %+v != %+v", workers, a.Rows[i], first.Rows[i])
			}
		}
		if a.Digest() != first.Digest() {
			t.Errorf("%d: digest %x != %x", workers, a.Digest(), first.Digest())
		}
	}

	other, err := Analyze(seq[1:], 6)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if other.Digest() == first.Digest() {
		t.Errorf("same digest for different analyses")
	}
}

func TestAnalyzeErrors(t *testing.T) {
	if _, err := Analyze([]rune("abc"), 0); errors.Cause(err) != ErrInvalidBlockSize {
		t.Errorf("%v", err)
	}
	if _, err := Analyze(nil, 4); errors.Cause(err) != ErrEmptyInput {
		t.Errorf("%v", err)
	}
	if _, err := Analyze([]rune("abc"), 4, WithWorkers(2)); errors.Cause(err) != ErrEmptyInput {
		t.Errorf("%v", err)
	}
}

func TestFingerprint(t *testing.T) {
	if Fingerprint([]rune("abc")) != Fingerprint([]rune("abc")) {
		t.Errorf("unstable fingerprint")
	}
	if Fingerprint([]rune("abc")) == Fingerprint([]rune("abd")) {
		t.Errorf("collision")
	}
}
