package blockcoding

import (
	"bytes"
	"io"
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/therootcompany/xz"
)

// A Unit selects what a single Symbol of the input is.
type Unit int

const (
	// Runes treats every Unicode code point as a symbol.
	Runes Unit = iota
	// Bytes treats every byte as a symbol.
	Bytes
)

func (u Unit) String() string {
	switch u {
	case Runes:
		return "rune"
	case Bytes:
		return "byte"
	default:
		return "unknown"
	}
}

// ParseUnit parses the names returned by Unit.String.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "rune":
		return Runes, nil
	case "byte":
		return Bytes, nil
	}
	return 0, errors.Errorf("unknown symbol unit %q", s)
}

var xzMagic = []byte("\xfd7zXZ\x00")

// Symbols converts raw content into a symbol sequence.
// In Runes mode invalid UTF-8 decodes to utf8.RuneError, one per bad byte,
// and line endings "\r\n" and "\r" become "\n".
// In Bytes mode each byte b becomes rune(b).
func Symbols(data []byte, unit Unit) []rune {
	if unit == Bytes {
		seq := make([]rune, len(data))
		for i, b := range data {
			seq[i] = rune(b)
		}
		return seq
	}

	seq := make([]rune, 0, utf8.RuneCount(data))
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		data = data[size:]
		if r == '\r' {
			if len(data) > 0 && data[0] == '\n' {
				continue
			}
			r = '\n'
		}
		seq = append(seq, r)
	}
	return seq
}

// ReadFile reads the named file as a symbol sequence.
// xz compressed files are decompressed first.
func ReadFile(name string, unit Unit) ([]rune, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	if bytes.HasPrefix(data, xzMagic) {
		r, err := xz.NewReader(bytes.NewReader(data), xz.DefaultDictMax)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", name)
		}
		data, err = io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", name)
		}
	}
	return Symbols(data, unit), nil
}
