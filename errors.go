package blockcoding

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrEmptyInput is returned when a distribution is requested over zero symbols or zero complete blocks.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidBlockSize is returned when a block size is not positive.
	ErrInvalidBlockSize = errors.New("invalid block size")

	// ErrTruncated is returned by Decode when the trailing bits do not complete a codeword.
	ErrTruncated = errors.New("bitstream ends inside a codeword")
)

// A MissingCodeError is returned by Encode when a block of the sequence has no entry in the code table.
type MissingCodeError struct {
	Token string
}

func (e *MissingCodeError) Error() string {
	return fmt.Sprintf("no code for block %q", e.Token)
}
