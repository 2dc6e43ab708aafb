package enc

import (
	"encoding/ascii85"
	"encoding/base32"
	stderrors "errors"
	"fmt"
	"github.com/mtraver/base91"
	"github.com/pkg/errors"
	"go.chromium.org/luci/common/data/base128"
)

var (
	// ErrInvalidCharacter is matched (via errors.Is) by every InvalidCharacterError
	ErrInvalidCharacter = errors.New("invalid character")

	// ErrMalformedLength is returned by strict decoding when the encoded text cannot be split into full groups
	ErrMalformedLength = errors.New("malformed encoded length")

	// ErrTooMuchPadding is returned by strict decoding when there are more than two padding characters
	ErrTooMuchPadding = errors.New("too much padding")

	// ErrNonZeroPadBits is returned by strict decoding when the bits discarded at the end are not zero
	ErrNonZeroPadBits = errors.New("non-zero padding bits")
)

// InvalidCharacterError is returned when the encoded text contains a character outside of the alphabet.
type InvalidCharacterError struct {
	Char   byte
	Offset int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("%v %q at offset %d", ErrInvalidCharacter, e.Char, e.Offset)
}

func (e *InvalidCharacterError) Is(target error) bool {
	return target == ErrInvalidCharacter
}

// IsCorrupt returns true if the error was caused by malformed encoded input (as opposed to e.g. an I/O error)
func IsCorrupt(err error) bool {
	if err == nil {
		return false
	}
	sentinels := []error{
		ErrInvalidCharacter, ErrMalformedLength, ErrTooMuchPadding, ErrNonZeroPadBits,
		base128.ErrLength, base128.ErrBit,
	}
	for _, sentinel := range sentinels {
		if stderrors.Is(err, sentinel) {
			return true
		}
	}
	var b32 base32.CorruptInputError
	var a85 ascii85.CorruptInputError
	var b91 base91.CorruptInputError
	return stderrors.As(err, &b32) || stderrors.As(err, &a85) || stderrors.As(err, &b91)
}
