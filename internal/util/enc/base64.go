package enc

import (
	"github.com/pkg/errors"
	"strings"
)

const (
	// Alphabet is the standard Base64 alphabet. Symbols are positional: the index of a character is its 6-bit value.
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

	// Padding is appended to the encoded text when the input length is not a multiple of three
	Padding = '='

	invalidIndex = 0xFF
)

// shifts extract the four 6-bit indices from a 24-bit group, most significant first
var shifts = [4]uint{18, 12, 6, 0}

// decodeMap is the inverse of Alphabet. Characters not in the alphabet map to invalidIndex.
var decodeMap [256]byte

func init() {
	for i := range decodeMap {
		decodeMap[i] = invalidIndex
	}
	for i := 0; i < len(Alphabet); i++ {
		decodeMap[Alphabet[i]] = byte(i)
	}
}

// EncodedLen returns the length of the Base64 text for n bytes of input.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// Encode returns the Base64 representation of data. It never fails.
func Encode(data []byte) string {
	dst := make([]byte, 0, EncodedLen(len(data)))

	for i := 0; i < len(data); i += 3 {
		group := data[i:min(i+3, len(data))]
		padding := 3 - len(group)

		var bits uint32
		for _, b := range group {
			bits = bits<<8 | uint32(b)
		}
		bits <<= 8 * padding

		// Only the first 4-padding symbols carry data, the rest are pure zero fill
		for _, shift := range shifts[:4-padding] {
			dst = append(dst, Alphabet[bits>>shift&0x3F])
		}
		for ; padding > 0; padding-- {
			dst = append(dst, Padding)
		}
	}

	return string(dst)
}

// Decode reverses Encode. Trailing padding is stripped and ignored, the length of the text is not checked.
// A character outside of the alphabet (including padding in the middle of the text) yields an
// InvalidCharacterError and no data.
func Decode(text string) ([]byte, error) {
	return decode(text, false)
}

// DecodeStrict works like Decode, but only accepts canonical text as produced by Encode: the length must be a
// multiple of four, there may be at most two padding characters and the discarded bits must be zero.
func DecodeStrict(text string) ([]byte, error) {
	return decode(text, true)
}

func decode(text string, strict bool) ([]byte, error) {
	symbols := strings.TrimRight(text, string(Padding))

	if strict {
		if len(text)-len(symbols) > 2 {
			return nil, errors.WithStack(ErrTooMuchPadding)
		}
		if len(text)%4 != 0 {
			return nil, errors.Wrapf(ErrMalformedLength, "length %d is not a multiple of 4", len(text))
		}
	}

	dst := make([]byte, 0, len(symbols)*3/4)

	var acc uint32
	buffered := uint(0)

	for i := 0; i < len(symbols); i++ {
		idx := decodeMap[symbols[i]]
		if idx == invalidIndex {
			return nil, &InvalidCharacterError{Char: symbols[i], Offset: i}
		}

		acc = acc<<6 | uint32(idx)
		buffered += 6

		for buffered >= 8 {
			buffered -= 8
			dst = append(dst, byte(acc>>buffered))
		}
		// Keep only the bits that have not been emitted yet
		acc &= 1<<buffered - 1
	}

	if strict && acc != 0 {
		return nil, errors.WithStack(ErrNonZeroPadBits)
	}

	return dst, nil
}

// -------------------------------------------------------

// Base64Encoder encodes 3 bytes to 4 characters using the standard alphabet and padding
type Base64Encoder struct {
	// Strict makes Decode reject text which Encode could not have produced
	Strict bool
}

func (b *Base64Encoder) Name() string {
	return "Base64"
}

func (b *Base64Encoder) Code() byte {
	return 'S'
}

func (b *Base64Encoder) Encode(data []byte) string {
	return Encode(data)
}

func (b *Base64Encoder) Decode(data string) ([]byte, error) {
	res, err := decode(data, b.Strict)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base64Encoder) BlocksizeRaw() int {
	return 3
}

func (b *Base64Encoder) BlocksizeEncoded() int {
	return 4
}

func (b *Base64Encoder) ASCII() bool {
	return true
}

func (b *Base64Encoder) TestPatterns() []string {
	return []string{
		"aAbBcCdDeEfFgGhHiIjJkKlLmMnNoOpPqQrRsStTuUvVwWxXyYzZ+0129/",
	}
}
