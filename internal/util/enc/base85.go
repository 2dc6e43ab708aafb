package enc

import (
	"encoding/ascii85"
	"fmt"
	"github.com/pkg/errors"
)

// base85Swaps lists ascii85 characters which are replaced in the output, as they are problematic in
// host names, shells and markdown. The replacements are not used by ascii85 itself.
var base85Swaps = map[byte]byte{
	'.':  'v',
	'\\': 'w',
	'`':  'x',
}

var base85Unswaps = map[byte]byte{
	'v': '.',
	'w': '\\',
	'x': '`',
}

func transliterate(src []byte, table map[byte]byte) []byte {
	for k, b := range src {
		if r, ok := table[b]; ok {
			src[k] = r
		}
	}
	return src
}

// -------------------------------------------------------

// Base85Encoder encodes 4 bytes to 5 characters
type Base85Encoder struct {
}

func (b *Base85Encoder) Name() string {
	return "Base85"
}

func (b *Base85Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base85Encoder) Code() byte {
	return 'W'
}

func (b *Base85Encoder) Encode(data []byte) string {
	dst := make([]byte, ascii85.MaxEncodedLen(len(data)))
	n := ascii85.Encode(dst, data)
	return string(transliterate(dst[:n], base85Swaps))
}

func (b *Base85Encoder) Decode(data string) ([]byte, error) {
	source := transliterate([]byte(data), base85Unswaps)

	// Every 'z' expands to four bytes
	dst := make([]byte, 4*len(source))
	ndst, _, err := ascii85.Decode(dst, source, true)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return dst[:ndst], nil
}

func (b *Base85Encoder) BlocksizeRaw() int {
	return 4
}

func (b *Base85Encoder) BlocksizeEncoded() int {
	return 5
}

func (b *Base85Encoder) ASCII() bool {
	return true
}

func (b *Base85Encoder) TestPatterns() []string {
	str := make([]byte, 85)
	// 33 (!) through 117 (u)
	for k := range str {
		str[k] = byte(k + 33)
	}

	return []string{
		string(transliterate(str, base85Swaps)),
	}
}
