package enc

import (
	"errors"
	"github.com/stretchr/testify/require"
	"go.chromium.org/luci/common/data/base128"
	"math/rand"
	"testing"
)

func Test_Base128Transliterate(t *testing.T) {
	str := make([]byte, 128)
	for k := range str {
		str[k] = byte(k)
	}
	trans := escape128(str)
	require.Equal(t, len(str), len(trans))

	back, err := unescape128(trans)
	require.NoError(t, err)
	require.Equal(t, str, back)
}

func Test_Base128Encoder(t *testing.T) {
	for _, encoderTest := range encoderTests {
		encoder := Base128Encoder{}
		encoded := encoder.Encode(encoderTest)
		require.NotContains(t, encoded, ".")
		decoded, err := encoder.Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, encoderTest, decoded)
	}
}

func Test_Base128InvalidCharacter(t *testing.T) {
	encoder := Base128Encoder{}
	_, err := encoder.Decode("ab.d")
	require.True(t, errors.Is(err, ErrInvalidCharacter))
}

func Test_Base128SingleZeroByte(t *testing.T) {
	encoder := Base128Encoder{}
	encoded := encoder.Encode([]byte{0x00})
	require.Equal(t, "aa", encoded)
	decoded, err := encoder.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, []byte{0x00}, decoded)
}

func Test_Base128AllLengths(t *testing.T) {
	encoder := Base128Encoder{}
	r := rand.New(rand.NewSource(128))
	for n := 0; n <= 30; n++ {
		src := make([]byte, n)
		r.Read(src)
		if n > 0 {
			src[0] = 0xFF
		}
		encoded := encoder.Encode(src)
		require.Len(t, encoded, base128.EncodedLen(n), "length %d", n)
		decoded, err := encoder.Decode(encoded)
		require.NoError(t, err, "length %d", n)
		require.Equal(t, src, decoded, "length %d", n)
	}
}

func Test_Base128AllBytes(t *testing.T) {
	src := make([]byte, 256)
	for k := range src {
		src[k] = byte(k)
	}
	encoder := Base128Encoder{}
	decoded, err := encoder.Decode(encoder.Encode(src))
	require.NoError(t, err)
	require.Equal(t, src, decoded)
}

func Test_Base128InvalidLength(t *testing.T) {
	encoder := Base128Encoder{}
	_, err := encoder.Decode("a")
	require.True(t, errors.Is(err, base128.ErrLength))
	require.True(t, IsCorrupt(err))
}
