package enc

import (
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func Test_Base32Encoder(t *testing.T) {
	for _, encoderTest := range encoderTests {
		encoder := Base32Encoder{}
		encoded := encoder.Encode(encoderTest)
		require.NotContains(t, encoded, "=")
		require.NotContains(t, encoded, ".")
		decoded, err := encoder.Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, encoderTest, decoded)

		decoded, err = encoder.Decode(strings.ToUpper(encoded))
		require.NoError(t, err)
		require.Equal(t, encoderTest, decoded)
	}
}

func Test_Base32Char(t *testing.T) {
	for i := 0; i < 32; i++ {
		c := IntToBase32Char(i)
		require.Equal(t, i, Base32CharToInt(c))
	}
	require.Equal(t, byte('a'), IntToBase32Char(32))
	require.Equal(t, 1, Base32CharToInt('B'))
	require.Equal(t, -1, Base32CharToInt('9'))
}
