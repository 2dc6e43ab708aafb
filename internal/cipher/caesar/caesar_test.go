package caesar

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_Encrypt(t *testing.T) {
	tests := []struct {
		in    string
		shift int
		out   string
	}{
		{"abc", 1, "bcd"},
		{"xyz", 3, "abc"},
		{"Hello, World!", 3, "Khoor, Zruog!"},
		{"Hello, World!", 29, "Khoor, Zruog!"},
		{"Khoor, Zruog!", -3, "Hello, World!"},
		{"abc", -27, "zab"},
		{"Hola á ë 123", 13, "Ubyn á ë 123"},
		{"", 5, ""},
	}

	for _, tt := range tests {
		require.Equal(t, tt.out, Encrypt(tt.in, tt.shift), "Encrypt(%q, %v)", tt.in, tt.shift)
	}
}

func Test_Decrypt(t *testing.T) {
	for shift := -30; shift <= 30; shift++ {
		text := "The Quick Brown Fox Jumps Over The Lazy Dog."
		require.Equal(t, text, Decrypt(Encrypt(text, shift), shift))
	}
}

func Test_BruteForce(t *testing.T) {
	candidates := BruteForce(Encrypt("attack at dawn", 7))
	require.Len(t, candidates, AlphabetSize)

	for i, c := range candidates {
		require.Equal(t, i, c.Shift)
	}
	require.Equal(t, "attack at dawn", candidates[7].Text)
	require.Equal(t, "SHIFT  7: attack at dawn", candidates[7].String())
	require.Equal(t, "SHIFT 12: voovxf vo yvri", candidates[12].String())
}
