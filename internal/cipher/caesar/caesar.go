// Package caesar implements the classic shift cipher over the ASCII latin alphabet.
package caesar

import "fmt"

// AlphabetSize is the number of letters the shift rotates through
const AlphabetSize = 26

// Candidate is one possible decryption found by BruteForce
type Candidate struct {
	Shift int
	Text  string
}

func (c Candidate) String() string {
	return fmt.Sprintf("SHIFT %2d: %s", c.Shift, c.Text)
}

// Encrypt rotates every ASCII letter in text by shift positions, keeping its case. Other characters are copied
// as they are. A negative shift decrypts.
func Encrypt(text string, shift int) string {
	shift %= AlphabetSize
	if shift < 0 {
		shift += AlphabetSize
	}

	res := []byte(text)
	for i, c := range res {
		var base byte
		switch {
		case c >= 'A' && c <= 'Z':
			base = 'A'
		case c >= 'a' && c <= 'z':
			base = 'a'
		default:
			continue
		}
		res[i] = (c-base+byte(shift))%AlphabetSize + base
	}
	return string(res)
}

// Decrypt is the inverse of Encrypt
func Decrypt(text string, shift int) string {
	return Encrypt(text, -shift)
}

// BruteForce returns the decryption of text for every possible shift, in order from 0 to 25.
func BruteForce(text string) []Candidate {
	res := make([]Candidate, 0, AlphabetSize)
	for shift := 0; shift < AlphabetSize; shift++ {
		res = append(res, Candidate{
			Shift: shift,
			Text:  Decrypt(text, shift),
		})
	}
	return res
}
