package enc

// Encoder converts arbitrary binary data into text and back.
type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represends the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) string

	// Decode is the reverse proces of encoding
	Decode(string) ([]byte, error)

	// BlocksizeRaw returns the block size (number of bytes) this encoder takes at one time
	BlocksizeRaw() int

	// BlocksizeEncoded returns the block size (number of bytes) output by this encoder for every input block
	BlocksizeEncoded() int

	// ASCII is true if the encoded output only ever contains printable 7-bit characters
	ASCII() bool

	// Return a list of test patterns for the specified encoding
	TestPatterns() []string
}

// Ratio returns the expected growth of data when encoded with the given encoder.
func Ratio(e Encoder) float64 {
	return float64(e.BlocksizeEncoded()) / float64(e.BlocksizeRaw())
}
