package enc

import (
	"github.com/pkg/errors"
	"strings"
)

// ErrUnknownEncoder is returned when looking up an encoder which is not registered
var ErrUnknownEncoder = errors.New("unknown encoder")

// Encoders returns a new instance of every known encoder, the default one (Base64) first.
func Encoders() []Encoder {
	return []Encoder{
		&Base64Encoder{},
		&Base32Encoder{},
		&Base85Encoder{},
		&Base91Encoder{},
		&Base128Encoder{},
		&RawEncoder{},
	}
}

// ByName finds the encoder by its (case-insensitive) name, e.g. "base64"
func ByName(name string) (Encoder, error) {
	name = strings.TrimSpace(name)
	for _, e := range Encoders() {
		if strings.EqualFold(e.Name(), name) {
			return e, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownEncoder, "%q", name)
}

// ByCode finds the encoder by its one-letter code
func ByCode(code byte) (Encoder, error) {
	for _, e := range Encoders() {
		if e.Code() == code {
			return e, nil
		}
	}
	return nil, errors.Wrapf(ErrUnknownEncoder, "code %q", code)
}
