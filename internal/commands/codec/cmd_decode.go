package codec

import (
	"github.com/bokysan/basecodec/internal/logging"
	"github.com/bokysan/basecodec/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// DecodeCommand decodes files, literal texts or stdin. Decoded data is written out as-is, without separators.
type DecodeCommand struct {
	Streams `yaml:"-"`

	Encoding string   `yaml:"encoding" short:"e" long:"encoding" env:"ENCODING" description:"Encoder to use, see 'encoders' command" default:"base64"`
	Text     []string `yaml:"-"        short:"t" long:"text"                    description:"Decode the given text instead of reading input files"`
	Output   string   `yaml:"output"   short:"o" long:"output"   env:"OUTPUT"   description:"Output file, '-' for stdout" default:"-"`
	Strict   bool     `yaml:"strict"             long:"strict"   env:"STRICT"   description:"Only accept canonical input (length, padding and trailing bits are checked)"`
}

func NewDecodeCommand() *DecodeCommand {
	return &DecodeCommand{
		Encoding: "base64",
		Output:   StdStream,
	}
}

// encoder returns the configured encoder, with strict decoding applied where supported
func (c *DecodeCommand) encoder() (enc.Encoder, error) {
	encoder, err := enc.ByName(c.Encoding)
	if err != nil {
		return nil, err
	}
	if b64, ok := encoder.(*enc.Base64Encoder); ok {
		b64.Strict = c.Strict
	} else if c.Strict {
		log.Warnf("Strict decoding is not supported by %v, ignoring", encoder.Name())
	}
	return encoder, nil
}

func (c *DecodeCommand) Execute(args []string) error {
	if err := logging.SetupLogging(); err != nil {
		return err
	}

	encoder, err := c.encoder()
	if err != nil {
		return err
	}

	out, closeOut, err := c.openOutput(c.Output)
	if err != nil {
		return err
	}
	defer closeOut()

	var errs error
	for _, in := range c.inputs(c.Text, args) {
		text, err := in.read()
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not read %v", in.name))
			continue
		}

		src := string(text)
		if _, raw := encoder.(*enc.RawEncoder); !raw {
			src = Unwrap(src)
		}

		data, err := encoder.Decode(src)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not decode %v", in.name))
			continue
		}
		log.Debugf("Decoded %v using %v: %d characters -> %d bytes", in.name, encoder.Name(), len(src), len(data))

		if _, err := out.Write(data); err != nil {
			return errors.Wrapf(err, "Could not write decoded %v", in.name)
		}
	}

	return errs
}
