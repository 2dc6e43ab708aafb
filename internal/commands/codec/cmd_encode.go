package codec

import (
	"github.com/bokysan/basecodec/internal/logging"
	"github.com/bokysan/basecodec/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
)

// EncodeCommand encodes files, literal texts or stdin. Every input produces one line of output.
type EncodeCommand struct {
	Streams `yaml:"-"`

	Encoding string   `yaml:"encoding" short:"e" long:"encoding" env:"ENCODING" description:"Encoder to use, see 'encoders' command" default:"base64"`
	Text     []string `yaml:"-"        short:"t" long:"text"                    description:"Encode the given text instead of reading input files"`
	Output   string   `yaml:"output"   short:"o" long:"output"   env:"OUTPUT"   description:"Output file, '-' for stdout" default:"-"`
	Wrap     int      `yaml:"wrap"     short:"w" long:"wrap"     env:"WRAP"     description:"Break encoded lines after given number of characters, 0 to disable" default:"0"`
}

func NewEncodeCommand() *EncodeCommand {
	return &EncodeCommand{
		Encoding: "base64",
		Output:   StdStream,
	}
}

func (c *EncodeCommand) Execute(args []string) error {
	if err := logging.SetupLogging(); err != nil {
		return err
	}

	encoder, err := enc.ByName(c.Encoding)
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
		data, err := in.read()
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "Could not read %v", in.name))
			continue
		}

		text := encoder.Encode(data)
		log.Debugf("Encoded %v using %v: %d bytes -> %d characters", in.name, encoder.Name(), len(data), len(text))

		if _, err := io.WriteString(out, Wrap(text, c.Wrap)+"\n"); err != nil {
			return errors.Wrapf(err, "Could not write encoded %v", in.name)
		}
	}

	return errs
}
