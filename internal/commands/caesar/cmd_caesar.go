package caesar

import (
	"fmt"
	cipher "github.com/bokysan/basecodec/internal/cipher/caesar"
	"github.com/bokysan/basecodec/internal/logging"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
)

// Command is the parent of the shift cipher commands. It has no options of its own.
type Command struct {
}

// EncryptCommand shifts the given texts by a fixed amount
type EncryptCommand struct {
	Shift int `yaml:"shift" short:"s" long:"shift" env:"SHIFT" description:"Number of positions to shift the letters by. Use negative numbers to decrypt." required:"true"`

	Args struct {
		Text []string `positional-arg-name:"TEXT" required:"1"`
	} `positional-args:"yes" required:"yes"`

	out io.Writer
}

// BruteforceCommand prints the given texts decrypted with every possible shift
type BruteforceCommand struct {
	Args struct {
		Text []string `positional-arg-name:"TEXT" required:"1"`
	} `positional-args:"yes" required:"yes"`

	out io.Writer
}

func writer(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}

func (c *EncryptCommand) Execute(args []string) error {
	if err := logging.SetupLogging(); err != nil {
		return err
	}

	log.Debugf("Shifting %d text(s) by %d", len(c.Args.Text), c.Shift)
	for _, text := range c.Args.Text {
		if _, err := fmt.Fprintln(writer(c.out), cipher.Encrypt(text, c.Shift)); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func (c *BruteforceCommand) Execute(args []string) error {
	if err := logging.SetupLogging(); err != nil {
		return err
	}

	for _, text := range c.Args.Text {
		for _, candidate := range cipher.BruteForce(text) {
			if _, err := fmt.Fprintln(writer(c.out), candidate); err != nil {
				return errors.WithStack(err)
			}
		}
	}
	return nil
}
