package main

import (
	"fmt"
	"github.com/bokysan/basecodec/internal/args"
	"github.com/bokysan/basecodec/internal/commands/caesar"
	"github.com/bokysan/basecodec/internal/commands/codec"
	"github.com/bokysan/basecodec/internal/commands/server"
	"github.com/bokysan/basecodec/internal/commands/version"
	bcFlags "github.com/bokysan/basecodec/internal/flags"
	"github.com/bokysan/basecodec/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// BaseCodec is the main executable
type BaseCodec struct {
	parser *flags.Parser
}

// NewBaseCodec will create a new instance of BaseCodec and initialize the parser
func NewBaseCodec() *BaseCodec {
	executablePath := path.Base(os.Args[0])

	bc := &BaseCodec{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	bc.setupGeneral()
	bc.setupVersion()
	bc.setupEncode()
	bc.setupDecode()
	bc.setupEncoders()
	bc.setupCaesar()
	bc.setupServer()

	return bc
}

// setupGeneral will configure general options
func (bc *BaseCodec) setupGeneral() {
	if _, err := bc.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupVersion adds the `version` command
func (bc *BaseCodec) setupVersion() {
	_, err := bc.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		&version.Command{},
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (bc *BaseCodec) setupEncode() {
	_, err := bc.parser.AddCommand(
		"encode",
		"Encode binary data to text",
		"Encode files (or stdin if no files are given) to text. Each input is written as one line.",
		codec.NewEncodeCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (bc *BaseCodec) setupDecode() {
	_, err := bc.parser.AddCommand(
		"decode",
		"Decode text back to binary data",
		"Decode files (or stdin if no files are given) back to the original data. Whitespace is ignored.",
		codec.NewDecodeCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// setupEncoders adds the `encoders` command
func (bc *BaseCodec) setupEncoders() {
	_, err := bc.parser.AddCommand(
		"encoders",
		"List available encoders",
		"List the encoders which can be used with encode, decode and serve",
		&codec.EncodersCommand{},
	)
	util.MustErrorNilOrExit(err)
}

// setupCaesar adds the `caesar` command and its subcommands
func (bc *BaseCodec) setupCaesar() {
	cmd, err := bc.parser.AddCommand(
		"caesar",
		"Shift cipher",
		"Encrypt text with a shift (Caesar) cipher or try all shifts to decrypt it",
		&caesar.Command{},
	)
	util.MustErrorNilOrExit(err)

	_, err = cmd.AddCommand(
		"encrypt",
		"Shift letters by a given amount",
		"Shift every latin letter by the given amount. Other characters are left as they are.",
		&caesar.EncryptCommand{},
	)
	util.MustErrorNilOrExit(err)

	_, err = cmd.AddCommand(
		"bruteforce",
		"Print all possible decryptions",
		"Decrypt the text with every one of the 26 possible shifts",
		&caesar.BruteforceCommand{},
	)
	util.MustErrorNilOrExit(err)
}

// setupServer adds the `serve` command
func (bc *BaseCodec) setupServer() {
	_, err := bc.parser.AddCommand(
		"serve",
		"Run the HTTP server",
		"Run a HTTP server exposing the encoders: POST /encode/{encoding}, POST /decode/{encoding}, GET /encoders",
		server.NewCommand(),
	)
	util.MustErrorNilOrExit(err)
}

// main starts basecodec and reads the configuration file
func main() {
	baseCodec := NewBaseCodec()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := bcFlags.NewYamlParser(baseCodec.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	_, err := baseCodec.parser.Parse()
	util.MustErrorNilOrExit(err)
}
