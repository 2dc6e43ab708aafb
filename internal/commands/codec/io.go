package codec

import (
	"fmt"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"io/ioutil"
	"os"
)

// StdStream is the file name which represents stdin or stdout
const StdStream = "-"

// input is a single piece of data to be processed by a command
type input struct {
	name string
	read func() ([]byte, error)
}

// Streams holds the standard streams a command works with. Nil values mean os.Stdin / os.Stdout.
type Streams struct {
	Stdin  io.Reader
	Stdout io.Writer
}

func (s *Streams) stdin() io.Reader {
	if s.Stdin == nil {
		return os.Stdin
	}
	return s.Stdin
}

func (s *Streams) stdout() io.Writer {
	if s.Stdout == nil {
		return os.Stdout
	}
	return s.Stdout
}

// inputs returns the literal texts first and the files afterwards. Without any, stdin is read.
func (s *Streams) inputs(texts []string, files []string) []input {
	res := make([]input, 0, len(texts)+len(files))
	for i, text := range texts {
		text := text
		res = append(res, input{
			name: fmt.Sprintf("text #%d", i+1),
			read: func() ([]byte, error) {
				return []byte(text), nil
			},
		})
	}

	if len(res) == 0 && len(files) == 0 {
		files = []string{StdStream}
	}

	for _, file := range files {
		file := file
		if file == StdStream {
			res = append(res, input{
				name: "stdin",
				read: func() ([]byte, error) {
					data, err := ioutil.ReadAll(s.stdin())
					return data, errors.WithStack(err)
				},
			})
		} else {
			res = append(res, input{
				name: file,
				read: func() ([]byte, error) {
					data, err := ioutil.ReadFile(file)
					return data, errors.WithStack(err)
				},
			})
		}
	}
	return res
}

// openOutput returns the writer for the given output file name and a function to close it.
func (s *Streams) openOutput(output string) (io.Writer, func(), error) {
	if output == "" || output == StdStream {
		return s.stdout(), func() {}, nil
	}

	f, err := os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "Could not open %v for writing", output)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			log.Errorf("Could not close %s: %v", output, err)
		}
	}, nil
}
