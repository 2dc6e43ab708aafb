package codec

import (
	"fmt"
	"github.com/bokysan/basecodec/internal/util/enc"
	"text/tabwriter"
)

// EncodersCommand lists the available encoders
type EncodersCommand struct {
	Streams
}

func (c *EncodersCommand) Execute(args []string) error {
	w := tabwriter.NewWriter(c.stdout(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tCODE\tBLOCK\tRATIO")
	for _, e := range enc.Encoders() {
		_, _ = fmt.Fprintf(w, "%v\t%v\t%d -> %d\t%.3f\n", e.Name(), string(e.Code()), e.BlocksizeRaw(), e.BlocksizeEncoded(), enc.Ratio(e))
	}
	return w.Flush()
}
