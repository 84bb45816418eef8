package options

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/printers"
)

// OutputOptions
type OutputOptions struct {
	Output string
	// Out receives error documents; defaults to color.Output.
	Out io.Writer
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().StringVarP(&po.Output, "output", "o", printers.FormatText,
		"Output format. One of "+strings.Join(printers.Formats, ", ")+".")
}

func (o *OutputOptions) Validate() error {
	for _, f := range printers.Formats {
		if o.Output == f {
			return nil
		}
	}
	return fmt.Errorf("unknown output format %q, want one of %s", o.Output, strings.Join(printers.Formats, ", "))
}

// HandleError prints err as {"error": "..."} when the output is JSON and
// swallows it; otherwise err is returned unchanged.
func (o *OutputOptions) HandleError(err error) error {
	if o.Output == printers.FormatJSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		w := o.Out
		if w == nil {
			w = color.Output
		}
		_, _ = fmt.Fprintln(w, string(b))
		return nil
	}
	return err
}
