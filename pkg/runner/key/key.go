package key

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/agenda/pkg/config"
	"tableflip.dev/agenda/pkg/tui"
)

// Key prints the key legend of the interactive view.
type Key struct {
	Keys config.Keys
	Out  io.Writer
}

func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Action"))
	for _, b := range tui.Bindings(k.Keys) {
		tbl.AddRow(strings.Join(b.Keys, ", "), b.Action)
	}

	_, _ = fmt.Fprintln(out, color.New(color.Bold, color.Underline).Sprint("Keys"))
	_, _ = fmt.Fprintln(out, tbl)
	return nil
}
