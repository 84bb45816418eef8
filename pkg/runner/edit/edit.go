package edit

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/date"
)

// ErrNoEditor is returned when no editor is configured.
var ErrNoEditor = errors.New("edit: $EDITOR is not set")

// Edit opens the agenda file of one date in the user's editor.
type Edit struct {
	Service *app.Service
	Date    date.Date
	// Editor is the command line to run, defaults to $EDITOR. It may carry
	// arguments, e.g. "code --wait".
	Editor string

	In  io.Reader
	Out io.Writer
	Err io.Writer
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no persistence")
	}
	if err := n.Date.Check(); err != nil {
		return err
	}

	editor := n.Editor
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	argv := strings.Fields(editor)
	if len(argv) == 0 {
		return ErrNoEditor
	}

	path, err := n.Service.Path(n.Date)
	if err != nil {
		return err
	}
	// The editor creates the file, but not its directory.
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("edit: %w", err)
	}

	cmd := exec.CommandContext(ctx, argv[0], append(argv[1:], path)...)
	cmd.Stdin = orDefault(n.In, os.Stdin)
	cmd.Stdout = orDefaultW(n.Out, os.Stdout)
	cmd.Stderr = orDefaultW(n.Err, os.Stderr)

	log.Debug().Str("component", "edit").Str("editor", argv[0]).Str("path", path).Msg("open")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("edit: %s: %w", argv[0], err)
	}
	return nil
}

func orDefault(r io.Reader, def io.Reader) io.Reader {
	if r == nil {
		return def
	}
	return r
}

func orDefaultW(w io.Writer, def io.Writer) io.Writer {
	if w == nil {
		return def
	}
	return w
}
