package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/peterbourgon/diskv/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tableflip.dev/agenda/pkg/agenda"
	"tableflip.dev/agenda/pkg/date"
)

// ErrNoRecord is returned when a date has no agenda file.
var ErrNoRecord = errors.New("store: no agenda for date")

// filenamePattern is the syntactic filter for agenda files. It is looser than
// calendar validity: 39-19-2024.toml passes here and is dropped by Validate.
var filenamePattern = "[0-3][0-9]-[0-1][0-9]-[0-9][0-9][0-9][0-9]." + agenda.Ext

// Persistence defines the persistence contract for agenda records.
type Persistence interface {
	// Dates lists every valid date that has an agenda file. Unreadable
	// directories and unparsable names are skipped, never reported.
	Dates(ctx context.Context) []date.Date
	// Load reads the record for d. Returns ErrNoRecord when the file is absent.
	Load(ctx context.Context, d date.Date) (*agenda.Record, error)
	// Append adds one entry block to d's file, creating it when needed.
	Append(ctx context.Context, d date.Date, e agenda.Entry) error
	// Remove deletes d's file. Returns ErrNoRecord when the file is absent.
	Remove(ctx context.Context, d date.Date) error
	// Path is the file backing d, whether or not it exists.
	Path(d date.Date) string
	Watch(ctx context.Context) (<-chan Event, error)
}

// Config supplies the directory holding agenda files.
type Config interface {
	BasePath() string
}

// Load creates a Persistence backed by diskv rooted at cfg.BasePath().
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		return nil, errors.New("store: config required")
	}
	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}

	return &persistence{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			// Files are edited behind our back by $EDITOR, so nothing is cached.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
		log:      log.With().Str("component", "store").Logger(),
	}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	log      zerolog.Logger
}

func (p *persistence) Path(d date.Date) string {
	return agenda.Path(p.basePath, d)
}

func (p *persistence) Dates(ctx context.Context) []date.Date {
	// Glob skips I/O errors, so a missing directory or an unreadable entry
	// leaves the rest of the listing intact.
	names, err := doublestar.Glob(os.DirFS(p.basePath), filenamePattern, doublestar.WithFilesOnly())
	if err != nil {
		p.log.Warn().Err(err).Msg("scan agenda directory")
		return nil
	}

	dates := make([]date.Date, 0, len(names))
	for _, name := range names {
		if ctx.Err() != nil {
			break
		}
		d, err := parseFilename(name)
		if err != nil {
			p.log.Debug().Err(err).Str("file", name).Msg("skipping agenda file")
			continue
		}
		dates = append(dates, d)
	}
	date.Sort(dates)
	return dates
}

func (p *persistence) Load(_ context.Context, d date.Date) (*agenda.Record, error) {
	key := agenda.Filename(d)
	data, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrNoRecord
		}
		return nil, fmt.Errorf("store: read %s: %w", key, err)
	}
	r, err := agenda.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("store: %s: %w", key, err)
	}
	return r, nil
}

func (p *persistence) Append(_ context.Context, d date.Date, e agenda.Entry) error {
	if err := d.Check(); err != nil {
		return err
	}
	block, err := e.Encode()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return fmt.Errorf("store: ensure base path: %w", err)
	}

	path := p.Path(d)
	terminated, err := endsWithNewline(path)
	if err != nil {
		return fmt.Errorf("store: inspect %s: %w", path, err)
	}
	if !terminated {
		block = append([]byte("\n"), block...)
	}

	// diskv only writes whole values; appending goes straight to the file so
	// existing bytes are never rewritten.
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("store: open %s: %w", path, err)
	}
	if _, err := f.Write(block); err != nil {
		_ = f.Close()
		return fmt.Errorf("store: append %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("store: close %s: %w", path, err)
	}
	p.log.Debug().Str("date", d.ISO()).Str("kind", e.Kind.String()).Msg("appended entry")
	return nil
}

func (p *persistence) Remove(_ context.Context, d date.Date) error {
	key := agenda.Filename(d)
	if !p.d.Has(key) {
		return ErrNoRecord
	}
	if err := p.d.Erase(key); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrNoRecord
		}
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

// endsWithNewline reports whether path is missing, empty or ends in '\n'.
func endsWithNewline(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return true, nil
		}
		return false, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return true, nil
	}
	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return last[0] == '\n', nil
}

// parseFilename turns a name that matched filenamePattern into a valid date.
func parseFilename(name string) (date.Date, error) {
	stem := strings.TrimSuffix(filepath.Base(name), "."+agenda.Ext)
	parts := strings.Split(stem, "-")
	if len(parts) != 3 {
		return date.Date{}, fmt.Errorf("store: unexpected filename %q", name)
	}
	var nums [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return date.Date{}, fmt.Errorf("store: filename %q: %w", name, err)
		}
		nums[i] = n
	}
	d := date.New(nums[2], nums[1], nums[0])
	if err := d.Check(); err != nil {
		return date.Date{}, err
	}
	return d, nil
}

// Agenda files live flat in the base directory, so keys are file names.
func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return strings.Join(pathKey.Path, "/") + "/" + pathKey.FileName
}
