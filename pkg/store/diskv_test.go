package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/agenda/pkg/agenda"
	"tableflip.dev/agenda/pkg/date"
)

func newTestPersistence(t *testing.T) (Persistence, string) {
	t.Helper()
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	require.NoError(t, err)
	return p, base
}

func touch(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadRequiresBasePath(t *testing.T) {
	_, err := Load(nil)
	assert.Error(t, err)
	_, err = Load(testConfig{})
	assert.Error(t, err)
}

func TestDatesFiltersFilenames(t *testing.T) {
	p, base := newTestPersistence(t)

	touch(t, base, "05-01-2024.toml", "")
	touch(t, base, "10-01-2024.toml", "[[day]]\nevent = 'x'\n")
	touch(t, base, "05-13-2024.toml", "") // month 13 fails the pattern
	touch(t, base, "31-02-2024.toml", "") // passes the pattern, fails validation
	touch(t, base, "00-01-2024.toml", "") // day 0
	touch(t, base, "5-1-2024.toml", "")
	touch(t, base, "05-01-2024.txt", "")
	touch(t, base, "notes.toml", "")
	require.NoError(t, os.Mkdir(filepath.Join(base, "01-01-2025.toml"), 0o755))

	got := p.Dates(context.Background())
	assert.Equal(t, []date.Date{date.New(2024, 1, 5), date.New(2024, 1, 10)}, got)
}

func TestDatesMissingDirectoryIsEmpty(t *testing.T) {
	p, err := Load(testConfig{path: filepath.Join(t.TempDir(), "does-not-exist")})
	require.NoError(t, err)
	assert.Empty(t, p.Dates(context.Background()))
}

func TestLoadAbsentIsErrNoRecord(t *testing.T) {
	p, _ := newTestPersistence(t)
	_, err := p.Load(context.Background(), date.New(2024, 1, 1))
	assert.ErrorIs(t, err, ErrNoRecord)
}

func TestLoadMalformedIsHardError(t *testing.T) {
	p, base := newTestPersistence(t)
	touch(t, base, "01-01-2024.toml", "[[day]\n")

	_, err := p.Load(context.Background(), date.New(2024, 1, 1))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoRecord)
	assert.ErrorIs(t, err, agenda.ErrMalformed)
}

func TestAppendThenLoad(t *testing.T) {
	p, base := newTestPersistence(t)
	ctx := context.Background()
	day := date.New(2024, 2, 29)

	require.NoError(t, p.Append(ctx, day, agenda.Timed("14:00", "15:00", "review")))
	require.NoError(t, p.Append(ctx, day, agenda.FullDay("leap day")))
	require.NoError(t, p.Append(ctx, day, agenda.Timed("09:00", "10:00", "standup")))

	_, err := os.Stat(filepath.Join(base, "29-02-2024.toml"))
	require.NoError(t, err)

	r, err := p.Load(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, []agenda.FullDayEvent{{Event: "leap day"}}, r.FullDay)
	require.Len(t, r.Timed, 2)
	assert.Equal(t, "standup", r.Timed[0].Event)
	assert.Equal(t, "review", r.Timed[1].Event)

	assert.Equal(t, []date.Date{day}, p.Dates(ctx))
}

func TestAppendNeverRewritesExistingBytes(t *testing.T) {
	p, base := newTestPersistence(t)
	ctx := context.Background()
	day := date.New(2024, 3, 1)

	// Hand-edited file without a trailing newline.
	existing := "# my notes\n[[day]]\nevent = 'kept'"
	touch(t, base, "01-03-2024.toml", existing)

	require.NoError(t, p.Append(ctx, day, agenda.FullDay("added")))

	data, err := os.ReadFile(filepath.Join(base, "01-03-2024.toml"))
	require.NoError(t, err)
	assert.Equal(t, existing, string(data[:len(existing)]))

	r, err := p.Load(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, []agenda.FullDayEvent{{Event: "kept"}, {Event: "added"}}, r.FullDay)
}

func TestAppendRejectsInvalidInput(t *testing.T) {
	p, base := newTestPersistence(t)
	ctx := context.Background()

	err := p.Append(ctx, date.New(2023, 2, 29), agenda.FullDay("nope"))
	assert.ErrorIs(t, err, date.ErrInvalid)

	err = p.Append(ctx, date.New(2023, 2, 28), agenda.FullDay(""))
	assert.ErrorIs(t, err, agenda.ErrEmptyEntry)

	entries, err := os.ReadDir(base)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRemove(t *testing.T) {
	p, base := newTestPersistence(t)
	ctx := context.Background()
	day := date.New(2024, 1, 5)

	assert.ErrorIs(t, p.Remove(ctx, day), ErrNoRecord)

	touch(t, base, "05-01-2024.toml", "")
	require.NoError(t, p.Remove(ctx, day))
	_, err := os.Stat(filepath.Join(base, "05-01-2024.toml"))
	assert.True(t, os.IsNotExist(err))
}

func TestPath(t *testing.T) {
	p, base := newTestPersistence(t)
	assert.Equal(t, filepath.Join(base, "16-09-2001.toml"), p.Path(date.New(2001, 9, 16)))
}

func TestParseFilename(t *testing.T) {
	d, err := parseFilename("16-09-2001.toml")
	require.NoError(t, err)
	assert.Equal(t, date.New(2001, 9, 16), d)

	_, err = parseFilename("31-02-2024.toml")
	assert.ErrorIs(t, err, date.ErrInvalid)
}
