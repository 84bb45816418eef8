package export

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/agenda/pkg/agenda"
	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/date"
	"tableflip.dev/agenda/pkg/store"
)

type dirConfig string

func (d dirConfig) BasePath() string { return string(d) }

var now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func seeded(t *testing.T) *app.Service {
	t.Helper()
	p, err := store.Load(dirConfig(t.TempDir()))
	require.NoError(t, err)
	color.NoColor = true
	svc := &app.Service{Persistence: p}
	ctx := context.Background()
	require.NoError(t, svc.Add(ctx, date.New(2024, 1, 5), agenda.FullDay("holiday")))
	require.NoError(t, svc.Add(ctx, date.New(2024, 2, 1), agenda.Timed("09:00", "10:30", "standup")))
	return svc
}

func TestExportStdout(t *testing.T) {
	var out bytes.Buffer
	e := &Export{Service: seeded(t), Now: now, Out: &out}
	require.NoError(t, e.Do(context.Background()))

	s := out.String()
	assert.True(t, strings.HasPrefix(s, "BEGIN:VCALENDAR"))
	assert.Contains(t, s, "SUMMARY:holiday")
	assert.Contains(t, s, "SUMMARY:standup")
	assert.Contains(t, s, "20240201T090000")
}

func TestExportRangeToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ics")
	var out bytes.Buffer
	e := &Export{
		Service: seeded(t),
		From:    date.New(2024, 1, 10),
		File:    path,
		Now:     now,
		Out:     &out,
	}
	require.NoError(t, e.Do(context.Background()))
	assert.Contains(t, out.String(), "exported 1 dates")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "SUMMARY:standup")
	assert.NotContains(t, string(b), "SUMMARY:holiday")
}

func TestExportBadRange(t *testing.T) {
	e := &Export{Service: seeded(t), From: date.New(2024, 2, 1), To: date.New(2024, 1, 1)}
	assert.Error(t, e.Do(context.Background()))

	e = &Export{Service: seeded(t), From: date.New(2024, 2, 31)}
	assert.ErrorIs(t, e.Do(context.Background()), date.ErrInvalid)
}
