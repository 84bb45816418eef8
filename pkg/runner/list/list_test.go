package list

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"tableflip.dev/agenda/pkg/agenda"
	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/date"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
)

type dirConfig string

func (d dirConfig) BasePath() string { return string(d) }

func seeded(t *testing.T) *app.Service {
	t.Helper()
	p, err := store.Load(dirConfig(t.TempDir()))
	require.NoError(t, err)
	color.NoColor = true
	svc := &app.Service{Persistence: p}
	ctx := context.Background()
	require.NoError(t, svc.Add(ctx, date.New(2024, 1, 5), agenda.FullDay("a")))
	require.NoError(t, svc.Add(ctx, date.New(2024, 2, 1), agenda.Timed("09:00", "10:00", "b")))
	require.NoError(t, svc.Add(ctx, date.New(2024, 3, 1), agenda.FullDay("c")))
	return svc
}

func TestListTable(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, (&List{Service: seeded(t), Out: &out}).Do(context.Background()))
	s := out.String()
	assert.Contains(t, s, "2024-01-05")
	assert.Contains(t, s, "2024-02-01")
	assert.Contains(t, s, "09:00 - 10:00  b")
	assert.Contains(t, s, "2024-03-01")
}

func TestListBoundsYAML(t *testing.T) {
	var out bytes.Buffer
	l := &List{
		Service: seeded(t),
		From:    date.New(2024, 1, 6),
		To:      date.New(2024, 2, 28),
		Output:  printers.FormatYAML,
		Out:     &out,
	}
	require.NoError(t, l.Do(context.Background()))

	var days []app.Day
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &days))
	require.Len(t, days, 1)
	assert.Equal(t, date.New(2024, 2, 1), days[0].Date)
}

func TestListEmpty(t *testing.T) {
	p, err := store.Load(dirConfig(t.TempDir()))
	require.NoError(t, err)
	color.NoColor = true

	var out bytes.Buffer
	require.NoError(t, (&List{Service: &app.Service{Persistence: p}, Out: &out}).Do(context.Background()))
	assert.Contains(t, out.String(), "No agenda files.")
}
