package remove

import (
	"bytes"
	"context"
	"testing"

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

func TestRemove(t *testing.T) {
	p, err := store.Load(dirConfig(t.TempDir()))
	require.NoError(t, err)
	color.NoColor = true
	svc := &app.Service{Persistence: p}
	ctx := context.Background()
	d := date.New(2024, 1, 5)
	require.NoError(t, svc.Add(ctx, d, agenda.FullDay("x")))

	var out bytes.Buffer
	require.NoError(t, (&Remove{Service: svc, Date: d, Out: &out}).Do(ctx))
	assert.Contains(t, out.String(), "removed Friday, January 5th 2024")

	ok, err := svc.HasEntry(ctx, d)
	require.NoError(t, err)
	assert.False(t, ok)

	err = (&Remove{Service: svc, Date: d, Out: &out}).Do(ctx)
	assert.ErrorIs(t, err, store.ErrNoRecord)
}
