package cal

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/date"
	"tableflip.dev/agenda/pkg/store"
)

type dirConfig string

func (d dirConfig) BasePath() string { return string(d) }

func TestCal(t *testing.T) {
	p, err := store.Load(dirConfig(t.TempDir()))
	require.NoError(t, err)
	color.NoColor = true

	var out bytes.Buffer
	c := &Cal{Service: &app.Service{Persistence: p}, Date: date.New(2024, 12, 24), Months: 2, Out: &out}
	require.NoError(t, c.Do(context.Background()))

	s := out.String()
	assert.Contains(t, s, "December 2024")
	assert.Contains(t, s, "January 2025")
	assert.NotContains(t, s, "February 2025")
	assert.Contains(t, s, "Mo Tu We Th Fr Sa Su")
}

func TestCalInvalid(t *testing.T) {
	c := &Cal{Service: &app.Service{}, Date: date.New(2024, 0, 1)}
	assert.ErrorIs(t, c.Do(context.Background()), date.ErrInvalid)
	assert.Error(t, (&Cal{}).Do(context.Background()))
}
