package ui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/date"
	"tableflip.dev/agenda/pkg/tui"
)

func TestUIRefusesWithoutTerminal(t *testing.T) {
	called := false
	u := &UI{
		Service:    &app.Service{},
		Options:    tui.DefaultOptions(date.New(2024, 1, 5)),
		IsTerminal: func() bool { return false },
		Run: func(context.Context, *app.Service, tui.Options) error {
			called = true
			return nil
		},
	}
	assert.ErrorIs(t, u.Do(context.Background()), ErrNoTerminal)
	assert.False(t, called)
}

func TestUIRuns(t *testing.T) {
	var got tui.Options
	u := &UI{
		Service:    &app.Service{},
		Options:    tui.DefaultOptions(date.New(2024, 1, 5)),
		IsTerminal: func() bool { return true },
		Run: func(_ context.Context, _ *app.Service, opts tui.Options) error {
			got = opts
			return nil
		},
	}
	require.NoError(t, u.Do(context.Background()))
	assert.Equal(t, date.New(2024, 1, 5), got.Reference)
}

func TestUIInvalidReference(t *testing.T) {
	u := &UI{Service: &app.Service{}, Options: tui.Options{Reference: date.New(2024, 13, 1)}}
	assert.ErrorIs(t, u.Do(context.Background()), date.ErrInvalid)
}
