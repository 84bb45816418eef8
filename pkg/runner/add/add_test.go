package add

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/huh"
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

func newService(t *testing.T) *app.Service {
	t.Helper()
	p, err := store.Load(dirConfig(t.TempDir()))
	require.NoError(t, err)
	color.NoColor = true
	return &app.Service{Persistence: p}
}

func TestEntryKind(t *testing.T) {
	assert.Equal(t, agenda.FullDay("x"), (&Add{Text: " x "}).Entry())
	assert.Equal(t, agenda.FullDay("x"), (&Add{Text: "x", Start: "09:00", FullDay: true}).Entry())
	assert.Equal(t, agenda.Timed("09:00", "", "x"), (&Add{Text: "x", Start: "09:00"}).Entry())
	assert.Equal(t, agenda.Timed("09:00", "10:00", "x"), (&Add{Text: "x", Start: "09:00", End: "10:00"}).Entry())
}

func TestDoAppendsAndPrints(t *testing.T) {
	svc := newService(t)
	var out bytes.Buffer
	d := date.New(2024, 2, 29)

	a := &Add{Service: svc, Date: d, Text: "leap", Out: &out}
	require.NoError(t, a.Do(context.Background()))
	a = &Add{Service: svc, Date: d, Text: "meet", Start: "09:00", End: "10:00", Out: &out}
	require.NoError(t, a.Do(context.Background()))

	r, err := svc.Load(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, []agenda.FullDayEvent{{Event: "leap"}}, r.FullDay)
	assert.Equal(t, []agenda.TimedEvent{{Start: "09:00", End: "10:00", Event: "meet"}}, r.Timed)
	assert.Contains(t, out.String(), "Thursday, February 29th 2024")
}

func TestDoRejectsInvalid(t *testing.T) {
	svc := newService(t)
	var out bytes.Buffer

	err := (&Add{Service: svc, Date: date.New(2023, 2, 29), Text: "x", Out: &out}).Do(context.Background())
	assert.ErrorIs(t, err, date.ErrInvalid)

	err = (&Add{Service: svc, Date: date.New(2023, 2, 28), Out: &out}).Do(context.Background())
	assert.ErrorIs(t, err, agenda.ErrEmptyEntry)

	assert.Error(t, (&Add{}).Do(context.Background()))
}

func TestDoInteractive(t *testing.T) {
	svc := newService(t)
	var out bytes.Buffer
	d := date.New(2024, 3, 1)

	a := &Add{
		Service:     svc,
		Date:        d,
		Interactive: true,
		Out:         &out,
		Form: func(_ context.Context, a *Add) error {
			a.Text = "from form"
			a.Start, a.End = "13:00", "14:00"
			return nil
		},
	}
	require.NoError(t, a.Do(context.Background()))

	r, err := svc.Load(context.Background(), d)
	require.NoError(t, err)
	assert.Equal(t, "from form", r.Timed[0].Event)
}

func TestDoInteractiveAborted(t *testing.T) {
	svc := newService(t)
	a := &Add{
		Service:     svc,
		Date:        date.New(2024, 3, 1),
		Interactive: true,
		Form: func(context.Context, *Add) error {
			return huh.ErrUserAborted
		},
	}
	assert.ErrorIs(t, a.Do(context.Background()), ErrAborted)

	ok, err := svc.HasEntry(context.Background(), date.New(2024, 3, 1))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidateText(t *testing.T) {
	assert.Error(t, validateText("  "))
	assert.NoError(t, validateText("x"))
}
