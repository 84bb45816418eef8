package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"tableflip.dev/agenda/pkg/config"
)

func TestColor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#3e8fb0"), color("#3E8FB0"))
	assert.Equal(t, lipgloss.NoColor{}, color("pine"))
}

func TestBlend(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#ffffff"), blend("nope", "#ffffff"))
	assert.Equal(t, lipgloss.Color("#000000"), blend("#000000", ""))
	assert.Equal(t, lipgloss.NoColor{}, blend("", ""))
	assert.Equal(t, lipgloss.Color("#ffffff"), blend("#ffffff", "#ffffff"))
}

func TestNewUsesConfiguredColours(t *testing.T) {
	c := config.Default().Colors
	c.CalendarDaySelectedBg = "#010203"
	th := New(c)
	assert.Equal(t, lipgloss.Color("#010203"), th.Calendar.DaySelected.GetBackground())
	assert.Equal(t, lipgloss.Color("#975c0a"), th.Calendar.DaySelected.GetForeground())
	assert.True(t, th.Calendar.DaySelected.GetItalic())
	assert.False(t, th.Calendar.DayEntry.GetItalic())
}
