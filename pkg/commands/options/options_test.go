package options

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/agenda/pkg/date"
)

var today = date.New(2024, 1, 5)

func parse(t *testing.T, args ...string) *DateOptions {
	t.Helper()
	o := &DateOptions{}
	cmd := &cobra.Command{Use: "x"}
	AddDateArgs(cmd, o, today)
	require.NoError(t, cmd.Flags().Parse(args))
	return o
}

func TestDateOptions(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    date.Date
		wantErr bool
	}{
		{name: "today", want: today},
		{name: "day only", args: []string{"-d", "20"}, want: date.New(2024, 1, 20)},
		{name: "all fields", args: []string{"-d", "29", "-m", "2", "-y", "2024"}, want: date.New(2024, 2, 29)},
		{name: "on wins", args: []string{"-d", "3", "--on", "2023-12-31"}, want: date.New(2023, 12, 31)},
		{name: "invalid day", args: []string{"-d", "29", "-m", "2", "-y", "2023"}, wantErr: true},
		{name: "invalid on", args: []string{"--on", "2023-13-01"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parse(t, tt.args...).Date()
			if tt.wantErr {
				assert.ErrorIs(t, err, date.ErrInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRangeOptions(t *testing.T) {
	from, to, err := (&RangeOptions{}).Range(today)
	require.NoError(t, err)
	assert.Zero(t, from)
	assert.Zero(t, to)

	from, to, err = (&RangeOptions{From: "2024-01-01", To: "2024-1-31"}).Range(today)
	require.NoError(t, err)
	assert.Equal(t, date.New(2024, 1, 1), from)
	assert.Equal(t, date.New(2024, 1, 31), to)

	_, _, err = (&RangeOptions{To: "nope"}).Range(today)
	assert.Error(t, err)
}

func TestRangeOptionsWithin(t *testing.T) {
	from, to, err := (&RangeOptions{Within: "1w"}).Range(today)
	require.NoError(t, err)
	assert.Equal(t, today, from)
	assert.Equal(t, date.New(2024, 1, 11), to)

	from, to, err = (&RangeOptions{From: "2024-02-28", Within: "3d"}).Range(today)
	require.NoError(t, err)
	assert.Equal(t, date.New(2024, 2, 28), from)
	assert.Equal(t, date.New(2024, 3, 1), to)

	_, _, err = (&RangeOptions{To: "2024-02-01", Within: "3d"}).Range(today)
	assert.Error(t, err)
	_, _, err = (&RangeOptions{Within: "3h"}).Range(today)
	assert.Error(t, err)
}

func TestOutputOptions(t *testing.T) {
	assert.NoError(t, (&OutputOptions{Output: "yaml"}).Validate())
	assert.Error(t, (&OutputOptions{Output: "xml"}).Validate())

	var buf bytes.Buffer
	o := &OutputOptions{Output: "json", Out: &buf}
	assert.NoError(t, o.HandleError(errors.New("boom")))
	assert.JSONEq(t, `{"error":"boom"}`, buf.String())

	o = &OutputOptions{Output: "text"}
	assert.EqualError(t, o.HandleError(errors.New("boom")), "boom")
	assert.NoError(t, o.HandleError(nil))
}
