package calendar_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calendrical/chrono-toolbox-go/calendar"
	"github.com/calendrical/chrono-toolbox-go/field"
)

const florentineYAML = `
name: florentine
base: iso
start_of_year: {day: 25, month: 3}
leap:
  cycle: {every: 4, except: 100, unless: 400}
offsets:
  year: 1
fields:
  canonicalYear: {}
  monthOfYear: {min: 1, max: 12}
  dayOfMonth: {min: 1, max_between: [28, 31]}
shapes: [date, yearAndMonth, year]
`

func TestParseConfig(t *testing.T) {
	cfg, err := calendar.ParseConfig([]byte(florentineYAML))
	require.NoError(t, err)

	assert.Equal(t, "florentine", cfg.Name)
	assert.Equal(t, "iso", cfg.Base)
	assert.Equal(t, calendar.StartOfYear{Day: 25, Month: 3}, cfg.StartOfYear)
	assert.Equal(t, []calendar.Shape{calendar.ShapeDate, calendar.ShapeYearAndMonth, calendar.ShapeYear}, cfg.Shapes)

	require.NotNil(t, cfg.Leap)
	assert.True(t, cfg.Leap(2024))
	assert.False(t, cfg.Leap(1900))

	require.Contains(t, cfg.Fields, field.KindMonthOfYear)
	bounds, err := cfg.Fields[field.KindMonthOfYear].Bounds(nil)
	require.NoError(t, err)
	ok, err := bounds.Contains(12)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = bounds.Contains(13)
	require.NoError(t, err)
	assert.False(t, ok)

	// a vague maximum still guarantees the minimum envelope
	bounds, err = cfg.Fields[field.KindDayOfMonth].Bounds(nil)
	require.NoError(t, err)
	ok, err = bounds.Contains(28)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = bounds.Contains(30)
	require.NoError(t, err)
	assert.False(t, ok)

	require.Contains(t, cfg.Offsets, field.KindYear)
}

func TestParseConfigRegisters(t *testing.T) {
	reg := calendar.NewRegistry()
	_, err := reg.Register(calendar.ISO())
	require.NoError(t, err)

	cfg, err := calendar.ParseConfig([]byte(florentineYAML))
	require.NoError(t, err)
	cal, err := reg.Register(cfg)
	require.NoError(t, err)

	inst, err := cal.CreateInstance(map[string]int64{"year": 1400, "month": 1, "day": 1})
	require.NoError(t, err)
	assert.Equal(t, calendar.ShapeDate, inst.Shape())

	// the fixed year offset applies on the way to canonical terms
	got, err := inst.GetCanonical(field.KindYear)
	require.NoError(t, err)
	assert.Equal(t, int64(1399), got)
}

func TestParseConfigErrors(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		_, err := calendar.ParseConfig([]byte(`base: iso`))
		require.Error(t, err)
	})

	t.Run("unknown field name", func(t *testing.T) {
		_, err := calendar.ParseConfig([]byte("name: x\nfields:\n  hour: {min: 0, max: 23}\n"))
		var uerr *calendar.UnsupportedFieldError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, "hour", uerr.Field)
	})

	t.Run("unknown offset field", func(t *testing.T) {
		_, err := calendar.ParseConfig([]byte("name: x\noffsets:\n  hour: 1\n"))
		var uerr *calendar.UnsupportedFieldError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, "hour", uerr.Field)
	})

	t.Run("unknown shape", func(t *testing.T) {
		_, err := calendar.ParseConfig([]byte("name: x\nshapes: [decade]\n"))
		require.ErrorContains(t, err, "unknown shape")
	})

	t.Run("conflicting leap rules", func(t *testing.T) {
		_, err := calendar.ParseConfig([]byte("name: x\nleap:\n  cycle: {every: 4}\n  mean_year_length: \"365.25\"\n"))
		require.ErrorContains(t, err, "mutually exclusive")
	})

	t.Run("empty leap spec", func(t *testing.T) {
		_, err := calendar.ParseConfig([]byte("name: x\nleap: {}\n"))
		require.Error(t, err)
	})

	t.Run("invalid mean year length", func(t *testing.T) {
		_, err := calendar.ParseConfig([]byte("name: x\nleap:\n  mean_year_length: \"a lot\"\n"))
		require.ErrorContains(t, err, "mean_year_length")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := calendar.ParseConfig([]byte("name: [unclosed"))
		require.Error(t, err)
	})
}

func TestParseConfigDefaultShapes(t *testing.T) {
	cfg, err := calendar.ParseConfig([]byte(`name: minimal`))
	require.NoError(t, err)
	assert.Equal(t, calendar.DefaultShapes(), cfg.Shapes)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "florentine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(florentineYAML), 0o644))

	cfg, err := calendar.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "florentine", cfg.Name)

	_, err = calendar.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
