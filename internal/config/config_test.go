package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randomizedcoder/go-interval/internal/config"
	"github.com/randomizedcoder/go-interval/internal/debuglog"
)

func TestDefault(t *testing.T) {
	c := config.Default()
	require.NoError(t, c.Validate())

	assert.Equal(t, uint64(100), c.Period)
	assert.Equal(t, config.Milliseconds, c.Unit)
	assert.Equal(t, debuglog.Info, c.Log.Level)
	assert.True(t, c.Log.Colors)
	assert.Equal(t, uint16(0x01), c.I2C.First)
	assert.Equal(t, uint16(0x7E), c.I2C.Last)
}

func TestLoad_Empty(t *testing.T) {
	c, err := config.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestLoad_Overrides(t *testing.T) {
	const doc = `
period: 500
unit: us
cycles: 0
work: 20
tasks:
  - name: blink
  - name: sample
    period: 250
log:
  level: verbose
  colors: false
  location: function
  ring: 256
i2c:
  first: 0x08
  last: 0x77
  devices: [0x3c, 0x68]
`
	c, err := config.Load(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, uint64(500), c.Period)
	assert.Equal(t, config.Microseconds, c.Unit)
	assert.Zero(t, c.Cycles)
	assert.Equal(t, debuglog.Verbose, c.Log.Level)
	assert.False(t, c.Log.Colors)
	assert.Equal(t, debuglog.LocationFunction, c.Log.Location)
	assert.Equal(t, uint64(256), c.Log.Ring)
	assert.Equal(t, []uint16{0x3c, 0x68}, c.I2C.Devices)

	assert.Equal(t, []config.Task{
		{Name: "blink", Period: 500, Work: 20},
		{Name: "sample", Period: 250, Work: 20},
	}, c.TaskList())

	opts := c.LoggerOptions()
	assert.True(t, opts.NoColors)
	assert.Equal(t, debuglog.Verbose, opts.Level)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{"zero period", "period: 0"},
		{"unknown unit", "unit: s"},
		{"negative cycles", "cycles: -1"},
		{"period too wide for ms", "period: 4294967296"},
		{"duplicate task", "tasks: [{name: a}, {name: a}]"},
		{"empty i2c range", "i2c: {first: 0x20, last: 0x10}"},
		{"i2c beyond 7 bits", "i2c: {last: 0x80}"},
		{"device beyond 7 bits", "i2c: {devices: [0x90]}"},
		{"ring too large", "log: {ring: 2000000}"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(strings.NewReader(tc.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoad_DecodeErrors(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown key":    "speed: 1",
		"bad level":      "log: {level: loud}",
		"bad location":   "log: {location: line}",
		"malformed yaml": "period: [",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(strings.NewReader(doc))
			require.Error(t, err)
			assert.NotErrorIs(t, err, config.ErrInvalid)
		})
	}
}

func TestLoad_NanosecondPeriod(t *testing.T) {
	c, err := config.Load(strings.NewReader("unit: ns\nperiod: 10000000000"))
	require.NoError(t, err)
	assert.True(t, c.Unit.Wide())
	assert.Equal(t, uint64(10_000_000_000), c.Period)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "interval.yaml")
	require.NoError(t, os.WriteFile(path, []byte("period: 42\n"), 0o600))

	c, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), c.Period)

	_, err = config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestTaskList_Default(t *testing.T) {
	c := config.Default()
	c.Work = 3
	assert.Equal(t, []config.Task{{Name: "main", Period: 100, Work: 3}}, c.TaskList())

	c.Tasks = []config.Task{{Period: 7}}
	assert.Equal(t, "task0", c.TaskList()[0].Name)
}

func TestUnit(t *testing.T) {
	assert.Equal(t, "1ms", config.Milliseconds.Duration().String())
	assert.Equal(t, "1µs", config.Microseconds.Duration().String())
	assert.False(t, config.Microseconds.Wide())
	assert.Zero(t, config.Unit("s").Duration())
}
