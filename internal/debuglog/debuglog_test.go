package debuglog_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/randomizedcoder/go-interval/internal/debuglog"
	"github.com/randomizedcoder/go-interval/internal/interval"
)

func newPlain(level debuglog.Level, loc debuglog.Location) (*debuglog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := debuglog.New(&buf, debuglog.Options{
		Level:    level,
		NoColors: true,
		Location: loc,
	})
	return l, &buf
}

func lines(buf *bytes.Buffer) []string {
	s := strings.TrimSuffix(buf.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestLevels(t *testing.T) {
	testCases := []struct {
		level debuglog.Level
		want  []string
	}{
		{debuglog.None, nil},
		{debuglog.Error, []string{"E: \terror 1"}},
		{debuglog.Warning, []string{"E: \terror 1", "W: \twarning 2"}},
		{debuglog.Info, []string{"E: \terror 1", "W: \twarning 2", "I: \tinfo 3"}},
		{debuglog.Debug, []string{"E: \terror 1", "W: \twarning 2", "I: \tinfo 3", "D: \tdebug 4"}},
		{debuglog.Verbose, []string{"E: \terror 1", "W: \twarning 2", "I: \tinfo 3", "D: \tdebug 4", "V: \tverbose 5"}},
	}

	for _, tc := range testCases {
		t.Run(tc.level.String(), func(t *testing.T) {
			l, buf := newPlain(tc.level, debuglog.LocationNone)

			l.Errorf("error %d", 1)
			l.Warnf("warning %d", 2)
			l.Infof("info %d", 3)
			l.Debugf("debug %d", 4)
			l.Verbosef("verbose %d", 5)

			assert.Equal(t, tc.want, lines(buf))
		})
	}
}

func TestPrintf_ReportsPrinted(t *testing.T) {
	l, _ := newPlain(debuglog.Info, debuglog.LocationNone)

	assert.True(t, l.Printf(debuglog.Info, "shown"))
	assert.False(t, l.Printf(debuglog.Debug, "hidden"))
	assert.False(t, l.Printf(debuglog.None, "never"))
}

func TestSetLevel(t *testing.T) {
	l, buf := newPlain(debuglog.Error, debuglog.LocationNone)
	require.False(t, l.ShouldPrint(debuglog.Info))

	l.SetLevel(debuglog.Verbose)
	assert.Equal(t, debuglog.Verbose, l.Level())
	assert.True(t, l.ShouldPrint(debuglog.Verbose))

	l.SetLevel(debuglog.None)
	assert.Equal(t, debuglog.None, l.Level())
	l.Errorf("dropped")
	assert.Empty(t, buf.String())
}

func TestLocationFile(t *testing.T) {
	l, buf := newPlain(debuglog.Info, debuglog.LocationFile)
	l.Infof("here")

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "I: debuglog_test.go:"), "got %q", out)
	assert.True(t, strings.HasSuffix(out, "\there\n"), "got %q", out)
}

func TestLocationFunction(t *testing.T) {
	l, buf := newPlain(debuglog.Info, debuglog.LocationFunction)
	l.Infof("here")

	assert.True(t, strings.HasPrefix(buf.String(), "I: TestLocationFunction:"), "got %q", buf.String())
}

func TestColors(t *testing.T) {
	var buf bytes.Buffer
	l := debuglog.New(&buf, debuglog.Options{Level: debuglog.Verbose, Location: debuglog.LocationNone})

	l.Warnf("careful")
	assert.Equal(t, "\033[33mW: \033[39;49m\t\033[33mcareful\033[39;49m\n", buf.String())
}

func TestLineEnding(t *testing.T) {
	var buf bytes.Buffer
	l := debuglog.New(&buf, debuglog.Options{
		Level:      debuglog.Info,
		NoColors:   true,
		Location:   debuglog.LocationNone,
		LineEnding: "\r\n",
	})

	l.Infof("serial")
	assert.Equal(t, "I: \tserial\r\n", buf.String())
}

func TestFields(t *testing.T) {
	l, buf := newPlain(debuglog.Info, debuglog.LocationNone)

	l.With(zap.String("task", "blink")).Infof("tick")
	assert.Equal(t, "I: \ttick {\"task\":\"blink\"}\n", buf.String())
}

func TestTracepoint(t *testing.T) {
	l, buf := newPlain(debuglog.Debug, debuglog.LocationNone)

	assert.True(t, l.Tracepoint())
	assert.Equal(t, "D: \t---\n", buf.String())
}

func TestVerifyAssert(t *testing.T) {
	l, buf := newPlain(debuglog.Error, debuglog.LocationNone)

	assert.True(t, l.Verify(true))
	assert.True(t, l.Assert(true))
	assert.Empty(t, buf.String())

	assert.False(t, l.Verify(false))
	assert.False(t, l.Assert(false))
	assert.Equal(t, []string{"E: \tERROR, verify failed", "E: \tERROR, assertion failed"}, lines(buf))
}

func TestAssertBetween(t *testing.T) {
	l, buf := newPlain(debuglog.Error, debuglog.LocationNone)

	assert.True(t, debuglog.AssertBetween(l, 5, 1, 10))
	assert.True(t, debuglog.AssertBetween(l, 1.0, 1.0, 1.0))
	assert.True(t, debuglog.AssertIndex(l, 0, 1))
	assert.Empty(t, buf.String())

	assert.False(t, debuglog.AssertBetween(l, uint8(11), 1, 10))
	assert.False(t, debuglog.AssertIndex(l, 3, 3))
	assert.Len(t, lines(buf), 2)
}

func TestStats(t *testing.T) {
	s := interval.Snapshot[uint32]{Period: 500, Min: 498, Max: 503, Avg: 500, Count: 10}

	l, buf := newPlain(debuglog.Info, debuglog.LocationNone)
	require.True(t, l.Stats("blink", s))
	assert.Equal(t, "I: \tblink statistics: Period: 500  Min: 498  Max: 503  Average: 500\n", buf.String())

	quiet, qbuf := newPlain(debuglog.Error, debuglog.LocationNone)
	assert.False(t, quiet.Stats("blink", s))
	assert.Empty(t, qbuf.String())
}

func TestStructured(t *testing.T) {
	var buf bytes.Buffer
	l := debuglog.New(&buf, debuglog.Options{Level: debuglog.Verbose, Structured: true})

	l.Stats("blink", interval.Snapshot[uint32]{Period: 500, Min: 1, Max: 2, Avg: 1, Count: 3})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "blink statistics", entry["msg"])
	assert.Contains(t, entry["caller"], "debuglog_test.go")

	stats, ok := entry["stats"].(map[string]any)
	require.True(t, ok, "expected a stats object, got %v", entry["stats"])
	assert.EqualValues(t, 500, stats["period"])
	assert.EqualValues(t, 3, stats["count"])
}

func TestStructured_VerboseLevelName(t *testing.T) {
	var buf bytes.Buffer
	l := debuglog.New(&buf, debuglog.Options{Level: debuglog.Verbose, Structured: true})

	l.Verbosef("deep")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "verbose", entry["level"])
}

func TestZap(t *testing.T) {
	l, buf := newPlain(debuglog.Info, debuglog.LocationFile)

	l.Zap().Info("direct", zap.Int("n", 1))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "I: debuglog_test.go:"), "got %q", out)
	assert.Contains(t, out, "\tdirect {\"n\":1}")
}

func TestNop(t *testing.T) {
	l := debuglog.Nop()
	assert.False(t, l.Errorf("nothing"))
	assert.NoError(t, l.Sync())
}

func TestTabs(t *testing.T) {
	l, buf := newPlain(debuglog.Info, debuglog.LocationNone)

	l.SetTab(8)
	assert.Equal(t, "\033[3g\r\033[8C\033H\r", buf.String())

	buf.Reset()
	l.SetTabs(0, 20)
	assert.Equal(t, "\033[3g\r\033H\r\033[20C\033H\r", buf.String())

	buf.Reset()
	l.ClearTabs()
	assert.Equal(t, "\033[3g", buf.String())
}

func TestPrintBuild(t *testing.T) {
	l, buf := newPlain(debuglog.Info, debuglog.LocationNone)

	require.True(t, l.PrintBuild())
	assert.True(t, strings.HasPrefix(buf.String(), "I: \tBuild: "+debuglog.BuildString()+"  Git version: "), "got %q", buf.String())
	assert.NotEmpty(t, debuglog.GitVersion())
}
