// Package debuglog is a leveled, formatted debug output sink for serial
// consoles.
//
// Each line starts with a colored level marker and the call site, followed by
// a tab and the message:
//
//	I: main.go:42	Scanning...
//	W: scan.go:77	I2C error 0x3c
//
// The sink is built on zap. It is passed explicitly to the code that reports
// through it; there is no package-level logger.
package debuglog

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures a Logger.
type Options struct {
	// Level is the most verbose level printed. The zero value is None; use
	// DefaultOptions for a logger that prints everything.
	Level Level
	// NoColors strips the ANSI escape codes.
	NoColors bool
	// Location selects the call-site prefix.
	Location Location
	// LineEnding terminates each line. Defaults to "\n".
	LineEnding string
	// Structured switches to zap's JSON production encoding, for hosts that
	// collect logs rather than display them.
	Structured bool
}

// DefaultOptions prints every level with colors and file locations.
func DefaultOptions() Options {
	return Options{
		Level:    Verbose,
		Location: LocationFile,
	}
}

// Logger writes debug lines to one output.
//
// Logger is safe for concurrent use when its output is: plain writers are
// serialized with a lock, Ring writers are lock-free per producer.
type Logger struct {
	out    zapcore.WriteSyncer
	level  zap.AtomicLevel
	colors palette
	eol    string
	zl     *zap.Logger

	structured bool
}

// New creates a Logger writing to w.
func New(w io.Writer, opts Options) *Logger {
	out := writeSyncer(w)

	colors := colorPalette
	if opts.NoColors || opts.Structured {
		colors = plainPalette
	}
	eol := opts.LineEnding
	if eol == "" {
		eol = "\n"
	}

	l := &Logger{
		out:    out,
		level:  zap.NewAtomicLevelAt(opts.Level.zapLevel()),
		colors: colors,
		eol:    eol,

		structured: opts.Structured,
	}

	var enc zapcore.Encoder
	if opts.Structured {
		cfg := zap.NewProductionEncoderConfig()
		cfg.LineEnding = eol
		cfg.EncodeLevel = encodeLevelName
		enc = zapcore.NewJSONEncoder(cfg)
	} else {
		enc = newLineEncoder(colors, opts.Location, eol)
	}

	zopts := []zap.Option{zap.AddCallerSkip(2)}
	if opts.Structured || opts.Location != LocationNone {
		zopts = append(zopts, zap.AddCaller())
	}
	l.zl = zap.New(zapcore.NewCore(enc, out, l.level), zopts...)
	return l
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return New(io.Discard, Options{Level: None})
}

func writeSyncer(w io.Writer) zapcore.WriteSyncer {
	if rw, ok := w.(*RingWriter); ok {
		return rw
	}
	return zapcore.Lock(zapcore.AddSync(w))
}

// encodeLevelName writes this package's level names in structured output.
func encodeLevelName(z zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(fromZapLevel(z).String())
}

// SetLevel changes the most verbose level printed.
func (l *Logger) SetLevel(level Level) {
	l.level.SetLevel(level.zapLevel())
}

// Level returns the most verbose level printed.
func (l *Logger) Level() Level {
	return fromZapLevel(l.level.Level())
}

// ShouldPrint reports whether a message at level would be printed.
func (l *Logger) ShouldPrint(level Level) bool {
	return level != None && l.level.Enabled(level.zapLevel())
}

// Zap returns the underlying zap logger for structured call sites.
func (l *Logger) Zap() *zap.Logger {
	return l.zl.WithOptions(zap.AddCallerSkip(-2))
}

// With returns a child Logger that adds fields to every line.
func (l *Logger) With(fields ...zap.Field) *Logger {
	child := *l
	child.zl = l.zl.With(fields...)
	return &child
}

// Sync flushes buffered output.
func (l *Logger) Sync() error {
	return l.zl.Sync()
}

// log is the single funnel into zap; callers are exactly one frame above it
// so the caller skip lands on user code.
func (l *Logger) log(level Level, msg string, fields ...zap.Field) bool {
	if level == None {
		return false
	}
	ce := l.zl.Check(level.zapLevel(), msg)
	if ce == nil {
		return false
	}
	ce.Write(fields...)
	return true
}

// Printf prints a formatted message at level and reports whether it was
// printed.
func (l *Logger) Printf(level Level, format string, args ...any) bool {
	if !l.ShouldPrint(level) {
		return false
	}
	return l.log(level, fmt.Sprintf(format, args...))
}

// Errorf prints at Error level.
func (l *Logger) Errorf(format string, args ...any) bool {
	if !l.ShouldPrint(Error) {
		return false
	}
	return l.log(Error, fmt.Sprintf(format, args...))
}

// Warnf prints at Warning level.
func (l *Logger) Warnf(format string, args ...any) bool {
	if !l.ShouldPrint(Warning) {
		return false
	}
	return l.log(Warning, fmt.Sprintf(format, args...))
}

// Infof prints at Info level.
func (l *Logger) Infof(format string, args ...any) bool {
	if !l.ShouldPrint(Info) {
		return false
	}
	return l.log(Info, fmt.Sprintf(format, args...))
}

// Debugf prints at Debug level.
func (l *Logger) Debugf(format string, args ...any) bool {
	if !l.ShouldPrint(Debug) {
		return false
	}
	return l.log(Debug, fmt.Sprintf(format, args...))
}

// Verbosef prints at Verbose level.
func (l *Logger) Verbosef(format string, args ...any) bool {
	if !l.ShouldPrint(Verbose) {
		return false
	}
	return l.log(Verbose, fmt.Sprintf(format, args...))
}

// Tracepoint prints "---" at Debug level, marking that a line was reached.
func (l *Logger) Tracepoint() bool {
	return l.log(Debug, "---")
}

// Verify prints an error if ok is false, and returns ok.
func (l *Logger) Verify(ok bool) bool {
	if !ok {
		l.log(Error, "ERROR, verify failed")
	}
	return ok
}

// Assert prints an error if ok is false, and returns ok.
func (l *Logger) Assert(ok bool) bool {
	if !ok {
		l.log(Error, "ERROR, assertion failed")
	}
	return ok
}

// Stats prints a named statistics line at Info level. In structured mode the
// snapshot is attached as an object field.
func (l *Logger) Stats(name string, s Snapshot) bool {
	if !l.ShouldPrint(Info) {
		return false
	}
	if l.structured {
		return l.log(Info, name+" statistics", zap.Object("stats", s))
	}
	return l.log(Info, name+" statistics: "+s.String())
}

// Snapshot is a statistics value that can print itself and be marshaled as
// structured log data.
type Snapshot interface {
	fmt.Stringer
	zapcore.ObjectMarshaler
}
