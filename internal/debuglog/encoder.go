package debuglog

import (
	"bytes"
	"path/filepath"
	"strconv"

	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

var bufferPool = buffer.NewPool()

// lineEncoder renders one entry as
//
//	<marker> <location>:<line>\t<message> {fields}
//
// with ANSI colors taken from its palette. Fields, including those added
// through With, are rendered by an embedded JSON encoder.
type lineEncoder struct {
	zapcore.Encoder

	colors   palette
	location Location
	eol      string
}

func newLineEncoder(colors palette, location Location, eol string) *lineEncoder {
	return &lineEncoder{
		Encoder:  zapcore.NewJSONEncoder(zapcore.EncoderConfig{}),
		colors:   colors,
		location: location,
		eol:      eol,
	}
}

func (e *lineEncoder) Clone() zapcore.Encoder {
	return &lineEncoder{
		Encoder:  e.Encoder.Clone(),
		colors:   e.colors,
		location: e.location,
		eol:      e.eol,
	}
}

func (e *lineEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	level := fromZapLevel(ent.Level)

	buf := bufferPool.Get()
	buf.AppendString(e.colors.marker(level))
	buf.AppendByte(' ')
	e.appendLocation(buf, ent.Caller)
	buf.AppendString(e.colors.normal)
	buf.AppendByte('\t')
	buf.AppendString(e.colors.text(level))
	buf.AppendString(ent.Message)

	if err := e.appendFields(buf, fields); err != nil {
		buf.Free()
		return nil, err
	}

	buf.AppendString(e.colors.normal)
	buf.AppendString(e.eol)
	return buf, nil
}

func (e *lineEncoder) appendLocation(buf *buffer.Buffer, caller zapcore.EntryCaller) {
	if !caller.Defined {
		return
	}
	switch e.location {
	case LocationFile:
		buf.AppendString(filepath.Base(caller.File))
	case LocationFunction:
		fn := caller.Function
		if i := lastDot(fn); i >= 0 {
			fn = fn[i+1:]
		}
		buf.AppendString(fn)
	default:
		return
	}
	buf.AppendByte(':')
	buf.AppendString(strconv.Itoa(caller.Line))
}

// appendFields renders context and call-site fields as " {...}".
func (e *lineEncoder) appendFields(buf *buffer.Buffer, fields []zapcore.Field) error {
	enc := e.Encoder.Clone()
	for _, f := range fields {
		f.AddTo(enc)
	}
	out, err := enc.EncodeEntry(zapcore.Entry{}, nil)
	if err != nil {
		return err
	}
	defer out.Free()

	obj := bytes.TrimRight(out.Bytes(), "\r\n")
	if len(obj) <= 2 {
		// "{}"
		return nil
	}
	buf.AppendByte(' ')
	_, _ = buf.Write(obj)
	return nil
}

// lastDot returns the index of the last '.' after the final '/' in a
// qualified function name, or -1.
func lastDot(fn string) int {
	slash := -1
	for i := len(fn) - 1; i >= 0; i-- {
		if fn[i] == '/' {
			slash = i
			break
		}
	}
	for i := len(fn) - 1; i > slash; i-- {
		if fn[i] == '.' {
			return i
		}
	}
	return -1
}
