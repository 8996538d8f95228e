package debuglog

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Level is a reporting level. Higher levels are more verbose; a logger set to
// level L prints messages at L and below. None prints nothing.
type Level int8

const (
	None Level = iota
	Error
	Warning
	Info
	Debug
	Verbose
)

// VerboseLevel is the zap level used for Verbose, one step below Debug.
const VerboseLevel = zapcore.DebugLevel - 1

// disabledLevel is above every level this package logs at.
const disabledLevel = zapcore.FatalLevel + 1

func (l Level) String() string {
	switch l {
	case None:
		return "none"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	case Debug:
		return "debug"
	case Verbose:
		return "verbose"
	default:
		return fmt.Sprintf("Level(%d)", int8(l))
	}
}

// ParseLevel parses a level name as written in configuration files.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "off":
		return None, nil
	case "error":
		return Error, nil
	case "warning", "warn":
		return Warning, nil
	case "info":
		return Info, nil
	case "debug":
		return Debug, nil
	case "verbose", "trace":
		return Verbose, nil
	default:
		return None, fmt.Errorf("debuglog: unknown level %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	v, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// zapLevel maps a Level onto zap's level scale.
func (l Level) zapLevel() zapcore.Level {
	switch l {
	case Error:
		return zapcore.ErrorLevel
	case Warning:
		return zapcore.WarnLevel
	case Info:
		return zapcore.InfoLevel
	case Debug:
		return zapcore.DebugLevel
	case Verbose:
		return VerboseLevel
	default:
		return disabledLevel
	}
}

// fromZapLevel maps a zap level back onto a Level for encoding.
func fromZapLevel(z zapcore.Level) Level {
	switch {
	case z <= VerboseLevel:
		return Verbose
	case z == zapcore.DebugLevel:
		return Debug
	case z == zapcore.InfoLevel:
		return Info
	case z == zapcore.WarnLevel:
		return Warning
	case z < disabledLevel:
		return Error
	default:
		return None
	}
}

// Location selects how much of the call site is printed before each line.
type Location uint8

const (
	// LocationFile prints the source file name and line.
	LocationFile Location = iota
	// LocationNone prints nothing.
	LocationNone
	// LocationFunction prints the function name and line.
	LocationFunction
)

// ParseLocation parses "none", "file" or "function".
func ParseLocation(s string) (Location, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return LocationNone, nil
	case "file", "":
		return LocationFile, nil
	case "function", "func":
		return LocationFunction, nil
	default:
		return LocationNone, fmt.Errorf("debuglog: unknown location %q", s)
	}
}

func (l Location) String() string {
	switch l {
	case LocationFile:
		return "file"
	case LocationNone:
		return "none"
	case LocationFunction:
		return "function"
	default:
		return fmt.Sprintf("Location(%d)", uint8(l))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Location) UnmarshalText(text []byte) error {
	v, err := ParseLocation(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
