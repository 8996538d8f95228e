// Package config loads the YAML configuration shared by the command-line
// tools.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/randomizedcoder/go-interval/internal/debuglog"
	"github.com/randomizedcoder/go-interval/internal/tick"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Unit is the tick unit of the interval demo's clock.
type Unit string

const (
	Milliseconds Unit = "ms"
	Microseconds Unit = "us"
	Nanoseconds  Unit = "ns"
)

// Duration returns the length of one tick.
func (u Unit) Duration() time.Duration {
	switch u {
	case Milliseconds:
		return time.Millisecond
	case Microseconds:
		return time.Microsecond
	case Nanoseconds:
		return time.Nanosecond
	default:
		return 0
	}
}

// Wide reports whether the unit is counted in 64 bits. Millisecond and
// microsecond clocks are 32-bit and wrap.
func (u Unit) Wide() bool {
	return u == Nanoseconds
}

// MaxRing bounds log.ring. Ring capacities are rounded up to a power of two,
// so this keeps the rounded size in range as well.
const MaxRing = 1 << 20

// Config is the full file layout.
type Config struct {
	// Period is the default task period, in Unit ticks.
	Period uint64 `yaml:"period"`
	Unit   Unit   `yaml:"unit"`
	// Cycles is how many periods each task runs; 0 runs until interrupted.
	Cycles int `yaml:"cycles"`
	// Work is the simulated busy time per cycle, in Unit ticks.
	Work  uint64 `yaml:"work"`
	Tasks []Task `yaml:"tasks"`
	Log   Log    `yaml:"log"`
	I2C   I2C    `yaml:"i2c"`
}

// Task is one periodic task of the interval demo. Zero fields inherit from
// the top level.
type Task struct {
	Name   string `yaml:"name"`
	Period uint64 `yaml:"period"`
	Work   uint64 `yaml:"work"`
}

type Log struct {
	Level      debuglog.Level    `yaml:"level"`
	Colors     bool              `yaml:"colors"`
	Location   debuglog.Location `yaml:"location"`
	Structured bool              `yaml:"structured"`
	// Ring, when non-zero, buffers log lines in a ring of that many entries
	// drained from the tasks' yield hooks.
	Ring uint64 `yaml:"ring"`
}

type I2C struct {
	First uint16 `yaml:"first"`
	Last  uint16 `yaml:"last"`
	// Devices lists the addresses answered by the simulated bus.
	Devices []uint16 `yaml:"devices"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Period: tick.DefaultPeriod,
		Unit:   Milliseconds,
		Cycles: 10,
		Log: Log{
			Level:    debuglog.Info,
			Colors:   true,
			Location: debuglog.LocationFile,
		},
		I2C: I2C{
			First: 0x01,
			Last:  0x7E,
		},
	}
}

// Load decodes YAML from r over the defaults and validates the result.
// Unknown keys are rejected. An empty document yields the defaults.
func Load(r io.Reader) (Config, error) {
	c := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadFile reads and validates the file at path.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks ranges and units.
func (c Config) Validate() error {
	if c.Unit.Duration() == 0 {
		return invalid("unit %q, want ms, us or ns", c.Unit)
	}
	if c.Cycles < 0 {
		return invalid("cycles %d is negative", c.Cycles)
	}

	seen := make(map[string]bool, len(c.Tasks))
	for _, t := range c.TaskList() {
		if t.Period == 0 {
			return invalid("task %q: period must be positive", t.Name)
		}
		if !c.Unit.Wide() && t.Period > math.MaxUint32 {
			return invalid("task %q: period %d does not fit a 32-bit %s clock", t.Name, t.Period, c.Unit)
		}
		if seen[t.Name] {
			return invalid("task %q defined twice", t.Name)
		}
		seen[t.Name] = true
	}

	if c.Log.Level < debuglog.None || c.Log.Level > debuglog.Verbose {
		return invalid("log level %d", c.Log.Level)
	}

	if c.Log.Ring > MaxRing {
		return invalid("log ring %d exceeds %d lines", c.Log.Ring, MaxRing)
	}

	if c.I2C.First > c.I2C.Last {
		return invalid("i2c range 0x%x..0x%x is empty", c.I2C.First, c.I2C.Last)
	}
	if c.I2C.Last > 0x7F {
		return invalid("i2c address 0x%x is not 7-bit", c.I2C.Last)
	}
	for _, a := range c.I2C.Devices {
		if a > 0x7F {
			return invalid("i2c device 0x%x is not 7-bit", a)
		}
	}
	return nil
}

// TaskList returns the tasks with inherited fields filled in. With no tasks
// configured it returns a single task named "main".
func (c Config) TaskList() []Task {
	if len(c.Tasks) == 0 {
		return []Task{{Name: "main", Period: c.Period, Work: c.Work}}
	}
	out := make([]Task, len(c.Tasks))
	for i, t := range c.Tasks {
		if t.Name == "" {
			t.Name = fmt.Sprintf("task%d", i)
		}
		if t.Period == 0 {
			t.Period = c.Period
		}
		if t.Work == 0 {
			t.Work = c.Work
		}
		out[i] = t
	}
	return out
}

// LoggerOptions converts the log section for debuglog.New.
func (c Config) LoggerOptions() debuglog.Options {
	return debuglog.Options{
		Level:      c.Log.Level,
		NoColors:   !c.Log.Colors,
		Location:   c.Log.Location,
		Structured: c.Log.Structured,
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...)
}
