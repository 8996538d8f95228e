package tick

// Manual is a tick source driven by the caller.
//
// Each call to Now returns the current value and then advances the counter by
// the configured step, so a busy-wait loop polling a Manual with a non-zero
// step makes progress without real time passing.
//
// Manual is not safe for concurrent use; it belongs to the goroutine that owns
// the code under test.
type Manual[T Unsigned] struct {
	now   T
	step  T
	reads int
}

// NewManual creates a Manual source reading start.
func NewManual[T Unsigned](start T) *Manual[T] {
	return &Manual[T]{now: start}
}

// Now returns the current tick and applies the auto step.
func (m *Manual[T]) Now() T {
	v := m.now
	m.now += m.step
	m.reads++
	return v
}

// Peek returns the current tick without stepping or counting a read.
func (m *Manual[T]) Peek() T {
	return m.now
}

// Set moves the counter to v.
func (m *Manual[T]) Set(v T) {
	m.now = v
}

// Advance moves the counter forward by d, wrapping in T.
func (m *Manual[T]) Advance(d T) {
	m.now += d
}

// SetStep sets the amount added after every Now.
func (m *Manual[T]) SetStep(d T) {
	m.step = d
}

// Reads returns how many times Now has been called.
func (m *Manual[T]) Reads() int {
	return m.reads
}
