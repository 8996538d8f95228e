package tick

// Batch reads the wrapped source only every N calls to Now().
//
// This reduces the overhead of clock reads by amortizing them across
// multiple loop iterations. Between reads, Now returns the cached value,
// so elapsed-time checks built on a Batch lag by up to N-1 calls.
//
// Example: With every=1000, the underlying clock is read once per
// 1000 calls and the value is reused for the other 999.
type Batch[T Unsigned] struct {
	src   Source[T]
	every int
	count int
	last  T
}

// NewBatch creates a Batch that reads src every N calls.
//
// The first call to Now always reads the source.
func NewBatch[T Unsigned](src Source[T], every int) *Batch[T] {
	if every < 1 {
		every = 1
	}
	return &Batch[T]{
		src:   src,
		every: every,
	}
}

// Now returns the cached tick, refreshing it every N calls.
func (b *Batch[T]) Now() T {
	if b.count%b.every == 0 {
		b.last = b.src.Now()
	}
	b.count++
	return b.last
}

// Reset forces the next call to Now to read the source.
func (b *Batch[T]) Reset() {
	b.count = 0
}

// Every returns the batch size.
func (b *Batch[T]) Every() int {
	return b.every
}
