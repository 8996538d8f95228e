package debuglog

import (
	"errors"
	"fmt"
	"io"
	"sync/atomic"

	ring "github.com/randomizedcoder/go-lock-free-ring"

	"github.com/randomizedcoder/go-interval/internal/tick"
)

// Ring buffers finished log lines between producers and one draining
// consumer, so a paced loop never blocks on a slow console.
//
// Each producer writes through its own RingWriter; Drain must only be called
// from one goroutine at a time.
type Ring struct {
	r       *ring.ShardedRing
	dropped atomic.Uint64
}

// NewRing creates a Ring holding up to capacity lines spread across shards.
// Both are rounded up to powers of two, and capacity to at least one line
// per shard.
func NewRing(capacity, shards uint64) (*Ring, error) {
	if capacity == 0 {
		return nil, errors.New("debuglog: ring: capacity must be positive")
	}
	shards = nextPow2(max(shards, 1))
	capacity = max(nextPow2(capacity), shards)

	r, err := ring.NewShardedRing(capacity, shards)
	if err != nil {
		return nil, fmt.Errorf("debuglog: ring: %w", err)
	}
	return &Ring{r: r}, nil
}

// Writer returns a writer for one producer. Pass it to New to get a Logger
// that writes into the ring.
func (r *Ring) Writer(producerID uint64) *RingWriter {
	return &RingWriter{ring: r, id: producerID}
}

// Drain writes every buffered line to w and returns how many were written.
func (r *Ring) Drain(w io.Writer) (int, error) {
	n := 0
	for {
		v, ok := r.r.TryRead()
		if !ok {
			return n, nil
		}
		line, _ := v.([]byte)
		if _, err := w.Write(line); err != nil {
			return n, err
		}
		n++
	}
}

// Dropped returns how many lines were discarded because the ring was full.
func (r *Ring) Dropped() uint64 {
	return r.dropped.Load()
}

// Yield returns a hook that drains the ring into w, for use as the yield of a
// paced loop. Write errors are discarded.
func (r *Ring) Yield(w io.Writer) tick.Yield {
	return func() {
		_, _ = r.Drain(w)
	}
}

// RingWriter is one producer's handle on a Ring.
type RingWriter struct {
	ring *Ring
	id   uint64
}

// Write copies p into the ring. A full ring drops the line and counts it;
// Write never blocks and never fails.
func (w *RingWriter) Write(p []byte) (int, error) {
	line := make([]byte, len(p))
	copy(line, p)
	if !w.ring.r.Write(w.id, line) {
		w.ring.dropped.Add(1)
	}
	return len(p), nil
}

// Sync is a no-op; lines leave the ring through Drain.
func (w *RingWriter) Sync() error {
	return nil
}

// nextPow2 returns the smallest power of two >= n, for n >= 1.
func nextPow2(n uint64) uint64 {
	p := uint64(1)
	for p < n {
		p <<= 1
	}
	return p
}
