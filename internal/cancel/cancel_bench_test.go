package cancel_test

import (
	"context"
	"testing"

	"github.com/randomizedcoder/go-interval/internal/cancel"
)

// Sink variables to prevent compiler from eliminating benchmark loops
var sinkBool bool

func BenchmarkCancel_Context_Done_Direct(b *testing.B) {
	c := cancel.NewContext(context.Background())
	b.ReportAllocs()
	b.ResetTimer()

	var result bool
	for i := 0; i < b.N; i++ {
		result = c.Done()
	}
	sinkBool = result
}

func BenchmarkCancel_Atomic_Done_Direct(b *testing.B) {
	c := cancel.NewAtomic()
	b.ReportAllocs()
	b.ResetTimer()

	var result bool
	for i := 0; i < b.N; i++ {
		result = c.Done()
	}
	sinkBool = result
}

// PollFunc benchmarks (the shape a wait loop actually calls)

func BenchmarkCancel_Atomic_PollFunc(b *testing.B) {
	poll := cancel.Poll(cancel.NewAtomic())
	b.ReportAllocs()
	b.ResetTimer()

	var result bool
	for i := 0; i < b.N; i++ {
		result = poll()
	}
	sinkBool = result
}

func BenchmarkCancel_Every1000_Context(b *testing.B) {
	poll := cancel.Every(1000, cancel.Context(context.Background()))
	b.ReportAllocs()
	b.ResetTimer()

	var result bool
	for i := 0; i < b.N; i++ {
		result = poll()
	}
	sinkBool = result
}

func BenchmarkCancel_Atomic_Done_Parallel(b *testing.B) {
	c := cancel.NewAtomic()
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		var result bool
		for pb.Next() {
			result = c.Done()
		}
		sinkBool = result
	})
}
