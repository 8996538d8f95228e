//go:build amd64

package tick_test

import (
	"testing"

	"github.com/randomizedcoder/go-interval/internal/tick"
)

func BenchmarkSource_TSC_Direct(b *testing.B) {
	var src tick.TSC
	b.ReportAllocs()
	b.ResetTimer()

	var result uint64
	for i := 0; i < b.N; i++ {
		result = src.Now()
	}
	sinkU64 = result
}

func BenchmarkSource_TSCMicros_Direct(b *testing.B) {
	src := tick.NewTSCMicros(3.0)
	b.ReportAllocs()
	b.ResetTimer()

	var result uint32
	for i := 0; i < b.N; i++ {
		result = src.Now()
	}
	sinkU32 = result
}

func BenchmarkCalibrateTSC(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()

	var result float64
	for i := 0; i < b.N; i++ {
		result = tick.CalibrateTSC()
	}
	_ = result
}
