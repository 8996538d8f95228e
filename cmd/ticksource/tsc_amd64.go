package main

import "github.com/randomizedcoder/go-interval/internal/tick"

func tscSources() []sourceInfo {
	return []sourceInfo{
		{"TSCMicros", func() tick.Source[uint32] { return tick.NewTSCMicrosCalibrated() }},
	}
}
