//go:build !amd64

package tick

// HasTSC reports whether the TSC source is available on this architecture.
const HasTSC = false
