//go:build !amd64

package main

func tscSources() []sourceInfo {
	return nil
}
