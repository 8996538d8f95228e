package debuglog

import "runtime/debug"

// Version, Commit and Date are set at build time via -ldflags, e.g.
//
//	-ldflags "-X github.com/randomizedcoder/go-interval/internal/debuglog.Commit=$(git describe --always --dirty)"
var (
	Version = "dev"
	Commit  = ""
	Date    = ""
)

// GitVersion returns the VCS revision the binary was built from, or
// "undefined" if it is not known.
func GitVersion() string {
	if Commit != "" {
		return Commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		var rev string
		dirty := false
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				dirty = s.Value == "true"
			}
		}
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			if dirty {
				rev += "-dirty"
			}
			return rev
		}
	}
	return "undefined"
}

// BuildString returns the build identifier: Date if set, else Version.
func BuildString() string {
	if Date != "" {
		return Date
	}
	return Version
}

// PrintBuild prints the build identifier and VCS revision at Info level.
func (l *Logger) PrintBuild() bool {
	if !l.ShouldPrint(Info) {
		return false
	}
	c := l.colors
	return l.log(Info, "Build: "+c.green+BuildString()+c.normal+"  Git version: "+c.green+GitVersion()+c.normal)
}
