package debuglog

// ANSI escape codes for terminal output. See
// https://en.wikipedia.org/wiki/ANSI_escape_code
const (
	ansiEsc       = "\033"
	ansiGreenFG   = ansiEsc + "[32m"
	ansiBlueFG    = ansiEsc + "[34m"
	ansiYellowFG  = ansiEsc + "[33m"
	ansiRedBG     = ansiEsc + "[41m"
	ansiNormal    = ansiEsc + "[39;49m"
	ansiClearTabs = ansiEsc + "[3g"
	ansiSetTab    = ansiEsc + "H"
)

// palette holds the escape codes in use; all empty when colors are off.
type palette struct {
	green, blue, yellow, redBG, normal string
}

var (
	colorPalette = palette{
		green:  ansiGreenFG,
		blue:   ansiBlueFG,
		yellow: ansiYellowFG,
		redBG:  ansiRedBG,
		normal: ansiNormal,
	}
	plainPalette palette
)

// marker is the colored prefix of a line, e.g. "I:" in green.
func (p palette) marker(l Level) string {
	switch l {
	case Info:
		return p.green + "I:"
	case Verbose:
		return p.normal + "V:"
	case Debug:
		return p.blue + "D:"
	case Warning:
		return p.yellow + "W:"
	case Error:
		return p.redBG + "E:"
	default:
		return ""
	}
}

// text is the color applied to the message body.
func (p palette) text(l Level) string {
	switch l {
	case Error:
		return p.redBG
	case Warning:
		return p.yellow
	default:
		return p.normal
	}
}
