package debuglog

import (
	"strconv"
	"strings"
)

// SetTab clears all tab stops and sets one at column (zero based).
// Tab stops are terminal state, so they are written even when colors are off.
func (l *Logger) SetTab(column uint) {
	l.SetTabs(column)
}

// SetTabs clears all tab stops and sets one at each column.
func (l *Logger) SetTabs(columns ...uint) {
	var b strings.Builder
	b.WriteString(ansiClearTabs)
	for _, col := range columns {
		b.WriteByte('\r')
		if col > 0 {
			b.WriteString(ansiEsc + "[" + strconv.FormatUint(uint64(col), 10) + "C")
		}
		b.WriteString(ansiSetTab)
	}
	b.WriteByte('\r')
	l.raw(b.String())
}

// ClearTabs clears all tab stops.
func (l *Logger) ClearTabs() {
	l.raw(ansiClearTabs)
}

func (l *Logger) raw(s string) {
	_, _ = l.out.Write([]byte(s))
}
