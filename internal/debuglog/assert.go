package debuglog

import "cmp"

// AssertBetween prints an error through l unless lo <= v <= hi, and reports
// whether v was in range.
func AssertBetween[T cmp.Ordered](l *Logger, v, lo, hi T) bool {
	ok := v >= lo && v <= hi
	if !ok {
		l.log(Error, "ERROR, assertion failed")
	}
	return ok
}

// AssertIndex prints an error through l unless 0 <= i < n.
func AssertIndex(l *Logger, i, n int) bool {
	ok := i >= 0 && i < n
	if !ok {
		l.log(Error, "ERROR, assertion failed")
	}
	return ok
}
