package cancel

// Any returns a PollFunc that fires when any of polls fires.
// Polls are evaluated in order and evaluation stops at the first true.
// Nil entries are skipped.
func Any(polls ...PollFunc) PollFunc {
	return func() bool {
		for _, p := range polls {
			if p != nil && p() {
				return true
			}
		}
		return false
	}
}

// Every returns a PollFunc that consults poll only on every nth call and
// reports false in between. Use it to thin out an expensive check such as
// a bus read.
func Every(n int, poll PollFunc) PollFunc {
	if n < 1 {
		n = 1
	}
	count := 0
	return func() bool {
		count++
		if count%n != 0 {
			return false
		}
		return poll()
	}
}

// After returns a PollFunc that reports false n times and true from then on.
func After(n int) PollFunc {
	calls := 0
	return func() bool {
		if calls >= n {
			return true
		}
		calls++
		return false
	}
}

// Never is a PollFunc that never fires.
func Never() bool { return false }

// Always is a PollFunc that always fires.
func Always() bool { return true }
