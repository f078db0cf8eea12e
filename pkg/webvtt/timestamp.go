package webvtt

import (
	"math"
	"strconv"
	"time"
)

const (
	msPerSecond = 1_000
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute

	// largest hours value whose total still fits in a time.Duration
	maxHours = uint64(math.MaxInt64/int64(time.Millisecond))/msPerHour - 1
)

// parseTimestamp parses a leading "HH:MM:SS.mmm" or "MM:SS.mmm" timestamp
// and returns its offset from zero plus the unconsumed rest of s.
//
// A leading field that is not exactly two digits, or is above 59, can only
// be hours. Hours may have any number of digits; every other field has a
// fixed width and minutes/seconds are at most 59.
func parseTimestamp(s string) (time.Duration, string, bool) {
	lead, i := digitRun(s, 0)
	if lead == "" || i >= len(s) || s[i] != ':' {
		return 0, "", false
	}
	i++

	first, err := strconv.ParseUint(lead, 10, 64)
	if err != nil {
		return 0, "", false
	}
	hasHours := first > 59 || len(lead) != 2

	second, i, term, ok := sexagesimalField(s, i)
	if !ok {
		return 0, "", false
	}

	var hours, minutes, seconds uint64
	if hasHours || term == ':' {
		third, next, t, ok := sexagesimalField(s, i)
		if !ok {
			return 0, "", false
		}
		hours, minutes, seconds = first, second, third
		i, term = next, t
	} else {
		minutes, seconds = first, second
	}

	if term != '.' {
		return 0, "", false
	}

	frac, i := digitRun(s, i)
	if len(frac) != 3 {
		return 0, "", false
	}
	millis, _ := strconv.ParseUint(frac, 10, 64)

	if hours > maxHours {
		return 0, "", false
	}

	total := hours*msPerHour + minutes*msPerMinute + seconds*msPerSecond + millis
	return time.Duration(total) * time.Millisecond, s[i:], true
}

// sexagesimalField reads a two digit field no greater than 59 starting at i,
// plus the byte terminating it. Running out of input is a failure.
func sexagesimalField(s string, i int) (uint64, int, byte, bool) {
	digits, end := digitRun(s, i)
	if end >= len(s) {
		return 0, 0, 0, false
	}
	term := s[end]
	if len(digits) != 2 {
		return 0, 0, 0, false
	}
	v, _ := strconv.ParseUint(digits, 10, 64)
	if v > 59 {
		return 0, 0, 0, false
	}
	return v, end + 1, term, true
}

// digitRun returns the maximal run of ASCII digits starting at i and the
// index just past it.
func digitRun(s string, i int) (string, int) {
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[start:i], i
}
