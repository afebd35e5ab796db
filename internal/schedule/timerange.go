// Package schedule parses human-entered time ranges and enumerates
// same-child scheduling conflicts across the catalog.
package schedule

import (
	"strconv"
	"strings"
)

// TimeRange is a half-open interval in minutes since midnight.
type TimeRange struct {
	Start int
	End   int
}

// Overlaps reports whether two half-open ranges intersect. Touching
// endpoints (one ends exactly when the other starts) do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	start := r.Start
	if other.Start > start {
		start = other.Start
	}
	end := r.End
	if other.End < end {
		end = other.End
	}
	return start < end
}

// ParseClock parses a single clock token like "16:30", "16.30" or "16h30"
// into minutes since midnight.
func ParseClock(s string) (int, bool) {
	t := strings.TrimSpace(s)
	var parts []string
	for _, sep := range []string{":", ".", "h"} {
		if strings.Contains(t, sep) {
			parts = strings.SplitN(t, sep, 2)
			break
		}
	}
	if len(parts) != 2 {
		return 0, false
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	min, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}
	if hour < 0 || hour > 23 || min < 0 || min > 59 {
		return 0, false
	}
	return hour*60 + min, true
}

// ParseRange parses "HH:MM-HH:MM" (hyphen or en-dash) into a TimeRange.
// Anything that does not split into exactly two parseable clock tokens
// fails; callers treat failure conservatively.
func ParseRange(s string) (TimeRange, bool) {
	parts := strings.Split(strings.ReplaceAll(s, "–", "-"), "-")
	if len(parts) != 2 {
		return TimeRange{}, false
	}
	start, ok := ParseClock(parts[0])
	if !ok {
		return TimeRange{}, false
	}
	end, ok := ParseClock(parts[1])
	if !ok {
		return TimeRange{}, false
	}
	return TimeRange{Start: start, End: end}, true
}
