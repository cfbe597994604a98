package clock

import (
	"strconv"
	"strings"

	"github.com/sonnes/sabha/core"
)

// Overlaps reports whether a session window intersects any availability
// range. No declared ranges means no constraint. Overlap is strict half-open:
// windows that merely touch at an endpoint do not overlap. A range whose
// stored time fails to parse contributes no overlap rather than erroring.
func Overlaps(sessionStart, sessionEnd int, ranges []core.TimeRange) bool {
	if len(ranges) == 0 {
		return true
	}
	for _, r := range ranges {
		start, ok := clockMinutes(r.StartTime)
		if !ok {
			continue
		}
		end, ok := clockMinutes(r.EndTime)
		if !ok {
			continue
		}
		if sessionEnd > start && sessionStart < end {
			return true
		}
	}
	return false
}

// clockMinutes parses a 24-hour "HH:MM" string into minutes since midnight.
func clockMinutes(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	mins, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return hours*60 + mins, true
}
