// Package clock parses the heterogeneous human time strings found in the
// session feed ("9:30 AM", "11:30 AM - 1:00 PM") into minutes since midnight
// and converts between 12-hour and 24-hour display formats.
package clock

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// rangeSeparator splits a session time range into its start and end halves.
const rangeSeparator = " - "

// timeRE matches the first H:MM or HH:MM, optionally followed by AM/PM.
var timeRE = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)?`)

// time12RE is the stricter form used by the 12→24 converter: the period
// marker is required.
var time12RE = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)`)

// Window is a session's time span in minutes since midnight.
type Window struct {
	Start int
	End   int
}

// ToMinutes extracts the first time pattern from s and returns minutes since
// midnight. 12 AM maps to 0 and 12 PM stays 12; any other PM hour gets +12.
// ok is false when no time pattern is present — callers must treat that as
// unparseable, not as midnight.
func ToMinutes(s string) (minutes int, ok bool) {
	m := timeRE.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	hours, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])

	switch strings.ToUpper(m[3]) {
	case "AM":
		if hours == 12 {
			hours = 0
		}
	case "PM":
		if hours != 12 {
			hours += 12
		}
	}
	return hours*60 + mins, true
}

// ParseWindow parses a session time string into a start/end window. A range
// ("11:30 AM - 1:00 PM") parses both sides and fails if either side fails.
// A single time is assumed to last exactly one hour — an approximation used
// for availability matching only; the display string is never altered.
func ParseWindow(s string) (Window, bool) {
	if s == "" {
		return Window{}, false
	}

	if strings.Contains(s, rangeSeparator) {
		parts := strings.SplitN(s, rangeSeparator, 2)
		start, ok := ToMinutes(strings.TrimSpace(parts[0]))
		if !ok {
			return Window{}, false
		}
		end, ok := ToMinutes(strings.TrimSpace(parts[1]))
		if !ok {
			return Window{}, false
		}
		return Window{Start: start, End: end}, true
	}

	start, ok := ToMinutes(s)
	if !ok {
		return Window{}, false
	}
	return Window{Start: start, End: start + 60}, true
}

// MinutesToTime formats minutes since midnight as a 24-hour "HH:MM" string.
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Convert12To24 converts "9:00 AM" to "09:00". Strings that don't carry an
// AM/PM time are returned unchanged.
func Convert12To24(time12 string) string {
	m := time12RE.FindStringSubmatch(time12)
	if m == nil {
		return time12
	}
	hours, _ := strconv.Atoi(m[1])
	switch strings.ToUpper(m[3]) {
	case "AM":
		if hours == 12 {
			hours = 0
		}
	case "PM":
		if hours != 12 {
			hours += 12
		}
	}
	return fmt.Sprintf("%02d:%s", hours, m[2])
}

// Convert24To12 converts "14:30" to "2:30 PM". Strings that don't split into
// an hour and a minute part are returned unchanged.
func Convert24To12(time24 string) string {
	parts := strings.Split(time24, ":")
	if len(parts) != 2 {
		return time24
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return time24
	}

	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	display := hours
	switch {
	case hours == 0:
		display = 12
	case hours > 12:
		display = hours - 12
	}
	return fmt.Sprintf("%d:%s %s", display, parts[1], period)
}

// PresetRange maps a time-slot preset to its 24-hour window. Unknown presets
// fall back to the full day span.
func PresetRange(preset string) (startTime, endTime string) {
	switch preset {
	case "Morning":
		return "09:00", "12:00"
	case "Afternoon":
		return "12:00", "17:00"
	case "Evening":
		return "17:00", "21:00"
	default:
		return "09:00", "17:00"
	}
}

// TimeOptions returns the selectable times for availability input: 12-hour
// strings in 30-minute steps from 8:00 AM through 10:00 PM inclusive.
func TimeOptions() []string {
	var options []string
	for minutes := 8 * 60; minutes <= 22*60; minutes += 30 {
		options = append(options, Convert24To12(MinutesToTime(minutes)))
	}
	return options
}
