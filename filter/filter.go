// Package filter implements the session filter engine: a pure function from
// the full session list plus the current query state to the visible subset.
// It retains no state between calls and is safe to re-invoke on every
// keystroke or toggle; callers recompute rather than patch results.
package filter

import (
	"strconv"
	"strings"

	"github.com/sonnes/sabha/clock"
	"github.com/sonnes/sabha/core"
)

// Params is the composite query state: structured filter selections, the
// three live text queries, and the declared availability windows.
type Params struct {
	Filters      core.FilterState
	Search       string
	SpeakerQuery string
	PartnerQuery string
	Availability []core.TimeRange
}

// Apply filters sessions against p. Dimensions are AND-ed together;
// selections within a dimension are OR-ed; an empty dimension imposes no
// constraint. Output order equals input order — no re-sorting.
func Apply(sessions []core.Session, p Params) []core.Session {
	out := make([]core.Session, 0, len(sessions))
	for _, s := range sessions {
		if matches(s, p) {
			out = append(out, s)
		}
	}
	return out
}

func matches(s core.Session, p Params) bool {
	// The trim gates emptiness only; the match uses the query as typed,
	// padding included.
	if strings.TrimSpace(p.Search) != "" && !matchesSearch(s, strings.ToLower(p.Search)) {
		return false
	}
	if len(p.Filters.Topics) > 0 && !contains(p.Filters.Topics, s.Topic) {
		return false
	}
	if len(p.Filters.Dates) > 0 && !contains(p.Filters.Dates, s.Date) {
		return false
	}
	if len(p.Filters.Times) > 0 && !matchesTimes(s, p.Filters.Times) {
		return false
	}
	if len(p.Filters.Locations) > 0 && !contains(p.Filters.Locations, s.Location) {
		return false
	}
	if !matchesTerms(s.KnowledgePartners, p.Filters.KnowledgePartners, p.PartnerQuery) {
		return false
	}
	if !matchesTerms(s.Speakers, p.Filters.Speakers, p.SpeakerQuery) {
		return false
	}
	if len(p.Filters.Sectors) > 0 && !matchesTagDim(s, core.KindSector, p.Filters.Sectors) {
		return false
	}
	if len(p.Filters.Thematics) > 0 && !matchesTagDim(s, core.KindThematic, p.Filters.Thematics) {
		return false
	}
	if len(p.Filters.Formats) > 0 && !matchesTagDim(s, core.KindFormat, p.Filters.Formats) {
		return false
	}
	if len(p.Filters.TimeSlots) > 0 && !matchesTimeSlots(s, p.Filters.TimeSlots) {
		return false
	}
	if len(p.Availability) > 0 && !matchesAvailability(s, p.Availability) {
		return false
	}
	return true
}

// matchesSearch does a case-insensitive substring match against the title,
// description, speakers, and knowledge partners. query must already be
// lowercased.
func matchesSearch(s core.Session, query string) bool {
	if strings.Contains(strings.ToLower(s.Title), query) ||
		strings.Contains(strings.ToLower(s.Description), query) {
		return true
	}
	for _, sp := range s.Speakers {
		if strings.Contains(strings.ToLower(sp), query) {
			return true
		}
	}
	for _, kp := range s.KnowledgePartners {
		if strings.Contains(strings.ToLower(kp), query) {
			return true
		}
	}
	return false
}

// matchesTimes is the coarse time-of-day filter bound to the date/time
// chips. It reads the leading hour of the display time and only applies the
// PM shift. This deliberately disagrees with matchesTimeSlots on the Morning
// lower bound and on 12 AM handling; the two rules belong to different
// controls and are kept exactly as they ship.
func matchesTimes(s core.Session, selected []string) bool {
	hour, ok := leadingInt(s.Time)
	isPM := strings.Contains(strings.ToLower(s.Time), "pm")
	actualHour := hour
	if isPM && hour != 12 {
		actualHour = hour + 12
	}

	for _, t := range selected {
		switch t {
		case "Morning":
			if ok && actualHour >= 9 && actualHour < 12 {
				return true
			}
		case "Afternoon":
			if ok && actualHour >= 12 && actualHour < 17 {
				return true
			}
		case "Evening":
			if ok && actualHour >= 17 {
				return true
			}
		default:
			// Unknown selections never constrain.
			return true
		}
	}
	return false
}

// matchesTimeSlots is the second bucket filter, bound to the slot chips. It
// fails open on unparseable times and applies both AM and PM adjustments.
func matchesTimeSlots(s core.Session, selected []string) bool {
	minutes, ok := clock.ToMinutes(s.Time)
	if !ok {
		return true
	}
	hour := minutes / 60

	for _, slot := range selected {
		switch slot {
		case "Morning":
			if hour < 12 {
				return true
			}
		case "Afternoon":
			if hour >= 12 && hour < 17 {
				return true
			}
		case "Evening":
			if hour >= 17 {
				return true
			}
		default:
			return true
		}
	}
	return false
}

// matchesAvailability keeps sessions whose window overlaps any declared
// range. An unparseable session time passes through unconstrained.
func matchesAvailability(s core.Session, ranges []core.TimeRange) bool {
	w, ok := clock.ParseWindow(s.Time)
	if !ok {
		return true
	}
	return clock.Overlaps(w.Start, w.End, ranges)
}

// matchesTerms implements the shared chip-plus-query pattern used by the
// partner and speaker dimensions: the selected chips and the live text query
// form one OR set of substring terms.
func matchesTerms(values, chips []string, query string) bool {
	terms := chips
	if q := strings.TrimSpace(query); q != "" {
		terms = append(append([]string{}, chips...), q)
	}
	if len(terms) == 0 {
		return true
	}
	for _, v := range values {
		lv := strings.ToLower(v)
		for _, term := range terms {
			if strings.Contains(lv, strings.ToLower(term)) {
				return true
			}
		}
	}
	return false
}

// matchesTagDim reports whether the session carries at least one tag that
// both classifies as kind and is in the selected set.
func matchesTagDim(s core.Session, kind core.TagKind, selected []string) bool {
	for _, tag := range s.Tags {
		if core.ClassifyTag(tag) == kind && contains(selected, tag) {
			return true
		}
	}
	return false
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}

// leadingInt parses the digit run that starts the string, ignoring leading
// spaces. Mirrors how the time chip filter reads the hour off the raw
// display string.
func leadingInt(s string) (int, bool) {
	s = strings.TrimLeft(s, " ")
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
