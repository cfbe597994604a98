// Package ical serializes sessions into an iCalendar document for import
// into external calendar apps. The encoder is best-effort by contract:
// malformed dates or times degrade to documented fallback values and the
// export always succeeds.
package ical

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/sonnes/sabha/core"
)

const (
	// Filename is the download name for the exported document.
	Filename = "india-ai-summit-2026.ics"

	// MIMEType is the content type for serving the export.
	MIMEType = "text/calendar;charset=utf-8"

	// uidDomain makes event UIDs collision-free across the export and
	// stable between exports of the same dataset.
	uidDomain = "indiaaisummit2026"

	prodID = "-//India AI Summit 2026//EN"
)

// months maps 3-letter English month abbreviations to their two-digit form.
var months = map[string]string{
	"Jan": "01", "Feb": "02", "Mar": "03", "Apr": "04",
	"May": "05", "Jun": "06", "Jul": "07", "Aug": "08",
	"Sep": "09", "Oct": "10", "Nov": "11", "Dec": "12",
}

// clockRE matches a full 12-hour clock string, period marker required.
var clockRE = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})\s*(AM|PM)$`)

// Generate serializes sessions into a CRLF-joined iCalendar document.
func Generate(sessions []core.Session) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + prodID,
		"CALSCALE:GREGORIAN",
	}
	for _, s := range sessions {
		lines = append(lines, eventBlock(s))
	}
	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, "\r\n")
}

func eventBlock(s core.Session) string {
	var dtStart, dtEnd string
	if start, end, ok := strings.Cut(s.Time, " - "); ok {
		dtStart = toDateTime(s.Date, strings.TrimSpace(start))
		dtEnd = toDateTime(s.Date, strings.TrimSpace(end))
	} else {
		dtStart = toDateTime(s.Date, strings.TrimSpace(s.Time))
		dtEnd = addOneHour(dtStart)
	}

	var locParts []string
	for _, part := range []string{s.Room, s.Location} {
		if part != "" {
			locParts = append(locParts, part)
		}
	}
	location := strings.Join(locParts, ", ")

	var descParts []string
	if s.Description != "" {
		descParts = append(descParts, core.CleanDescription(s.Description))
	}
	if len(s.Speakers) > 0 {
		descParts = append(descParts, "Speakers: "+strings.Join(s.Speakers, ", "))
	}
	if len(s.KnowledgePartners) > 0 {
		descParts = append(descParts, "Knowledge Partners: "+strings.Join(s.KnowledgePartners, ", "))
	}

	return strings.Join([]string{
		"BEGIN:VEVENT",
		"DTSTART:" + dtStart,
		"DTEND:" + dtEnd,
		"SUMMARY:" + escapeText(s.Title),
		"LOCATION:" + escapeText(location),
		"DESCRIPTION:" + escapeText(strings.Join(descParts, `\n`)),
		"UID:" + s.ID + "@" + uidDomain,
		"END:VEVENT",
	}, "\r\n")
}

// toDateTime combines a "D Mon YYYY" date and a 12-hour time into the
// interchange form YYYYMMDDTHHMMSS (local, no timezone marker). Unknown
// month abbreviations default to "01" and unparseable times to T000000.
func toDateTime(dateStr, timeStr string) string {
	var day, mon, year string
	if parts := strings.Fields(dateStr); len(parts) >= 3 {
		day, mon, year = parts[0], parts[1], parts[2]
	}

	if len(day) < 2 {
		day = strings.Repeat("0", 2-len(day)) + day
	}
	mm, ok := months[mon]
	if !ok {
		log.Debug("export: unrecognized month, defaulting", "month", mon, "date", dateStr)
		mm = "01"
	}

	m := clockRE.FindStringSubmatch(strings.TrimSpace(timeStr))
	if m == nil {
		log.Debug("export: unparseable time, defaulting to midnight", "time", timeStr)
		return year + mm + day + "T000000"
	}

	hours, _ := strconv.Atoi(m[1])
	switch strings.ToUpper(m[3]) {
	case "PM":
		if hours != 12 {
			hours += 12
		}
	case "AM":
		if hours == 12 {
			hours = 0
		}
	}
	return fmt.Sprintf("%s%s%sT%02d%s00", year, mm, day, hours, m[2])
}

// addOneHour shifts an interchange datetime forward by one hour, minutes and
// seconds preserved. Hours are assumed to stay within the same day — there
// is no rollover across midnight.
func addOneHour(dt string) string {
	i := strings.IndexByte(dt, 'T')
	if i < 0 || len(dt) < i+5 {
		return dt
	}
	hours, err := strconv.Atoi(dt[i+1 : i+3])
	if err != nil {
		return dt
	}
	return fmt.Sprintf("%s%02d%s", dt[:i+1], hours+1, dt[i+3:])
}

// escapeText escapes the characters reserved in iCalendar text fields:
// backslash, semicolon, comma, and newline.
func escapeText(text string) string {
	text = strings.ReplaceAll(text, `\`, `\\`)
	text = strings.ReplaceAll(text, ";", `\;`)
	text = strings.ReplaceAll(text, ",", `\,`)
	text = strings.ReplaceAll(text, "\n", `\n`)
	return text
}
