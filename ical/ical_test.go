package ical

import (
	"strings"
	"testing"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonnes/sabha/core"
)

func TestGenerateStructure(t *testing.T) {
	out := Generate([]core.Session{
		{
			ID:    "session-0",
			Title: "Opening Keynote",
			Date:  "16 Feb 2026",
			Time:  "9:30 AM",
		},
	})

	lines := strings.Split(out, "\r\n")
	assert.Equal(t, "BEGIN:VCALENDAR", lines[0])
	assert.Equal(t, "VERSION:2.0", lines[1])
	assert.Equal(t, "PRODID:-//India AI Summit 2026//EN", lines[2])
	assert.Equal(t, "CALSCALE:GREGORIAN", lines[3])
	assert.Equal(t, "END:VCALENDAR", lines[len(lines)-1])
	assert.Contains(t, lines, "BEGIN:VEVENT")
	assert.Contains(t, lines, "END:VEVENT")
	assert.Contains(t, lines, "UID:session-0@indiaaisummit2026")
}

func TestGenerateSingleTimeSynthesizesOneHour(t *testing.T) {
	out := Generate([]core.Session{
		{ID: "session-0", Title: "Keynote", Date: "16 Feb 2026", Time: "9:30 AM"},
	})

	assert.Contains(t, out, "DTSTART:20260216T093000")
	assert.Contains(t, out, "DTEND:20260216T103000")
}

func TestGenerateTimeRange(t *testing.T) {
	out := Generate([]core.Session{
		{ID: "session-1", Title: "Panel", Date: "17 Feb 2026", Time: "11:30 AM - 1:00 PM"},
	})

	assert.Contains(t, out, "DTSTART:20260217T113000")
	assert.Contains(t, out, "DTEND:20260217T130000")
}

func TestGenerateFallbacks(t *testing.T) {
	t.Run("unparseable time falls back to midnight", func(t *testing.T) {
		out := Generate([]core.Session{
			{ID: "session-0", Title: "TBD", Date: "16 Feb 2026", Time: "TBD"},
		})
		assert.Contains(t, out, "DTSTART:20260216T000000")
	})

	t.Run("unknown month defaults to January", func(t *testing.T) {
		out := Generate([]core.Session{
			{ID: "session-0", Title: "X", Date: "16 Xyz 2026", Time: "9:30 AM"},
		})
		assert.Contains(t, out, "DTSTART:20260116T093000")
	})

	t.Run("single-digit day is padded", func(t *testing.T) {
		out := Generate([]core.Session{
			{ID: "session-0", Title: "X", Date: "9 Mar 2026", Time: "9:30 AM"},
		})
		assert.Contains(t, out, "DTSTART:20260309T093000")
	})
}

func TestGenerateLocationAndDescription(t *testing.T) {
	out := Generate([]core.Session{
		{
			ID:                "session-0",
			Title:             "Panel; on AI, really",
			Date:              "16 Feb 2026",
			Time:              "9:30 AM",
			Location:          "Bharat Mandapam",
			Room:              "Hall 3",
			Description:       "Long description.\nSee Less",
			Speakers:          []string{"Jane Smith, MIT"},
			KnowledgePartners: []string{"OECD"},
		},
	})

	assert.Contains(t, out, `SUMMARY:Panel\; on AI\, really`)
	assert.Contains(t, out, `LOCATION:Hall 3\, Bharat Mandapam`)
	// "See Less" is stripped before export.
	assert.NotContains(t, out, "See Less")
	assert.Contains(t, out, `Speakers: Jane Smith\, MIT`)
	assert.Contains(t, out, `Knowledge Partners: OECD`)
}

func TestGenerateSkipsEmptyLocationParts(t *testing.T) {
	out := Generate([]core.Session{
		{ID: "session-0", Title: "X", Date: "16 Feb 2026", Time: "9:30 AM", Location: "Bharat Mandapam"},
	})
	assert.Contains(t, out, "LOCATION:Bharat Mandapam")
}

// The export must be parseable by a real iCalendar consumer.
func TestGenerateRoundTrip(t *testing.T) {
	out := Generate([]core.Session{
		{ID: "session-0", Title: "Keynote", Date: "16 Feb 2026", Time: "9:30 AM"},
		{ID: "session-1", Title: "Panel", Date: "17 Feb 2026", Time: "11:30 AM - 1:00 PM"},
	})

	cal, err := ics.ParseCalendar(strings.NewReader(out))
	require.NoError(t, err)

	events := cal.Events()
	require.Len(t, events, 2)

	uid := events[0].GetProperty(ics.ComponentPropertyUniqueId)
	require.NotNil(t, uid)
	assert.Equal(t, "session-0@indiaaisummit2026", uid.Value)

	start := events[1].GetProperty(ics.ComponentPropertyDtStart)
	require.NotNil(t, start)
	assert.Equal(t, "20260217T113000", start.Value)
}

func TestGenerateStableAcrossExports(t *testing.T) {
	sessions := []core.Session{
		{ID: "session-0", Title: "Keynote", Date: "16 Feb 2026", Time: "9:30 AM"},
	}
	assert.Equal(t, Generate(sessions), Generate(sessions))
}
