// Package core defines the session data model for the summit directory — the
// normalized representation of conference sessions that ingestion produces
// and the filter engine, renderers, and exporter consume.
package core

// RawSession mirrors one record of the dataset feed. Tags may be absent.
type RawSession struct {
	Title             string   `json:"title"`
	Date              string   `json:"date"`
	Time              string   `json:"time"`
	Location          string   `json:"location"`
	Room              string   `json:"room"`
	Speakers          []string `json:"speakers"`
	Description       string   `json:"description"`
	KnowledgePartners []string `json:"knowledge_partners"`
	Tags              []string `json:"tags,omitempty"`
}

// Session is one scheduled conference event. Immutable after ingestion: the
// ID is assigned once from the feed position and no field is mutated later.
type Session struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Date              string   `json:"date"` // display string, e.g. "16 Feb 2026"
	Time              string   `json:"time"` // display string, single time or "start - end"
	Location          string   `json:"location"`
	Room              string   `json:"room"`
	Speakers          []string `json:"speakers"` // canonical names, deduplicated
	Description       string   `json:"description"`
	KnowledgePartners []string `json:"knowledge_partners"`
	Topic             string   `json:"topic"` // inferred, always set
	Tags              []string `json:"tags"`
}

// FilterState holds the selected values per filter dimension. An empty
// dimension imposes no constraint — it never means "exclude all".
type FilterState struct {
	Topics            []string
	Dates             []string
	Times             []string
	Locations         []string
	KnowledgePartners []string
	Speakers          []string
	TimeSlots         []string
	Sectors           []string
	Thematics         []string
	Formats           []string
}

// Empty reports whether no dimension has a selection.
func (f FilterState) Empty() bool {
	return len(f.Topics) == 0 && len(f.Dates) == 0 && len(f.Times) == 0 &&
		len(f.Locations) == 0 && len(f.KnowledgePartners) == 0 &&
		len(f.Speakers) == 0 && len(f.TimeSlots) == 0 &&
		len(f.Sectors) == 0 && len(f.Thematics) == 0 && len(f.Formats) == 0
}

// TimeRange is a user-declared availability window. Start and end are
// 24-hour "HH:MM" strings with start < end, enforced at creation.
type TimeRange struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// TimeSlots are the coarse time-of-day buckets used by both bucket filters.
var TimeSlots = []string{"Morning", "Afternoon", "Evening"}
