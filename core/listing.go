package core

// Listing is what renderers consume: the filtered sessions plus enough
// context to label the output. It mirrors the fields a directory page needs
// without retaining any filter state.
type Listing struct {
	Event    string    `json:"event"`
	Sessions []Session `json:"sessions"`
	Total    int       `json:"total"` // dataset size before filtering
}

// NewListing pairs a filtered session list with its event label and the
// unfiltered dataset size.
func NewListing(event string, sessions []Session, total int) *Listing {
	return &Listing{Event: event, Sessions: sessions, Total: total}
}

// Facets holds the distinct selectable values per filter dimension,
// computed once from the loaded dataset. Value order follows first
// occurrence in the feed; tag facets are bucketed by classification.
type Facets struct {
	Topics    []string `json:"topics"`
	Dates     []string `json:"dates"`
	Locations []string `json:"locations"`
	Partners  []string `json:"partners"`
	Speakers  []string `json:"speakers"`
	Sectors   []string `json:"sectors"`
	Thematics []string `json:"thematics"`
	Formats   []string `json:"formats"`
}

// CollectFacets derives the selectable filter values from a session list.
func CollectFacets(sessions []Session) Facets {
	var f Facets
	seen := map[string]map[string]bool{}
	add := func(dim string, dst *[]string, value string) {
		if value == "" {
			return
		}
		if seen[dim] == nil {
			seen[dim] = map[string]bool{}
		}
		if seen[dim][value] {
			return
		}
		seen[dim][value] = true
		*dst = append(*dst, value)
	}

	for _, s := range sessions {
		add("topic", &f.Topics, s.Topic)
		add("date", &f.Dates, s.Date)
		add("location", &f.Locations, s.Location)
		for _, kp := range s.KnowledgePartners {
			add("partner", &f.Partners, kp)
		}
		for _, sp := range s.Speakers {
			add("speaker", &f.Speakers, sp)
		}
		for _, tag := range s.Tags {
			switch ClassifyTag(tag) {
			case KindSector:
				add("sector", &f.Sectors, tag)
			case KindFormat:
				add("format", &f.Formats, tag)
			default:
				add("thematic", &f.Thematics, tag)
			}
		}
	}
	return f
}
