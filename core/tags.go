package core

// TagKind buckets a free-form session tag into one of three facets.
type TagKind string

const (
	KindSector   TagKind = "sector"
	KindFormat   TagKind = "format"
	KindThematic TagKind = "thematic"
)

// Sectors is the closed industry-sector vocabulary.
var Sectors = []string{
	"Healthcare",
	"Agriculture",
	"Education",
	"Finance & Fintech",
	"Defence & National Security",
	"Energy & Climate",
	"Cybersecurity",
	"Frontier Tech (Quantum, Robotics, Semiconductor)",
	"Creative Industries & Media",
	"Smart Cities & Urban Development",
	"Legal & Judiciary",
	"Disaster Management",
	"Telecom & Connectivity",
	"Transportation & Logistics",
}

// Formats is the closed session-format vocabulary.
var Formats = []string{
	"Keynote",
	"Leadership Talk",
	"Panel / Roundtable",
	"Hackathon / Competition",
	"Masterclass",
	"Workshop",
	"Fireside Chat",
	"Inaugural / Launch",
}

// Thematics is the known thematic vocabulary. Unlike sectors and formats it
// is open-ended: classification treats any unknown tag as thematic.
var Thematics = []string{
	"AI Governance & Policy",
	"AI Safety & Trust",
	"Responsible & Ethical AI",
	"AI Infrastructure & Compute",
	"Data Governance & Open Data",
	"Digital Public Infrastructure (DPI)",
	"Generative AI, LLMs & Agentic AI",
	"Multilingual AI & Language Tech",
	"Inclusion & Equity",
	"Women & Gender in AI",
	"Youth & Children",
	"Skilling & Workforce Development",
	"Startups & Innovation Ecosystem",
	"Global South & Development Cooperation",
	"Geopolitics & Bilateral Cooperation",
	"Open Source AI",
	"Sovereign AI",
	"AI for Social Good & Nonprofits",
	"Intellectual Property & Copyright",
	"Blockchain & Digital Trust Infra",
	"AI Investment & Funding",
	"Standards & Interoperability",
	"AI Evaluation & Benchmarking",
	"India Focus",
}

var (
	sectorSet = toSet(Sectors)
	formatSet = toSet(Formats)
)

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// ClassifyTag buckets a tag by exact match against the sector and format
// vocabularies. Anything else is thematic — a catch-all, not an error.
func ClassifyTag(tag string) TagKind {
	if _, ok := sectorSet[tag]; ok {
		return KindSector
	}
	if _, ok := formatSet[tag]; ok {
		return KindFormat
	}
	return KindThematic
}
