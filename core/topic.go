package core

import "strings"

// Topics are the high-level subject labels a session can be filed under.
var Topics = []string{
	"AI Governance",
	"AI Safety",
	"Healthcare",
	"Education",
	"Climate",
	"Infrastructure",
	"Economic Growth",
	"International Cooperation",
	"Workforce",
	"Startups",
	"Agriculture",
	"Finance",
	"Defense",
	"Ethics",
}

// topicRules are checked in order; the first topic whose keyword set hits
// wins. Many sessions match several sets, so the order is part of the
// contract and must not be rearranged.
var topicRules = []struct {
	topic    string
	keywords []string
}{
	{"AI Governance", []string{"governance", "regulation", "policy", "standards"}},
	{"AI Safety", []string{"safety", "security", "trust", "secure"}},
	{"Healthcare", []string{"health", "medical", "healthcare", "clinic"}},
	{"Education", []string{"education", "learning", "skill", "literacy", "stem"}},
	{"Climate", []string{"climate", "energy", "sustainable", "environment", "green"}},
	{"Infrastructure", []string{"compute", "infrastructure", "semiconductor", "chip", "6g"}},
	{"Economic Growth", []string{"economic", "growth", "development", "gdp"}},
	{"International Cooperation", []string{"global", "international", "partnership", "collaboration", "south"}},
	{"Workforce", []string{"workforce", "talent", "job", "employment", "human potential"}},
	{"Startups", []string{"startup", "entrepreneur", "innovation", "founder"}},
	{"Agriculture", []string{"agriculture", "farm", "food"}},
	{"Finance", []string{"finance", "fintech", "payment", "banking"}},
	{"Defense", []string{"defense", "military", "army", "sovereignty"}},
	{"Ethics", []string{"ethics", "responsible", "human rights", "humanity"}},
}

// InferTopic assigns a single topic from the session's title and description
// by keyword lookup. Sessions that hit no keyword set default to
// "AI Governance".
func InferTopic(title, description string) string {
	text := strings.ToLower(title + " " + description)
	for _, rule := range topicRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.topic
			}
		}
	}
	return "AI Governance"
}
