// Package speaker consolidates the speaker-name variants found in the raw
// session feed. The same person appears under multiple strings — with or
// without an honorific, with or without an organization suffix after a comma
// — and filtering by speaker only works once every variant maps to a single
// canonical display name.
//
// The matching is deliberately heuristic: a closed honorific list and a
// longest-string tie-break. It lives behind BuildMapping/NormalizeAll so a
// better strategy can be swapped in without touching the filter engine.
package speaker

import (
	"regexp"
	"strings"
)

// honorificRE strips one leading title token. The set is closed; anything
// outside it is treated as part of the name.
var honorificRE = regexp.MustCompile(`(?i)^(dr\.?|mr\.?|ms\.?|mrs\.?|prof\.?|professor|shri)\s+`)

// Normalize strips a leading honorific and trims whitespace. The remainder
// of the string is left untouched — no case folding.
func Normalize(raw string) string {
	if raw == "" {
		return raw
	}
	return strings.TrimSpace(honorificRE.ReplaceAllString(raw, ""))
}

// BaseName returns the grouping key for a raw name: the normalized string up
// to the first comma. Dropping the organization suffix lets variants naming
// the same person with different affiliations collapse into one group.
func BaseName(raw string) string {
	normalized := Normalize(raw)
	base, _, _ := strings.Cut(normalized, ",")
	return strings.TrimSpace(base)
}

// Canonical picks the representative display name for a group of raw
// variants sharing one base name. Variants carrying organization detail
// (a comma) win over bare names; among those the longest wins, ties going to
// the first encountered. Without any comma variant the first variant wins.
func Canonical(variants []string) string {
	if len(variants) == 0 {
		return ""
	}
	if len(variants) == 1 {
		return Normalize(variants[0])
	}

	best := ""
	for _, v := range variants {
		if strings.Contains(v, ",") && len(v) > len(best) {
			best = v
		}
	}
	if best != "" {
		return Normalize(best)
	}
	return Normalize(variants[0])
}

// BuildMapping groups every raw speaker string across the whole dataset by
// its lowercased base name and maps each variant to the group's canonical
// name. It must run over the full cross-session roster: per-session grouping
// would miss variant pairs that never co-occur in one session.
func BuildMapping(allRaw []string) map[string]string {
	groups := make(map[string][]string)
	var order []string
	for _, raw := range allRaw {
		key := strings.ToLower(BaseName(raw))
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], raw)
	}

	mapping := make(map[string]string, len(allRaw))
	for _, key := range order {
		variants := groups[key]
		canonical := Canonical(variants)
		for _, v := range variants {
			mapping[v] = canonical
		}
	}
	return mapping
}

// NormalizeAll rewrites a session's raw speaker list through the mapping,
// falling back to direct normalization for strings the mapping has never
// seen, and drops duplicate canonical names keeping first-occurrence order.
// The result is never nil so an empty roster serializes as an empty list.
func NormalizeAll(rawList []string, mapping map[string]string) []string {
	out := make([]string, 0, len(rawList))
	seen := make(map[string]bool, len(rawList))
	for _, raw := range rawList {
		name, ok := mapping[raw]
		if !ok {
			name = Normalize(raw)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
