package core

import "strings"

// seeLessMarker is a UI artifact the feed leaves at the end of expanded
// descriptions. It must never reach a rendered page or a calendar export.
const seeLessMarker = "See Less"

// CleanDescription strips the "See Less" marker from a session description
// and trims surrounding whitespace. Only the first occurrence is removed,
// matching where the feed places it.
func CleanDescription(s string) string {
	return strings.TrimSpace(strings.Replace(s, seeLessMarker, "", 1))
}
