package orchestrator

import "strings"

// IsDocument reports whether text is a complete markup document. This
// is a prefix check only: the upstream service's output is best-effort,
// so a malformed-but-prefixed response still goes to the viewer, which
// renders what it can.
func IsDocument(text string) bool {
	t := strings.ToLower(strings.TrimSpace(text))
	return strings.HasPrefix(t, "<!doctype html") || strings.HasPrefix(t, "<html")
}
