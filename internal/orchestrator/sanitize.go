package orchestrator

import (
	"regexp"
	"strings"
)

var (
	reFenceHTML = regexp.MustCompile("(?i)```html\n?")
	reFence     = regexp.MustCompile("```\n?")
	reImgTag    = regexp.MustCompile(`(?i)<img[^>]*>`)
)

// Sanitize strips code-fence markers the service may wrap the answer
// in, trims whitespace, and removes embedded image tags. The img strip
// backs up the "no <img> tags" instruction in case the model ignores it.
func Sanitize(s string) string {
	s = reFenceHTML.ReplaceAllString(s, "")
	s = reFence.ReplaceAllString(s, "")
	s = strings.TrimSpace(s)
	return reImgTag.ReplaceAllString(s, "")
}
