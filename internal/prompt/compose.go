// Package prompt assembles the composite generation request from user
// intent, structured data, and image-derived design descriptions.
// Composition is pure string work: no I/O, no randomness, no clocks.
package prompt

import (
	"strings"
)

// ImageDescription is the ephemeral per-image analysis produced during
// one orchestration run.
type ImageDescription struct {
	SourceFileName string
	Text           string
}

// jsonBudget bounds each structured-data document inside the composite
// prompt. closerFloor is the earliest acceptable truncation point when
// cutting back to a structural closer; truncating before it loses too
// much data, so a hard cut at the budget wins instead.
const (
	jsonBudget  = 6000
	closerFloor = jsonBudget * 7 / 10
)

// Compose builds the composite prompt. Caller-supplied artifact order
// is preserved.
func Compose(userText string, jsonDocs []string, descriptions []ImageDescription) string {
	var b strings.Builder

	if text := strings.TrimSpace(userText); text != "" {
		b.WriteString("User Request: " + text + "\n\n")
	}

	if len(jsonDocs) > 0 {
		b.WriteString(jsonSectionHeader)
		for _, doc := range jsonDocs {
			b.WriteString(truncateJSON(doc))
			b.WriteString("\n\n")
		}
	}

	if len(descriptions) > 0 {
		b.WriteString(designSectionHeader)
		for _, d := range descriptions {
			b.WriteString("DESIGN SPECIFICATION:\n")
			b.WriteString(d.Text)
			b.WriteString("\n\n")
		}
	}

	b.WriteString(criticalHeader)
	if len(descriptions) > 0 {
		b.WriteString(withImageRequirements)
	} else {
		b.WriteString(withoutImageRequirements)
	}
	if len(jsonDocs) > 0 {
		b.WriteString(jsonIntegrationRequirements)
	}
	b.WriteString(outputFormatContract)

	return b.String()
}

// truncateJSON bounds one serialized document at jsonBudget characters.
// The cut prefers the last structural closer ("}" or "]") inside the
// budget so the emitted text does not end mid-structure, but only when
// that closer lies past closerFloor; otherwise the hard budget cut is
// used.
func truncateJSON(doc string) string {
	if len(doc) <= jsonBudget {
		return doc
	}
	cut := doc[:jsonBudget]
	closer := strings.LastIndexByte(cut, '}')
	if i := strings.LastIndexByte(cut, ']'); i > closer {
		closer = i
	}
	if closer > closerFloor {
		return doc[:closer+1]
	}
	return cut
}
