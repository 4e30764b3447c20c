package session

import (
	"errors"
	"strings"

	"pixelform/internal/artifact"
	"pixelform/internal/prompt"
)

// startKeyword triggers the canned email-safe generation instruction.
const startKeyword = "start"

// DefaultDisplayText stands in for the transcript when files are
// submitted without any typed text.
const DefaultDisplayText = "Analyze the uploaded files"

// StartedDisplayText is what the transcript records for a shortcut
// submission instead of the substituted instruction.
const StartedDisplayText = "Code generation started, please wait..."

// ErrStartNeedsBoth rejects the shortcut when the required artifact
// pairing is not staged.
var ErrStartNeedsBoth = errors.New(`please upload both a JSON file and an image before using the "start" command`)

// Submission is the resolved form of one user submit action.
type Submission struct {
	// EffectiveText is what the orchestrator receives.
	EffectiveText string
	// DisplayText is what the transcript records.
	DisplayText string
}

// ResolveSubmission handles the reserved "start" shortcut
// (case-insensitive, trimmed): it requires one artifact of each kind
// staged and substitutes the fixed mailer instruction for the prompt,
// while the transcript shows only a generic placeholder.
func ResolveSubmission(userText string, staged []artifact.Artifact) (Submission, error) {
	trimmed := strings.TrimSpace(userText)
	if !strings.EqualFold(trimmed, startKeyword) {
		display := trimmed
		if display == "" {
			display = DefaultDisplayText
		}
		return Submission{EffectiveText: trimmed, DisplayText: display}, nil
	}

	hasJSON, hasImage := false, false
	for _, a := range staged {
		switch a.Kind {
		case artifact.KindJSON:
			hasJSON = true
		case artifact.KindImage:
			hasImage = true
		}
	}
	if !hasJSON || !hasImage {
		return Submission{}, ErrStartNeedsBoth
	}
	return Submission{
		EffectiveText: prompt.MailerInstruction,
		DisplayText:   StartedDisplayText,
	}, nil
}
