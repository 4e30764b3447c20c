package orchestrator

import (
	"fmt"

	"pixelform/internal/llm"
)

// GuidanceMessage is returned when a submission carries neither text
// nor artifacts. It is guidance, not a failure.
const GuidanceMessage = "Please enter a valid message or upload a file."

// FailureMessage converts a remote-call error into the one
// human-readable chat message for its category. Nothing here retries;
// the user re-submitting is the retry.
func FailureMessage(err error) string {
	kind, detail := llm.Classify(err)
	switch kind {
	case llm.FailureMissingCredential:
		return "Error: API key not configured. Please add your Gemini API key to the .env file as GEMINI_API_KEY."
	case llm.FailureAuth:
		return "Error: Invalid API key. Please check your Gemini API key."
	case llm.FailureRateLimit:
		return "Error: Rate limit exceeded. Please try again in a moment."
	case llm.FailureBadRequest:
		if detail == "" {
			detail = "Bad request"
		}
		return fmt.Sprintf("Error: %s. Try with smaller files or simpler prompts.", detail)
	case llm.FailurePayloadTooLarge:
		return "Error: Files too large. Please use smaller JSON files (under 50KB) and images (under 2MB)."
	case llm.FailureServer:
		return "Error: Server error. Please try again in a moment."
	case llm.FailureNetwork:
		return "Error: No internet connection."
	case llm.FailureResponseShape:
		return "Sorry, I received an unexpected response format."
	}
	return "Error generating HTML. Please try with smaller files or contact support."
}
