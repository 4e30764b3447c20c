// Package orchestrator sequences one generation run: per-image vision
// analysis, prompt composition, the single generation call, and
// response sanitization/classification. Errors never escape Generate;
// every failure becomes a descriptive outcome.
package orchestrator

import (
	"context"
	"fmt"
	"log"
	"strings"

	"pixelform/internal/artifact"
	"pixelform/internal/llm"
	"pixelform/internal/prompt"
)

// Outcome is the terminal result of one run.
type Outcome struct {
	// Text is the generated document, the conversational reply, or the
	// guidance/failure message.
	Text string
	// IsDocument is true iff Text classified as a complete markup
	// document after sanitization.
	IsDocument bool
	// Err carries the underlying remote error when the run failed; nil
	// for documents, conversational replies, and guidance.
	Err error
}

type Orchestrator struct {
	// client may be nil when the credential is absent; runs then fail
	// with the configuration message before any network attempt.
	client llm.Client
}

func New(client llm.Client) *Orchestrator {
	return &Orchestrator{client: client}
}

// Generate executes one run over the staged artifacts. Image artifacts
// are described sequentially in input order; a per-image failure is
// degraded into placeholder text so the run still reaches the
// generation call.
func (o *Orchestrator) Generate(ctx context.Context, userText string, artifacts []artifact.Artifact) Outcome {
	userText = strings.TrimSpace(userText)
	jsonDocs, images := partition(artifacts)
	if userText == "" && len(artifacts) == 0 {
		return Outcome{Text: GuidanceMessage}
	}
	if o.client == nil {
		return Outcome{Text: FailureMessage(llm.ErrMissingAPIKey), Err: llm.ErrMissingAPIKey}
	}

	descriptions := make([]prompt.ImageDescription, 0, len(images))
	for _, img := range images {
		text, err := o.client.DescribeImage(ctx, prompt.VisionInstruction, img.Image.MIMEType, img.Image.Data)
		if err != nil {
			log.Printf("image analysis failed for %s: %v", img.Name, err)
			text = fmt.Sprintf("Could not analyze image: %v", err)
		}
		descriptions = append(descriptions, prompt.ImageDescription{
			SourceFileName: img.Name,
			Text:           text,
		})
	}

	composite := prompt.Compose(userText, jsonDocs, descriptions)
	log.Printf("generation request: %d json, %d images, %d prompt bytes", len(jsonDocs), len(images), len(composite))

	raw, err := o.client.GenerateDocument(ctx, prompt.SystemInstruction, composite)
	if err != nil {
		return Outcome{Text: FailureMessage(err), Err: err}
	}

	cleaned := Sanitize(raw)
	return Outcome{Text: cleaned, IsDocument: IsDocument(cleaned)}
}

// partition splits artifacts into serialized structured-data documents
// and image artifacts, preserving input order within each subset.
func partition(artifacts []artifact.Artifact) ([]string, []artifact.Artifact) {
	var jsonDocs []string
	var images []artifact.Artifact
	for _, a := range artifacts {
		switch a.Kind {
		case artifact.KindJSON:
			if a.JSON != nil {
				jsonDocs = append(jsonDocs, a.JSON.Full)
			}
		case artifact.KindImage:
			if a.Image != nil {
				images = append(images, a)
			}
		}
	}
	return jsonDocs, images
}
