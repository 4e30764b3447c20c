// Package llm wraps the remote generation capability. The Client
// interface covers exactly the two calls the orchestration pipeline
// makes: one vision analysis per reference image and one document
// generation per run.
package llm

import "context"

type Client interface {
	Name() string
	// DescribeImage sends the instruction text plus the image bytes and
	// returns the model's textual design description.
	DescribeImage(ctx context.Context, instruction, mimeType string, data []byte) (string, error)
	// GenerateDocument sends the composite prompt under the given system
	// instruction and returns the first candidate's text.
	GenerateDocument(ctx context.Context, systemInstruction, prompt string) (string, error)
	Close() error
}
