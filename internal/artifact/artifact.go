package artifact

import (
	"github.com/google/uuid"
)

// Kind discriminates the closed set of artifact variants.
type Kind string

const (
	KindJSON  Kind = "json"
	KindImage Kind = "image"
)

// MaxImageBytes bounds image uploads. Files over the bound are rejected
// before any decode work happens; a file at exactly the bound is accepted.
const MaxImageBytes = 4 << 20

// previewLimit caps the human-readable JSON excerpt.
const previewLimit = 300

// Artifact is one normalized uploaded file. Exactly one of JSON or
// Image is non-nil, matching Kind. Consumers must switch on Kind and
// handle both variants.
type Artifact struct {
	ID    string
	Name  string
	Kind  Kind
	JSON  *JSONData
	Image *ImageData
}

// JSONData holds a decoded structured-data upload.
type JSONData struct {
	// Value is the decoded document.
	Value any
	// Full is the canonical pretty-printed re-serialization of Value.
	Full string
	// Preview is the first 300 characters of Full plus an ellipsis marker.
	Preview string
}

// ImageData holds a decoded image upload. Data is never mutated after
// construction.
type ImageData struct {
	MIMEType   string
	Data       []byte
	PreviewURI string
}

func newID() string { return uuid.NewString() }
