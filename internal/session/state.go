// Package session owns the per-session conversation log, staged
// artifacts, generated document, and view mode. All mutation flows
// through a small event set applied by a pure reducer, so transitions
// are testable without any rendering surface.
package session

import (
	"time"

	"pixelform/internal/artifact"
)

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ViewMode string

const (
	ViewPreview ViewMode = "preview"
	ViewCode    ViewMode = "code"
)

// Entry is one transcript line. Immutable once appended.
type Entry struct {
	ID        string
	Role      Role
	Text      string
	Artifacts []artifact.Artifact
	Timestamp time.Time
}

// Document is the latest generated artifact. Each successful
// document-classified generation supersedes the previous one wholesale.
type Document struct {
	RawText    string
	IsDocument bool
}

// State is the full per-session record.
type State struct {
	Conversation []Entry
	Pending      []artifact.Artifact
	Document     *Document
	EditedText   string
	ViewMode     ViewMode
	Busy         bool
}

// NewState returns the empty session-start state.
func NewState() State {
	return State{ViewMode: ViewPreview}
}

// ActiveDocumentText returns the text the download collaborator should
// receive: the edited copy when present, else the generated original.
func (s State) ActiveDocumentText() string {
	if s.EditedText != "" {
		return s.EditedText
	}
	if s.Document != nil {
		return s.Document.RawText
	}
	return ""
}
