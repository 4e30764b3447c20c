package session

import "pixelform/internal/artifact"

// Event is the closed set of session mutations.
type Event interface{ isEvent() }

type ArtifactStaged struct{ Artifact artifact.Artifact }

type ArtifactRemoved struct{ ID string }

// SubmissionStarted appends the user's transcript entry, clears the
// staged artifacts, and raises the busy gate.
type SubmissionStarted struct{ Entry Entry }

// SubmissionSucceeded appends the assistant entry and, when the outcome
// classified as a document, replaces the current document and resets
// the editable copy and view mode.
type SubmissionSucceeded struct {
	Entry    Entry
	Document Document
}

// SubmissionFailed appends the failure message entry. The document is
// left untouched so the session stays usable.
type SubmissionFailed struct{ Entry Entry }

// DocumentEdited applies an edit-and-reapply from the editor: the
// edited text verbatim replaces the current document and the session
// re-enters preview mode.
type DocumentEdited struct{ Text string }

type ViewModeChanged struct{ Mode ViewMode }

type SessionCleared struct{}

func (ArtifactStaged) isEvent()      {}
func (ArtifactRemoved) isEvent()     {}
func (SubmissionStarted) isEvent()   {}
func (SubmissionSucceeded) isEvent() {}
func (SubmissionFailed) isEvent()    {}
func (DocumentEdited) isEvent()      {}
func (ViewModeChanged) isEvent()     {}
func (SessionCleared) isEvent()      {}

// Apply is the pure transition function. The input state is never
// mutated; slices are copied before growth.
func Apply(s State, ev Event) State {
	switch e := ev.(type) {
	case ArtifactStaged:
		s.Pending = append(copyArtifacts(s.Pending), e.Artifact)
	case ArtifactRemoved:
		kept := make([]artifact.Artifact, 0, len(s.Pending))
		for _, a := range s.Pending {
			if a.ID != e.ID {
				kept = append(kept, a)
			}
		}
		s.Pending = kept
	case SubmissionStarted:
		s.Conversation = append(copyEntries(s.Conversation), e.Entry)
		s.Pending = nil
		s.Busy = true
	case SubmissionSucceeded:
		s.Conversation = append(copyEntries(s.Conversation), e.Entry)
		s.Busy = false
		if e.Document.IsDocument {
			doc := e.Document
			s.Document = &doc
			s.EditedText = doc.RawText
			s.ViewMode = ViewPreview
		}
	case SubmissionFailed:
		s.Conversation = append(copyEntries(s.Conversation), e.Entry)
		s.Busy = false
	case DocumentEdited:
		s.EditedText = e.Text
		if s.Document != nil {
			s.Document = &Document{RawText: e.Text, IsDocument: s.Document.IsDocument}
			s.ViewMode = ViewPreview
		}
	case ViewModeChanged:
		s.ViewMode = e.Mode
	case SessionCleared:
		return NewState()
	}
	return s
}

func copyEntries(in []Entry) []Entry {
	out := make([]Entry, len(in))
	copy(out, in)
	return out
}

func copyArtifacts(in []artifact.Artifact) []artifact.Artifact {
	out := make([]artifact.Artifact, len(in))
	copy(out, in)
	return out
}
