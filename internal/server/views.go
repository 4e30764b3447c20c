package server

import (
	"time"

	"pixelform/internal/artifact"
	"pixelform/internal/session"
)

// Wire representations of session state. Image bytes never leave the
// server; only the displayable data-URI preview does.

type sessionView struct {
	ID           string         `json:"id"`
	Busy         bool           `json:"busy"`
	ViewMode     string         `json:"viewMode"`
	Conversation []entryView    `json:"conversation"`
	Pending      []artifactView `json:"pendingArtifacts"`
	Document     *documentView  `json:"document,omitempty"`
	EditedText   string         `json:"editedText,omitempty"`
}

type entryView struct {
	ID        string         `json:"id"`
	Role      string         `json:"role"`
	Text      string         `json:"text"`
	Artifacts []artifactView `json:"artifacts,omitempty"`
	Timestamp string         `json:"timestamp"`
}

type artifactView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Preview string `json:"preview"`
}

type documentView struct {
	RawText    string `json:"rawText"`
	IsDocument bool   `json:"isDocument"`
}

func toSessionView(id string, s session.State) sessionView {
	v := sessionView{
		ID:           id,
		Busy:         s.Busy,
		ViewMode:     string(s.ViewMode),
		Conversation: make([]entryView, 0, len(s.Conversation)),
		Pending:      make([]artifactView, 0, len(s.Pending)),
		EditedText:   s.EditedText,
	}
	for _, e := range s.Conversation {
		v.Conversation = append(v.Conversation, toEntryView(e))
	}
	for _, a := range s.Pending {
		v.Pending = append(v.Pending, toArtifactView(a))
	}
	if s.Document != nil {
		v.Document = &documentView{RawText: s.Document.RawText, IsDocument: s.Document.IsDocument}
	}
	return v
}

func toEntryView(e session.Entry) entryView {
	v := entryView{
		ID:        e.ID,
		Role:      string(e.Role),
		Text:      e.Text,
		Timestamp: e.Timestamp.Format(time.RFC3339),
	}
	for _, a := range e.Artifacts {
		v.Artifacts = append(v.Artifacts, toArtifactView(a))
	}
	return v
}

func toArtifactView(a artifact.Artifact) artifactView {
	v := artifactView{ID: a.ID, Name: a.Name, Kind: string(a.Kind)}
	switch a.Kind {
	case artifact.KindJSON:
		if a.JSON != nil {
			v.Preview = a.JSON.Preview
		}
	case artifact.KindImage:
		if a.Image != nil {
			v.Preview = a.Image.PreviewURI
		}
	}
	return v
}
