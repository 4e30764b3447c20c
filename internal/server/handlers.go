package server

import (
	"encoding/json"
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"pixelform/internal/artifact"
	"pixelform/internal/export"
	"pixelform/internal/orchestrator"
	"pixelform/internal/session"
)

// documentSuccessText is recorded in the transcript instead of the raw
// generated markup.
const documentSuccessText = "HTML code generated successfully ✓"

// Handler serves the session API. exporter may be nil; downloads then
// stream directly without publishing to object storage.
type Handler struct {
	store    *session.Store
	orch     *orchestrator.Orchestrator
	exporter *export.Store
}

func NewHandler(store *session.Store, orch *orchestrator.Orchestrator, exporter *export.Store) *Handler {
	return &Handler{store: store, orch: orch, exporter: exporter}
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	sess := h.store.Create()
	writeJSON(w, http.StatusCreated, toSessionView(sess.ID, sess.Snapshot()))
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, toSessionView(sess.ID, sess.Snapshot()))
}

type uploadResult struct {
	Name     string        `json:"name"`
	Artifact *artifactView `json:"artifact,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// handleUploadArtifacts stages every decodable file and reports
// per-file errors; one bad file does not abort the rest of the batch.
func (h *Handler) handleUploadArtifacts(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	if err := r.ParseMultipartForm(8 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	fields := []struct {
		name string
		kind artifact.Kind
	}{
		{"json", artifact.KindJSON},
		{"image", artifact.KindImage},
	}
	var results []uploadResult
	for _, field := range fields {
		for _, fh := range r.MultipartForm.File[field.name] {
			results = append(results, h.stageOne(sess, field.kind, fh))
		}
	}
	if len(results) == 0 {
		writeError(w, http.StatusBadRequest, `no files under "json" or "image" fields`)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"results": results,
		"session": toSessionView(sess.ID, sess.Snapshot()),
	})
}

func (h *Handler) stageOne(sess *session.Session, kind artifact.Kind, fh *multipart.FileHeader) uploadResult {
	f, err := fh.Open()
	if err != nil {
		re := &artifact.ReadError{Name: fh.Filename, Err: err}
		return uploadResult{Name: fh.Filename, Error: re.Error()}
	}
	defer f.Close()

	a, err := artifact.Normalize(fh.Filename, kind, fh.Header.Get("Content-Type"), fh.Size, f)
	if err != nil {
		return uploadResult{Name: fh.Filename, Error: err.Error()}
	}
	sess.Dispatch(session.ArtifactStaged{Artifact: a})
	v := toArtifactView(a)
	return uploadResult{Name: fh.Filename, Artifact: &v}
}

func (h *Handler) handleRemoveArtifact(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	id := strings.TrimSpace(r.PathValue("artifactID"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "artifact id is required")
		return
	}
	state := sess.Dispatch(session.ArtifactRemoved{ID: id})
	writeJSON(w, http.StatusOK, toSessionView(sess.ID, state))
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var in struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	staged := sess.Snapshot().Pending
	sub, err := session.ResolveSubmission(in.Text, staged)
	if err != nil {
		// validation failure: no transcript entry, staged files kept
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	userEntry := session.Entry{
		ID:        uuid.NewString(),
		Role:      session.RoleUser,
		Text:      sub.DisplayText,
		Artifacts: staged,
		Timestamp: time.Now(),
	}
	staged, err = sess.Begin(userEntry)
	if err != nil {
		if errors.Is(err, session.ErrBusy) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	out := h.orch.Generate(r.Context(), sub.EffectiveText, staged)
	assistant := session.Entry{
		ID:        uuid.NewString(),
		Role:      session.RoleAssistant,
		Timestamp: time.Now(),
	}
	var state session.State
	switch {
	case out.Err != nil:
		log.Printf("session %s: generation failed: %v", sess.ID, out.Err)
		assistant.Text = out.Text
		state = sess.Dispatch(session.SubmissionFailed{Entry: assistant})
	case out.IsDocument:
		assistant.Text = documentSuccessText
		state = sess.Dispatch(session.SubmissionSucceeded{
			Entry:    assistant,
			Document: session.Document{RawText: out.Text, IsDocument: true},
		})
	default:
		assistant.Text = out.Text
		state = sess.Dispatch(session.SubmissionSucceeded{
			Entry:    assistant,
			Document: session.Document{RawText: out.Text},
		})
	}
	writeJSON(w, http.StatusOK, toSessionView(sess.ID, state))
}

func (h *Handler) handleApplyEdit(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var in struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	state := sess.Dispatch(session.DocumentEdited{Text: in.Text})
	writeJSON(w, http.StatusOK, toSessionView(sess.ID, state))
}

func (h *Handler) handleViewMode(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var in struct {
		Mode string `json:"mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return
	}
	mode := session.ViewMode(in.Mode)
	if mode != session.ViewPreview && mode != session.ViewCode {
		writeError(w, http.StatusBadRequest, `mode must be "preview" or "code"`)
		return
	}
	state := sess.Dispatch(session.ViewModeChanged{Mode: mode})
	writeJSON(w, http.StatusOK, toSessionView(sess.ID, state))
}

func (h *Handler) handleClear(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	state := sess.Dispatch(session.SessionCleared{})
	writeJSON(w, http.StatusOK, toSessionView(sess.ID, state))
}

func (h *Handler) handleDownload(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	html := sess.Snapshot().ActiveDocumentText()
	if html == "" {
		writeError(w, http.StatusNotFound, "no generated document")
		return
	}
	if h.exporter != nil {
		key, err := h.exporter.PublishDocument(r.Context(), sess.ID, html)
		if err != nil {
			log.Printf("session %s: export failed: %v", sess.ID, err)
		} else {
			w.Header().Set("X-Export-Key", key)
		}
	}
	name := export.DocumentFileName(time.Now())
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+name+`"`)
	_, _ = w.Write([]byte(html))
}

func (h *Handler) session(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "session id is required")
		return nil, false
	}
	sess, ok := h.store.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown session")
		return nil, false
	}
	return sess, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
