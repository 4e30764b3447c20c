package server

import "net/http"

// NewMux wires the session API the external viewer talks to.
func NewMux(h *Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/sessions", h.handleCreateSession)
	mux.HandleFunc("GET /api/sessions/{id}", h.handleGetSession)
	mux.HandleFunc("POST /api/sessions/{id}/artifacts", h.handleUploadArtifacts)
	mux.HandleFunc("DELETE /api/sessions/{id}/artifacts/{artifactID}", h.handleRemoveArtifact)
	mux.HandleFunc("POST /api/sessions/{id}/messages", h.handleSubmit)
	mux.HandleFunc("POST /api/sessions/{id}/document", h.handleApplyEdit)
	mux.HandleFunc("POST /api/sessions/{id}/view", h.handleViewMode)
	mux.HandleFunc("POST /api/sessions/{id}/clear", h.handleClear)
	mux.HandleFunc("GET /api/sessions/{id}/document", h.handleDownload)
	mux.HandleFunc("GET /api/sessions/{id}/events", h.handleEvents)

	return cors(mux)
}
