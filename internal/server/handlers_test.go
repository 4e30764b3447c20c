package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pixelform/internal/export"
	"pixelform/internal/llm"
	"pixelform/internal/orchestrator"
	"pixelform/internal/session"
)

func newTestServer(t *testing.T, fake *llm.FakeClient) *httptest.Server {
	t.Helper()
	store, err := session.NewStore()
	if err != nil {
		t.Fatal(err)
	}
	var exporter *export.Store
	h := NewHandler(store, orchestrator.New(fake), exporter)
	srv := httptest.NewServer(NewMux(h))
	t.Cleanup(srv.Close)
	return srv
}

func createSession(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	resp, err := http.Post(srv.URL+"/api/sessions", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create session status = %d", resp.StatusCode)
	}
	var v struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatal(err)
	}
	if v.ID == "" {
		t.Fatalf("missing session id")
	}
	return v.ID
}

func uploadJSON(t *testing.T, srv *httptest.Server, id, name, content string) {
	t.Helper()
	uploadFile(t, srv, id, "json", name, content)
}

func uploadFile(t *testing.T, srv *httptest.Server, id, field, name, content string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, name)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	mw.Close()
	resp, err := http.Post(srv.URL+"/api/sessions/"+id+"/artifacts", mw.FormDataContentType(), &buf)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upload status = %d", resp.StatusCode)
	}
}

func submit(t *testing.T, srv *httptest.Server, id, text string) (*http.Response, sessionView) {
	t.Helper()
	body, _ := json.Marshal(map[string]string{"text": text})
	resp, err := http.Post(srv.URL+"/api/sessions/"+id+"/messages", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var v sessionView
	_ = json.NewDecoder(resp.Body).Decode(&v)
	return resp, v
}

func TestSubmit_DocumentFlow(t *testing.T) {
	fake := &llm.FakeClient{
		GenerateFn: func(_, prompt string) (string, error) {
			if !strings.Contains(prompt, `"name": "demo"`) {
				return "", fmt.Errorf("staged json missing from prompt")
			}
			return "<!DOCTYPE html><html><body>ok</body></html>", nil
		},
	}
	srv := newTestServer(t, fake)
	id := createSession(t, srv)
	uploadJSON(t, srv, id, "demo.json", `{"name":"demo"}`)

	resp, view := submit(t, srv, id, "render it")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("submit status = %d", resp.StatusCode)
	}
	if view.Document == nil || !view.Document.IsDocument {
		t.Fatalf("document missing from session view: %+v", view)
	}
	if view.Busy {
		t.Fatalf("busy not cleared after run")
	}
	if len(view.Pending) != 0 {
		t.Fatalf("staged artifacts not cleared by submit")
	}
	if len(view.Conversation) != 2 {
		t.Fatalf("conversation length = %d, want 2", len(view.Conversation))
	}
	if view.Conversation[1].Text != documentSuccessText {
		t.Fatalf("assistant entry = %q", view.Conversation[1].Text)
	}
	if fake.GenerateCalls != 1 {
		t.Fatalf("generation calls = %d", fake.GenerateCalls)
	}
}

func TestSubmit_EmptyInputIsGuidanceNotError(t *testing.T) {
	fake := &llm.FakeClient{}
	srv := newTestServer(t, fake)
	id := createSession(t, srv)

	resp, view := submit(t, srv, id, "   ")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("guidance must not be an http error: %d", resp.StatusCode)
	}
	if fake.GenerateCalls != 0 || fake.DescribeCalls != 0 {
		t.Fatalf("remote calls issued for empty submission")
	}
	if len(view.Conversation) != 2 || !strings.Contains(view.Conversation[1].Text, "valid message") {
		t.Fatalf("guidance reply missing: %+v", view.Conversation)
	}
}

func TestSubmit_StartWithoutImageIsValidationError(t *testing.T) {
	fake := &llm.FakeClient{}
	srv := newTestServer(t, fake)
	id := createSession(t, srv)
	uploadJSON(t, srv, id, "d.json", `{"a":1}`)

	resp, _ := submit(t, srv, id, "start")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if fake.GenerateCalls != 0 {
		t.Fatalf("validation failure must not reach the remote service")
	}

	// staged artifact survives the rejected submit
	got, err := http.Get(srv.URL + "/api/sessions/" + id)
	if err != nil {
		t.Fatal(err)
	}
	defer got.Body.Close()
	var view sessionView
	_ = json.NewDecoder(got.Body).Decode(&view)
	if len(view.Pending) != 1 {
		t.Fatalf("pending = %d, want 1", len(view.Pending))
	}
}

func TestSubmit_StartShortcutSubstitutesPrompt(t *testing.T) {
	fake := &llm.FakeClient{}
	srv := newTestServer(t, fake)
	id := createSession(t, srv)
	uploadJSON(t, srv, id, "d.json", `{"a":1}`)
	uploadFile(t, srv, id, "image", "s.png", "\x89PNG")

	resp, view := submit(t, srv, id, "START")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(fake.LastPrompt, "mailer only with inline css") {
		t.Fatalf("mailer instruction missing from effective prompt")
	}
	if view.Conversation[0].Text != session.StartedDisplayText {
		t.Fatalf("transcript shows %q instead of the placeholder", view.Conversation[0].Text)
	}
	if strings.Contains(view.Conversation[0].Text, "mailer") {
		t.Fatalf("substituted instruction leaked into the transcript")
	}
}

func TestUpload_PerFileErrors(t *testing.T) {
	srv := newTestServer(t, &llm.FakeClient{})
	id := createSession(t, srv)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	good, _ := mw.CreateFormFile("json", "good.json")
	good.Write([]byte(`{"ok":true}`))
	bad, _ := mw.CreateFormFile("json", "bad.json")
	bad.Write([]byte(`{broken`))
	mw.Close()

	resp, err := http.Post(srv.URL+"/api/sessions/"+id+"/artifacts", mw.FormDataContentType(), &buf)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var out struct {
		Results []uploadResult `json:"results"`
		Session sessionView    `json:"session"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	if len(out.Results) != 2 {
		t.Fatalf("results = %d", len(out.Results))
	}
	var failures int
	for _, r := range out.Results {
		if r.Error != "" {
			failures++
		}
	}
	if failures != 1 {
		t.Fatalf("failures = %d, want 1 (bad file must not abort the batch)", failures)
	}
	if len(out.Session.Pending) != 1 {
		t.Fatalf("pending = %d, want only the good file", len(out.Session.Pending))
	}
}

func TestApplyEditAndDownload(t *testing.T) {
	fake := &llm.FakeClient{
		GenerateFn: func(string, string) (string, error) {
			return "<html><body>v1</body></html>", nil
		},
	}
	srv := newTestServer(t, fake)
	id := createSession(t, srv)
	submit(t, srv, id, "make one")

	body, _ := json.Marshal(map[string]string{"text": "<html><body>v2</body></html>"})
	resp, err := http.Post(srv.URL+"/api/sessions/"+id+"/document", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()

	dl, err := http.Get(srv.URL + "/api/sessions/" + id + "/document")
	if err != nil {
		t.Fatal(err)
	}
	defer dl.Body.Close()
	if dl.StatusCode != http.StatusOK {
		t.Fatalf("download status = %d", dl.StatusCode)
	}
	if cd := dl.Header.Get("Content-Disposition"); !strings.Contains(cd, "generated-page-") {
		t.Fatalf("unexpected disposition %q", cd)
	}
	var got bytes.Buffer
	got.ReadFrom(dl.Body)
	if got.String() != "<html><body>v2</body></html>" {
		t.Fatalf("edited copy must take precedence, got %q", got.String())
	}
}

func TestDownload_NoDocumentIs404(t *testing.T) {
	srv := newTestServer(t, &llm.FakeClient{})
	id := createSession(t, srv)
	resp, err := http.Get(srv.URL + "/api/sessions/" + id + "/document")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestUnknownSession(t *testing.T) {
	srv := newTestServer(t, &llm.FakeClient{})
	resp, err := http.Get(srv.URL + "/api/sessions/nope")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestClear_ResetsSession(t *testing.T) {
	fake := &llm.FakeClient{}
	srv := newTestServer(t, fake)
	id := createSession(t, srv)
	uploadJSON(t, srv, id, "d.json", `{"a":1}`)

	resp, err := http.Post(srv.URL+"/api/sessions/"+id+"/clear", "application/json", nil)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var view sessionView
	_ = json.NewDecoder(resp.Body).Decode(&view)
	if len(view.Pending) != 0 || len(view.Conversation) != 0 || view.Document != nil {
		t.Fatalf("clear did not reset: %+v", view)
	}
}
