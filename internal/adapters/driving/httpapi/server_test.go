package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandipbaste/My-Portfolio/internal/core/domain"
)

// stubAssistant echoes a canned envelope.
type stubAssistant struct {
	lastReq domain.AskRequest
}

func (s *stubAssistant) Answer(_ context.Context, req domain.AskRequest) domain.Envelope {
	s.lastReq = req
	return domain.Envelope{
		Response:  "canned answer",
		SessionID: "sess-1",
		Sources:   []string{"profile_data"},
	}
}

// stubContact records submissions and can fail on demand.
type stubContact struct {
	submitted []domain.ContactMessage
	err       error
}

func (s *stubContact) Submit(_ context.Context, msg domain.ContactMessage) error {
	if s.err != nil {
		return s.err
	}
	s.submitted = append(s.submitted, msg)
	return nil
}

func newTestServer(t *testing.T, assistant *stubAssistant, contact *stubContact) *Server {
	t.Helper()
	srv, err := NewServer(&Ports{
		Assistant: assistant,
		Contact:   contact,
		Mode:      "rag",
		Stale:     func() bool { return false },
	}, nil)
	require.NoError(t, err)
	return srv
}

func postJSON(t *testing.T, srv *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestChatEndpoint(t *testing.T) {
	assistant := &stubAssistant{}
	srv := newTestServer(t, assistant, &stubContact{})

	rec := postJSON(t, srv, "/api/chat", map[string]any{
		"message":    "what are your skills?",
		"session_id": "sess-1",
		"voice":      true,
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var envelope domain.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "canned answer", envelope.Response)
	assert.Equal(t, "sess-1", envelope.SessionID)

	assert.Equal(t, "what are your skills?", assistant.lastReq.Message)
	assert.True(t, assistant.lastReq.Voice)
}

func TestChatEndpointRequiresMessage(t *testing.T) {
	srv := newTestServer(t, &stubAssistant{}, &stubContact{})

	rec := postJSON(t, srv, "/api/chat", map[string]any{"session_id": "x"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatEndpointRejectsMalformedJSON(t *testing.T) {
	srv := newTestServer(t, &stubAssistant{}, &stubContact{})

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactEndpoint(t *testing.T) {
	contact := &stubContact{}
	srv := newTestServer(t, &stubAssistant{}, contact)

	rec := postJSON(t, srv, "/api/contact", map[string]any{
		"name":    "Jordan",
		"email":   "jordan@example.com",
		"message": "hello",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, contact.submitted, 1)
	assert.Equal(t, "jordan@example.com", contact.submitted[0].Email)
}

func TestContactEndpointValidation(t *testing.T) {
	srv := newTestServer(t, &stubAssistant{}, &stubContact{})

	rec := postJSON(t, srv, "/api/contact", map[string]any{"name": "Jordan"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactEndpointInvalidInputIsBadRequest(t *testing.T) {
	contact := &stubContact{err: domain.ErrInvalidInput}
	srv := newTestServer(t, &stubAssistant{}, contact)

	rec := postJSON(t, srv, "/api/contact", map[string]any{
		"name": "A", "email": "bad", "message": "hi",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactEndpointStorageFailure(t *testing.T) {
	contact := &stubContact{err: assert.AnError}
	srv := newTestServer(t, &stubAssistant{}, contact)

	rec := postJSON(t, srv, "/api/contact", map[string]any{
		"name": "A", "email": "a@b.com", "message": "hi",
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, &stubAssistant{}, &stubContact{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "rag", body["mode"])
	assert.Equal(t, false, body["corpus_stale"])
}

func TestNewServerRequiresServices(t *testing.T) {
	_, err := NewServer(&Ports{}, nil)
	assert.Error(t, err)

	_, err = NewServer(nil, nil)
	assert.Error(t, err)
}
