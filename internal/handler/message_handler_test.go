package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/portfolio/backend/internal/model"
)

// ---------------------------------------------------------------------------
// Mock MessageService
// ---------------------------------------------------------------------------

type mockMessageService struct {
	submitFunc func(ctx context.Context, input *model.MessageInsert) (*model.Message, error)
	listFunc   func(ctx context.Context) ([]*model.Message, error)
	deleteFunc func(ctx context.Context, id string) (bool, error)
}

func (m *mockMessageService) Submit(ctx context.Context, input *model.MessageInsert) (*model.Message, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, input)
	}
	return &model.Message{
		ID:        "generated-id",
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (m *mockMessageService) List(ctx context.Context) ([]*model.Message, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockMessageService) Delete(ctx context.Context, id string) (bool, error) {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return false, nil
}

// ---------------------------------------------------------------------------
// POST /api/messages tests
// ---------------------------------------------------------------------------

func TestMessageHandler_Submit_Success(t *testing.T) {
	h := NewMessageHandler(&mockMessageService{})

	body := `{"name":"Ana","email":"ana@x.com","subject":"Hi","message":"Hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}

	var resp model.Message
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID == "" {
		t.Error("expected assigned id in response")
	}
	if resp.CreatedAt.IsZero() {
		t.Error("expected assigned createdAt in response")
	}
	if resp.Name != "Ana" || resp.Email != "ana@x.com" || resp.Subject != "Hi" || resp.Message != "Hello" {
		t.Errorf("input fields not echoed unchanged: %+v", resp)
	}
}

func TestMessageHandler_Submit_IgnoresClientSuppliedID(t *testing.T) {
	var captured *model.MessageInsert
	mock := &mockMessageService{
		submitFunc: func(ctx context.Context, input *model.MessageInsert) (*model.Message, error) {
			captured = input
			return &model.Message{ID: "server-id", CreatedAt: time.Now()}, nil
		},
	}
	h := NewMessageHandler(mock)

	// id/createdAt in the payload are not part of MessageInsert and are dropped.
	body := `{"id":"spoofed","createdAt":"1999-01-01T00:00:00Z","name":"Ana","email":"ana@x.com","subject":"Hi","message":"Hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured == nil {
		t.Fatal("expected Submit to reach the service")
	}
	if captured.Name != "Ana" {
		t.Errorf("expected name carried through, got %q", captured.Name)
	}
}

func TestMessageHandler_Submit_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"a@x.com","subject":"s","message":"m"}`},
		{"missing email", `{"name":"n","subject":"s","message":"m"}`},
		{"missing subject", `{"name":"n","email":"a@x.com","message":"m"}`},
		{"missing message", `{"name":"n","email":"a@x.com","subject":"s"}`},
		{"empty name", `{"name":"","email":"a@x.com","subject":"s","message":"m"}`},
		{"empty body", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			mock := &mockMessageService{
				submitFunc: func(ctx context.Context, input *model.MessageInsert) (*model.Message, error) {
					called = true
					return nil, nil
				},
			}
			h := NewMessageHandler(mock)

			req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Submit(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", rec.Code)
			}
			if called {
				t.Error("service must not be invoked on validation failure")
			}
		})
	}
}

func TestMessageHandler_Submit_InvalidEmailShape(t *testing.T) {
	called := false
	mock := &mockMessageService{
		submitFunc: func(ctx context.Context, input *model.MessageInsert) (*model.Message, error) {
			called = true
			return nil, nil
		},
	}
	h := NewMessageHandler(mock)

	body := `{"name":"Ana","email":"not-an-email","subject":"Hi","message":"Hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid email shape, got %d", rec.Code)
	}
	if called {
		t.Error("no record must be stored for an invalid email")
	}
}

func TestMessageHandler_Submit_InvalidJSON(t *testing.T) {
	h := NewMessageHandler(&mockMessageService{})

	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader("{bad json"))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid JSON, got %d", rec.Code)
	}
}

func TestMessageHandler_Submit_ServiceError(t *testing.T) {
	mock := &mockMessageService{
		submitFunc: func(ctx context.Context, input *model.MessageInsert) (*model.Message, error) {
			return nil, errors.New("db connection lost")
		},
	}
	h := NewMessageHandler(mock)

	body := `{"name":"Ana","email":"ana@x.com","subject":"Hi","message":"Hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 on store failure, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// GET /api/messages tests
// ---------------------------------------------------------------------------

func TestMessageHandler_List_Success(t *testing.T) {
	now := time.Now()
	mock := &mockMessageService{
		listFunc: func(ctx context.Context) ([]*model.Message, error) {
			return []*model.Message{
				{ID: "2", Subject: "newer", CreatedAt: now},
				{ID: "1", Subject: "older", CreatedAt: now.Add(-time.Hour)},
			}, nil
		},
	}
	h := NewMessageHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []*model.Message
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 2 || resp[0].ID != "2" {
		t.Errorf("expected newest-first array, got %+v", resp)
	}
}

func TestMessageHandler_List_EmptyIsArrayNotNull(t *testing.T) {
	h := NewMessageHandler(&mockMessageService{})

	req := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected [] for empty inbox, got %s", body)
	}
}

func TestMessageHandler_List_ServiceError(t *testing.T) {
	mock := &mockMessageService{
		listFunc: func(ctx context.Context) ([]*model.Message, error) {
			return nil, errors.New("database error")
		},
	}
	h := NewMessageHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 on service error, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// DELETE /api/messages/{id} tests
// ---------------------------------------------------------------------------

func deleteRequest(id string) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/api/messages/"+id, nil)
	req.SetPathValue("id", id)
	return req
}

func TestMessageHandler_Delete_Success(t *testing.T) {
	var capturedID string
	mock := &mockMessageService{
		deleteFunc: func(ctx context.Context, id string) (bool, error) {
			capturedID = id
			return true, nil
		},
	}
	h := NewMessageHandler(mock)

	rec := httptest.NewRecorder()
	h.Delete(rec, deleteRequest("msg-1"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if capturedID != "msg-1" {
		t.Errorf("expected id forwarded to service, got %q", capturedID)
	}

	var resp map[string]bool
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if !resp["success"] {
		t.Error("expected success flag in response")
	}
}

func TestMessageHandler_Delete_NotFound(t *testing.T) {
	h := NewMessageHandler(&mockMessageService{})

	rec := httptest.NewRecorder()
	h.Delete(rec, deleteRequest("no-such-id"))

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for absent id, got %d", rec.Code)
	}
}

func TestMessageHandler_Delete_ServiceError(t *testing.T) {
	mock := &mockMessageService{
		deleteFunc: func(ctx context.Context, id string) (bool, error) {
			return false, errors.New("database error")
		},
	}
	h := NewMessageHandler(mock)

	rec := httptest.NewRecorder()
	h.Delete(rec, deleteRequest("msg-1"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 on service error, got %d", rec.Code)
	}
}
