package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/portfolio/backend/internal/model"
	"github.com/portfolio/backend/internal/service"
)

var validate = validator.New()

// MessageHandler handles contact-form submission and the admin inbox.
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a MessageHandler with the given service.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// Submit handles POST /api/messages.
// All four fields are required and email must have a valid shape.
func (h *MessageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input model.MessageInsert
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid message data"})
		return
	}
	if err := validate.Struct(input); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid message data"})
		return
	}

	msg, err := h.messageService.Submit(r.Context(), &input)
	if err != nil {
		slog.Error("message submit failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to save message"})
		return
	}

	writeJSON(w, http.StatusOK, msg)
}

// List handles GET /api/messages (session required; gated by auth.RequireAuth).
// Returns all messages newest first.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messageService.List(r.Context())
	if err != nil {
		slog.Error("message list failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to fetch messages"})
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.Message{}
	}
	writeJSON(w, http.StatusOK, messages)
}

// Delete handles DELETE /api/messages/{id} (session required).
// Responds 404 when no message with the id exists.
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	deleted, err := h.messageService.Delete(r.Context(), id)
	if err != nil {
		slog.Error("message delete failed", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to delete message"})
		return
	}
	if !deleted {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Message not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
