package api

import (
	"net/http"
	"strings"

	"github.com/mkovacic/najdeno/internal/store"
)

type addResponseRequest struct {
	Message      string `json:"message"`
	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail"`
}

// AddResponse handles POST /api/items/{id}/responses.
func (h *ItemsHandler) AddResponse(w http.ResponseWriter, r *http.Request) {
	item, ok := h.fetchItem(w, r)
	if !ok {
		return
	}

	var req addResponseRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		jsonError(w, http.StatusBadRequest, "Message is required")
		return
	}

	resp, err := store.CreateResponse(r.Context(), h.DB, item.ID, CallerID(r.Context()),
		req.Message, req.ContactPhone, req.ContactEmail)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to add response")
		return
	}

	jsonData(w, http.StatusCreated, "Response added successfully", map[string]int64{
		"responseId": resp.ID,
	})
}

// ListItemResponses handles GET /api/items/{id}/responses.
func (h *ItemsHandler) ListItemResponses(w http.ResponseWriter, r *http.Request) {
	item, ok := h.fetchItem(w, r)
	if !ok {
		return
	}

	responses, err := store.ListResponses(r.Context(), h.DB, item.ID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get responses")
		return
	}
	jsonList(w, "Responses retrieved successfully", responses)
}
