package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mkovacic/najdeno/internal/imaging"
	"github.com/mkovacic/najdeno/internal/model"
	"github.com/mkovacic/najdeno/internal/store"
)

// maxImageUpload caps item photo uploads. The limit is enforced server-side;
// clients cannot bypass it.
const maxImageUpload = 5 << 20

// ItemsHandler handles item report endpoints.
type ItemsHandler struct {
	DB *sql.DB
}

type createItemRequest struct {
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	ItemStatus    string     `json:"itemStatus"`
	LocationFound string     `json:"locationFound"`
	LocationLost  string     `json:"locationLost"`
	DateLost      *time.Time `json:"dateLost"`
	DateFound     *time.Time `json:"dateFound"`
	RewardAmount  *float64   `json:"rewardAmount"`
}

type updateItemRequest struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	Category      *string  `json:"category"`
	ItemStatus    *string  `json:"itemStatus"`
	LocationFound *string  `json:"locationFound"`
	LocationLost  *string  `json:"locationLost"`
	RewardAmount  *float64 `json:"rewardAmount"`
}

// itemWithResponses is the detail payload: item fields flattened alongside
// the nested responses list.
type itemWithResponses struct {
	*model.Item
	Responses []model.Response `json:"responses"`
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if errs := validateCreateItem(req); len(errs) > 0 {
		jsonValidationError(w, errs)
		return
	}

	item, err := store.CreateItem(r.Context(), h.DB, &model.Item{
		UserID:        CallerID(r.Context()),
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Status:        req.ItemStatus,
		LocationFound: req.LocationFound,
		LocationLost:  req.LocationLost,
		DateLost:      req.DateLost,
		DateFound:     req.DateFound,
		RewardAmount:  req.RewardAmount,
	})
	if err != nil {
		slog.Error("failed to create item", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to create item")
		return
	}

	jsonData(w, http.StatusCreated, "Item posted successfully", item)
}

// List handles GET /api/items with optional status, category and search
// query parameters. Unknown status values are ignored rather than rejected.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filters := store.ItemFilters{
		Category: q.Get("category"),
		Search:   q.Get("search"),
	}
	if status := q.Get("status"); model.ValidStatus(status) {
		filters.Status = status
	}

	items, err := store.ListItems(r.Context(), h.DB, filters)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	jsonList(w, "Items retrieved successfully", items)
}

// Search handles GET /api/items/search?query=.
func (h *ItemsHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if utf8.RuneCountInString(query) < model.MinSearchLength {
		jsonError(w, http.StatusBadRequest, "Search query must be at least 2 characters")
		return
	}

	items, err := store.SearchItems(r.Context(), h.DB, query)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to search items")
		return
	}
	jsonList(w, "Search results", items)
}

// ListMine handles GET /api/items/user/items.
func (h *ItemsHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	items, err := store.ListUserItems(r.Context(), h.DB, CallerID(r.Context()))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	jsonList(w, "User items retrieved successfully", items)
}

// ListByCategory handles GET /api/items/category/{category}.
func (h *ItemsHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	if category == "" {
		jsonError(w, http.StatusBadRequest, "Category is required")
		return
	}

	items, err := store.ListItemsByCategory(r.Context(), h.DB, category)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	jsonList(w, "Items retrieved by category", items)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, ok := h.fetchItem(w, r)
	if !ok {
		return
	}

	responses, err := store.ListResponses(r.Context(), h.DB, item.ID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get responses")
		return
	}
	if responses == nil {
		responses = []model.Response{}
	}

	jsonData(w, http.StatusOK, "Item retrieved successfully", itemWithResponses{
		Item:      item,
		Responses: responses,
	})
}

// Update handles PUT /api/items/{id}. Absent fields keep their prior values.
func (h *ItemsHandler) Update(w http.ResponseWriter, r *http.Request) {
	item, ok := h.fetchOwnedItem(w, r, "Not authorized to update this item")
	if !ok {
		return
	}

	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.ItemStatus != nil && !model.ValidStatus(*req.ItemStatus) {
		jsonError(w, http.StatusBadRequest, "Item status must be lost or found")
		return
	}

	err := store.UpdateItem(r.Context(), h.DB, item.ID, store.ItemUpdate{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Status:        req.ItemStatus,
		LocationFound: req.LocationFound,
		LocationLost:  req.LocationLost,
		RewardAmount:  req.RewardAmount,
	})
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update item")
		return
	}

	updated, err := store.GetItem(r.Context(), h.DB, item.ID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	jsonData(w, http.StatusOK, "Item updated successfully", updated)
}

// Resolve handles PUT /api/items/{id}/resolve.
func (h *ItemsHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	item, ok := h.fetchOwnedItem(w, r, "Not authorized to update this item")
	if !ok {
		return
	}

	if err := store.ResolveItem(r.Context(), h.DB, item.ID); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to resolve item")
		return
	}

	jsonData(w, http.StatusOK, "Item marked as resolved", nil)
}

// Delete handles DELETE /api/items/{id}.
func (h *ItemsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	item, ok := h.fetchOwnedItem(w, r, "Not authorized to delete this item")
	if !ok {
		return
	}

	if err := store.DeleteItem(r.Context(), h.DB, item.ID); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}

	jsonData(w, http.StatusOK, "Item deleted successfully", nil)
}

// UploadImage handles PUT /api/items/{id}/image. The photo is validated by
// sniffing bytes, downscaled and re-encoded before storage.
func (h *ItemsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	item, ok := h.fetchOwnedItem(w, r, "Not authorized to update this item")
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageUpload)

	if err := r.ParseMultipartForm(maxImageUpload); err != nil {
		jsonError(w, http.StatusBadRequest, "file too large or invalid multipart form")
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "image file required")
		return
	}
	defer file.Close()

	data, mime, err := imaging.Process(file)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := store.SetItemImage(r.Context(), h.DB, item.ID, data, mime); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to save image")
		return
	}

	jsonData(w, http.StatusOK, "Image uploaded", nil)
}

// GetSubpath handles the two-segment GET paths under /api/items/ that the
// mux cannot register as separate patterns: category/{category}, {id}/image
// and {id}/responses. Single-segment paths never reach it; their exact
// patterns take precedence.
func (h *ItemsHandler) GetSubpath(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/items/"), "/")
	parts := strings.Split(rest, "/")
	if len(parts) == 2 {
		switch {
		case parts[0] == "category":
			r.SetPathValue("category", parts[1])
			h.ListByCategory(w, r)
			return
		case parts[1] == "image":
			r.SetPathValue("id", parts[0])
			h.GetImage(w, r)
			return
		case parts[1] == "responses":
			r.SetPathValue("id", parts[0])
			h.ListItemResponses(w, r)
			return
		}
	}
	jsonError(w, http.StatusNotFound, "Endpoint not found")
}

// GetImage handles GET /api/items/{id}/image.
func (h *ItemsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	data, mime, err := store.GetItemImage(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get image")
		return
	}
	if data == nil {
		jsonError(w, http.StatusNotFound, "no image")
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write image response", "error", err)
	}
}

// fetchItem parses the id path value and loads the item, writing the error
// response itself when the id is malformed or the item is missing.
func (h *ItemsHandler) fetchItem(w http.ResponseWriter, r *http.Request) (*model.Item, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return nil, false
	}

	item, err := store.GetItem(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return nil, false
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "Item not found")
		return nil, false
	}
	return item, true
}

// fetchOwnedItem is fetchItem plus the uniform ownership check.
func (h *ItemsHandler) fetchOwnedItem(w http.ResponseWriter, r *http.Request, denyMessage string) (*model.Item, bool) {
	item, ok := h.fetchItem(w, r)
	if !ok {
		return nil, false
	}
	if !model.IsOwner(item.UserID, CallerID(r.Context())) {
		jsonError(w, http.StatusForbidden, denyMessage)
		return nil, false
	}
	return item, true
}
