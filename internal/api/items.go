package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/evidenca/internal/metrics"
	"github.com/erazemk/evidenca/internal/model"
	"github.com/erazemk/evidenca/internal/service"
)

// ItemsHandler handles item lookup, status and ownership endpoints.
type ItemsHandler struct {
	Items     *service.Items
	Ownership *service.Ownership
}

type changeStatusRequest struct {
	Status model.ItemStatus `json:"status"`
}

type reassignRequest struct {
	ID int64 `json:"id"`
}

// List handles GET /items/?status=.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	status := model.ItemStatus(r.URL.Query().Get("status"))
	items, err := h.Items.ListItems(r.Context(), status)
	if err != nil {
		serviceError(w, r, err, "list items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// Get handles GET /items/{item_id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "item_id")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := h.Items.GetItemByID(r.Context(), id)
	if err != nil {
		serviceError(w, r, err, "get item")
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// ChangeStatus handles PATCH /items/{item_id}/.
func (h *ItemsHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "item_id")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req changeStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Ownership.ChangeItemStatus(r.Context(), id, req.Status)
	if err != nil {
		serviceError(w, r, err, "change item status")
		return
	}

	metrics.RecordStatusChange(string(item.Status))
	slog.Info("item status changed", "item_id", item.ID, "status", item.Status)
	jsonResponse(w, http.StatusOK, item)
}

// Reassign handles POST /reassign_item/{item_id}/.
func (h *ItemsHandler) Reassign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "item_id")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req reassignRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ID <= 0 {
		jsonError(w, http.StatusBadRequest, "id of the new owner required")
		return
	}

	result, err := h.Ownership.ReassignItem(r.Context(), id, req.ID)
	if err != nil {
		serviceError(w, r, err, "reassign item")
		return
	}

	metrics.RecordReassignment()
	slog.Info("item reassigned", "item_id", result.Item.ID,
		"from", result.OldOwnerID, "to", result.Item.OwnerID)
	jsonResponse(w, http.StatusOK, result.Item)
}

// GetHistory handles GET /items/{item_id}/history.
func (h *ItemsHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "item_id")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	history, err := h.Ownership.History(r.Context(), id)
	if err != nil {
		serviceError(w, r, err, "get item history")
		return
	}
	if history == nil {
		history = []model.ItemHistory{}
	}
	jsonResponse(w, http.StatusOK, history)
}
