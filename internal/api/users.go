package api

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/evidenca/internal/metrics"
	"github.com/erazemk/evidenca/internal/model"
	"github.com/erazemk/evidenca/internal/service"
)

// UsersHandler handles user endpoints and the items nested under a user.
type UsersHandler struct {
	Users *service.Users
	Items *service.Items
}

type createUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// userResponse is a user together with the items they currently own.
type userResponse struct {
	*model.User
	Items []model.Item `json:"items"`
}

// Create handles POST /users/.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.Users.CreateUser(r.Context(), req.Email, req.Password)
	if err != nil {
		serviceError(w, r, err, "create user")
		return
	}

	metrics.RecordUserCreated()
	slog.Info("user created", "user_id", user.ID, "email", user.Email)
	jsonResponse(w, http.StatusOK, userResponse{User: user, Items: []model.Item{}})
}

// Get handles GET /users/{user_id}.
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "user_id")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	h.writeUser(w, r, id)
}

// Me handles GET /users/me.
func (h *UsersHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}
	h.writeUser(w, r, claims.UserID)
}

func (h *UsersHandler) writeUser(w http.ResponseWriter, r *http.Request, id int64) {
	user, err := h.Users.GetUserByID(r.Context(), id)
	if err != nil {
		serviceError(w, r, err, "get user")
		return
	}

	items, err := h.Items.ItemsByOwner(r.Context(), id)
	if err != nil {
		serviceError(w, r, err, "get user items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}

	jsonResponse(w, http.StatusOK, userResponse{User: user, Items: items})
}

// ListItems handles GET /users/{user_id}/items/.
func (h *UsersHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "user_id")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	items, err := h.Items.ItemsByOwner(r.Context(), id)
	if err != nil {
		serviceError(w, r, err, "list items")
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}

// CreateItem handles POST /users/{user_id}/items/.
func (h *UsersHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "user_id")
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Items.CreateItem(r.Context(), req.Title, req.Description, id)
	if err != nil {
		serviceError(w, r, err, "create item")
		return
	}

	metrics.RecordItemCreated()
	slog.Info("item created", "item_id", item.ID, "title", item.Title, "owner_id", item.OwnerID)
	jsonResponse(w, http.StatusOK, item)
}
