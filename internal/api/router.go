package api

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/erazemk/evidenca/internal/auth"
	"github.com/erazemk/evidenca/internal/metrics"
	"github.com/erazemk/evidenca/internal/service"
)

// Options tune the router. The zero value uses bcrypt.DefaultCost and no
// rate limiting.
type Options struct {
	Hasher  service.PasswordHasher
	Limiter *RateLimiter
}

// NewRouter creates the API router with all endpoints registered and the
// request id, logging, rate limiting and metrics middleware applied.
func NewRouter(database *sqlx.DB, jwtSecret string, opts Options) http.Handler {
	hasher := opts.Hasher
	if hasher == nil {
		hasher = auth.NewBcryptHasher()
	}

	users := service.NewUsers(database, hasher)
	items := service.NewItems(database)
	ownership := service.NewOwnership(database)

	authHandler := &AuthHandler{DB: database, Users: users, JWTSecret: jwtSecret}
	usersHandler := &UsersHandler{Users: users, Items: items}
	itemsHandler := &ItemsHandler{Items: items, Ownership: ownership}
	healthHandler := &HealthHandler{DB: database}

	authMW := AuthMiddleware(jwtSecret, database)

	mux := http.NewServeMux()

	// Auth.
	mux.HandleFunc("POST /auth/token", authHandler.Token)
	mux.Handle("POST /auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))

	// Users and their items.
	mux.HandleFunc("POST /users/{$}", usersHandler.Create)
	mux.Handle("GET /users/me", authMW(http.HandlerFunc(usersHandler.Me)))
	mux.HandleFunc("GET /users/{user_id}", usersHandler.Get)
	mux.HandleFunc("GET /users/{user_id}/items/{$}", usersHandler.ListItems)
	mux.HandleFunc("POST /users/{user_id}/items/{$}", usersHandler.CreateItem)

	// Items.
	mux.HandleFunc("GET /items/{$}", itemsHandler.List)
	mux.HandleFunc("GET /items/{item_id}", itemsHandler.Get)
	mux.HandleFunc("PATCH /items/{item_id}/{$}", itemsHandler.ChangeStatus)
	mux.HandleFunc("GET /items/{item_id}/history", itemsHandler.GetHistory)
	mux.HandleFunc("POST /reassign_item/{item_id}/{$}", itemsHandler.Reassign)

	// Operations.
	mux.HandleFunc("GET /healthz", healthHandler.Check)
	mux.Handle("GET /metrics", metrics.Handler())

	handler := metrics.InstrumentHandler(mux)
	if opts.Limiter != nil {
		handler = opts.Limiter.Handler(handler)
	}
	return RequestIDMiddleware(LoggingMiddleware(handler))
}
