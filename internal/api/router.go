package api

import (
	"database/sql"
	"net/http"
	"time"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string, tokenExpiry time.Duration) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret, TokenExpiry: tokenExpiry}
	itemsHandler := &ItemsHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret, db)

	// Liveness.
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		jsonData(w, http.StatusOK, "API is running", nil)
	})

	// Auth: register and login are public, the rest require a token.
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.Handle("GET /api/auth/profile", authMW(http.HandlerFunc(authHandler.GetProfile)))
	mux.Handle("PUT /api/auth/profile", authMW(http.HandlerFunc(authHandler.UpdateProfile)))
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))

	// Items: reads are public, writes require a token; ownership is checked
	// inside the handlers for mutation, resolve and delete.
	mux.Handle("POST /api/items", authMW(http.HandlerFunc(itemsHandler.Create)))
	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("GET /api/items/search", itemsHandler.Search)
	mux.Handle("GET /api/items/user/items", authMW(http.HandlerFunc(itemsHandler.ListMine)))
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.Handle("PUT /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Update)))
	mux.Handle("PUT /api/items/{id}/resolve", authMW(http.HandlerFunc(itemsHandler.Resolve)))
	mux.Handle("DELETE /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Delete)))
	mux.Handle("PUT /api/items/{id}/image", authMW(http.HandlerFunc(itemsHandler.UploadImage)))

	// Posting a response requires a token.
	mux.Handle("POST /api/items/{id}/responses", authMW(http.HandlerFunc(itemsHandler.AddResponse)))

	// The public two-segment GETs (/category/{category}, /{id}/image,
	// /{id}/responses) overlap as mux patterns: /api/items/category/image
	// would match more than one with neither more specific. They share a
	// fallback pattern and one dispatching handler instead.
	mux.HandleFunc("GET /api/items/", itemsHandler.GetSubpath)

	// Unknown API endpoints get a JSON 404 instead of the default page.
	mux.HandleFunc("/api/", func(w http.ResponseWriter, r *http.Request) {
		jsonError(w, http.StatusNotFound, "Endpoint not found")
	})

	return mux
}
