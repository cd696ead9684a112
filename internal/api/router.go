package api

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/solestore/storefront-service/internal/api/handlers"
	"github.com/solestore/storefront-service/internal/api/middleware"
	"github.com/solestore/storefront-service/internal/cache"
	"github.com/solestore/storefront-service/internal/repository"
	"github.com/solestore/storefront-service/internal/service"
)

// Deps carries the shared dependencies the router wires into handlers.
type Deps struct {
	DB           *sql.DB
	Auth         *service.AuthService
	Carts        *service.CartService
	CatalogCache *cache.CatalogCache
	Limiter      *middleware.RateLimiter
	Log          *logrus.Logger
}

// NewRouter builds the HTTP router for the storefront-service.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	authHandler := handlers.NewAuthHandler(deps.Auth, deps.Log)
	shoeHandler := handlers.NewShoeHandler(repository.NewShoeRepo(deps.DB), deps.CatalogCache, deps.Log)
	profileHandler := handlers.NewProfileHandler(repository.NewProfileRepo(deps.DB), deps.Log)
	cartHandler := handlers.NewCartHandler(deps.Carts, deps.Log)

	// Public endpoints, throttled by remote address
	r.Group(func(r chi.Router) {
		r.Use(deps.Limiter.Handler)

		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
		r.Route("/shoes", func(r chi.Router) {
			r.Get("/", shoeHandler.List)
			r.Get("/{shoeID}", shoeHandler.Get)
		})

		// Admin endpoints
		r.Route("/admin", func(r chi.Router) {
			r.Post("/shoes", shoeHandler.Create)
		})
	})

	// Endpoints acting on the caller's own data; identity comes from the
	// bearer token. The limiter runs after auth so buckets are per user,
	// not per address.
	r.Group(func(r chi.Router) {
		r.Use(middleware.BearerAuth(deps.Auth))
		r.Use(deps.Limiter.Handler)

		r.Get("/me", authHandler.Me)

		r.Route("/cart", func(r chi.Router) {
			r.Post("/", cartHandler.AddItem)
			r.Get("/", cartHandler.GetCart)
			r.Put("/", cartHandler.UpdateItem)
			r.Delete("/", cartHandler.RemoveItem)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Post("/", profileHandler.Create)
			r.Get("/", profileHandler.Get)
		})
	})

	// health
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
