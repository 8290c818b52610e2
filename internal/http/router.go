package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rogerio-castellano/inventario-api/internal/http/handlers"
	rl "github.com/rogerio-castellano/inventario-api/internal/http/rate_limiter"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Options struct {
	// Require a bearer token on /configuracion and /alertas, which are
	// public otherwise.
	AuthConfiguracion bool
	AuthAlertas       bool

	CORSOrigins []string
	// Swagger mounts the API docs under /swagger/.
	Swagger bool
	// Limiter throttles /api per client IP when set.
	Limiter *rl.Visitors
}

func NewRouter(h *handlers.Handler, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	if len(opts.CORSOrigins) > 0 {
		r.Use(CORS(opts.CORSOrigins))
	}

	r.Get("/healthz", h.HealthHandler)
	if opts.Swagger {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	r.Route("/api", func(r chi.Router) {
		if opts.Limiter != nil {
			r.Use(RateLimit(opts.Limiter))
		}

		r.Get("/", h.RootHandler)
		r.Post("/register", h.RegisterHandler)
		r.Post("/login", h.LoginHandler)
		r.With(h.RequireAuth).Get("/me", h.MeHandler)

		r.Route("/productos", func(r chi.Router) {
			r.Get("/", h.GetProductsHandler)
			r.Get("/{id}", h.GetProductByIDHandler)
			r.Group(func(r chi.Router) {
				r.Use(h.RequireAuth)
				r.Post("/", h.CreateProductHandler)
				r.Put("/{id}", h.UpdateProductHandler)
				r.Delete("/{id}", h.DeleteProductHandler)
			})
		})

		r.Route("/contactos", func(r chi.Router) {
			r.Get("/", h.GetContactsHandler)
			r.Get("/{id}", h.GetContactByIDHandler)
			r.Group(func(r chi.Router) {
				r.Use(h.RequireAuth)
				r.Post("/", h.CreateContactHandler)
				r.Put("/{id}", h.UpdateContactHandler)
				r.Delete("/{id}", h.DeleteContactHandler)
			})
		})

		r.Group(func(r chi.Router) {
			if opts.AuthConfiguracion {
				r.Use(h.RequireAuth)
			}
			r.Get("/configuracion", h.GetConfigurationHandler)
			r.Put("/configuracion", h.UpdateConfigurationHandler)
		})

		r.Group(func(r chi.Router) {
			if opts.AuthAlertas {
				r.Use(h.RequireAuth)
			}
			r.Get("/alertas", h.GetAlertsHandler)
			r.Get("/alertas/resumen", h.GetAlertSummaryHandler)
		})
	})

	return r
}
