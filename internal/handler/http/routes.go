package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	// RemoteAddr keys the rate limiter; only a trusted proxy may rewrite it
	if h.trustProxyHeaders {
		router.Use(middleware.RealIP)
	}
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route("/api/users", func(r chi.Router) {
		r.Get("/test", h.usersStatus)

		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Use(h.withRateLimit)
			r.Post("/register", h.register)
			r.Post("/login", h.login)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/current", h.current)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
