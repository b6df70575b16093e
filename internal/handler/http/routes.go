package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/MKhiriev/go-travel-journal/internal/app"
)

func (h *Handler) Init() *chi.Mux {
	if h.metrics == nil {
		h.metrics = newHTTPMetrics()
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(withGZip)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.server.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	}))
	if h.server.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.server.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(h.authRateLimit())

		r.Post("/create-account", h.createAccount)
		r.Post("/login", h.login)
	})

	router.Get("/api/version", h.getServerVersion)
	router.Method(http.MethodGet, "/metrics", h.metrics.handler())
	router.Get("/uploads/{file}", h.serveUpload)
	if h.staticDir != "" {
		router.Get("/assets/*", h.serveStatic())
	}

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/get-user", h.getUser)

		r.Post("/upload-image", h.uploadImage)
		r.Delete("/delete-image", h.deleteImage)

		r.Post("/add-travel-story", h.addTravelStory)
		r.Get("/get-all-stories", h.getAllStories)
		r.Put("/edit-story/{id}", h.editStory)
		r.Delete("/delete-story/{id}", h.deleteStory)
		r.Put("/update-isFavourite/{id}", h.updateIsFavourite)
		r.Get("/search", h.searchStories)
		r.Get("/travel-stories/filter", h.filterStories)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeErrorStatus(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// authRateLimit limits account creation and login per client IP. A zero
// limit disables it.
func (h *Handler) authRateLimit() func(http.Handler) http.Handler {
	if h.server.AuthRateLimit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(
		h.server.AuthRateLimit,
		h.server.AuthRateWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			writeErrorStatus(w, http.StatusTooManyRequests, app.MsgTooManyRequests)
		}),
	)
}
