package app

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/notes-api/internal/config"
	"github.com/heartmarshall/notes-api/internal/transport/middleware"
	"github.com/heartmarshall/notes-api/internal/transport/rest"
)

// NewRouter mounts the note and ping routes under basePath and the health
// probes at the root, then wraps everything in the middleware chain.
func NewRouter(
	basePath string,
	notes *rest.NoteHandler,
	health *rest.HealthHandler,
	cors config.CORSConfig,
	logger *slog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET "+basePath+"/v1/note", notes.List)
	mux.HandleFunc("POST "+basePath+"/v1/note", notes.Create)
	mux.HandleFunc("GET "+basePath+"/v1/note/{id}", notes.Get)
	mux.HandleFunc("PATCH "+basePath+"/v1/note/{id}", notes.Update)
	mux.HandleFunc("DELETE "+basePath+"/v1/note/{id}", notes.Delete)

	mux.HandleFunc("GET "+basePath+"/ping/ping", rest.Ping)

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	return middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cors),
	)(mux)
}
