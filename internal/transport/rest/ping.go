package rest

import (
	"io"
	"net/http"
)

// Ping answers the plain-text connectivity check with "pong".
func Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, "pong\n") //nolint:errcheck
}
