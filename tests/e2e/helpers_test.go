//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/notes-api/internal/adapter/postgres"
	noterepo "github.com/heartmarshall/notes-api/internal/adapter/postgres/note"
	"github.com/heartmarshall/notes-api/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/notes-api/internal/app"
	"github.com/heartmarshall/notes-api/internal/config"
	"github.com/heartmarshall/notes-api/internal/domain"
	notesvc "github.com/heartmarshall/notes-api/internal/service/note"
	"github.com/heartmarshall/notes-api/internal/transport/rest"
)

const basePath = "/api"

// testServer wraps the full-stack HTTP server for E2E tests.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	txm := postgres.NewTxManager(pool)
	svc := notesvc.NewService(logger, noterepo.New(pool), txm, domain.NoteTitleMaxLength)

	handler := app.NewRouter(
		basePath,
		rest.NewNoteHandler(svc, logger),
		rest.NewHealthHandler(pool, "test-version", logger),
		config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders:   "Content-Type,If-Match,X-Request-Id",
			MaxAge:           86400,
		},
		logger,
	)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// do sends a request with an optional JSON body and returns the response
// and its fully read body.
func (ts *testServer) do(t *testing.T, method, path string, body any, header http.Header) (*http.Response, []byte) {
	t.Helper()

	var rdr io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rdr = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rdr = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, rdr)
	require.NoError(t, err)
	if rdr != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

// noteJSON mirrors the note resource representation.
type noteJSON struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Content   *string `json:"content"`
	Version   int     `json:"version"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

type summaryJSON struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	UpdatedAt string `json:"updatedAt"`
}

type errorJSON struct {
	Error  string `json:"error"`
	Fields []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"fields"`
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func notePath(id string) string {
	return basePath + "/v1/note/" + id
}

// seedNotes inserts the three fixture notes used by the scenario tests.
func seedNotes(t *testing.T, ts *testServer) []domain.Note {
	t.Helper()
	notes := make([]domain.Note, 0, 3)
	for _, n := range []struct{ title, content string }{
		{"Note 1", "Content 1"},
		{"Note 2", "Content 2"},
		{"Note 3", "Content 3"},
	} {
		notes = append(notes, testhelper.SeedNote(t, ts.Pool, n.title, testhelper.Ptr(n.content)))
	}
	return notes
}
