package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"

	"github.com/conneroisu/bsui/internal/errors"
	"github.com/conneroisu/bsui/internal/search"
	"github.com/conneroisu/bsui/internal/version"
)

// maxSearchLimit bounds the limit query parameter.
const maxSearchLimit = 100

type componentSummary struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type searchResponse struct {
	Query   string          `json:"query"`
	Results []search.Result `json:"results"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	templ.Handler(s.renderer.Index()).ServeHTTP(w, r)
}

func (s *Server) handleComponentPreview(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	props, err := propsFromQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	page, err := s.renderer.Preview(name, props)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	templ.Handler(page).ServeHTTP(w, r)
}

func (s *Server) handleComponentList(w http.ResponseWriter, r *http.Request) {
	names := s.engine.Names()
	out := make([]componentSummary, 0, len(names))
	for _, name := range names {
		def, ok := s.engine.Definition(name)
		if !ok {
			continue
		}
		out = append(out, componentSummary{
			Name:        def.Name,
			Description: def.Description,
			URL:         "/components/" + def.Name,
		})
	}
	s.writeJSON(w, r, http.StatusOK, out)
}

func (s *Server) handleComponentOptions(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	props, err := propsFromQuery(r.URL.Query())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	opts, err := s.renderer.Resolve(name, props)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, r, http.StatusOK, opts)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.writeError(w, r, errors.NewValidationError(errors.ErrCodeInvalidQuery, "limit must be a positive integer"))
			return
		}
		if n > maxSearchLimit {
			n = maxSearchLimit
		}
		limit = n
	}

	results := s.search.Search(r.Context(), query, limit)
	s.writeJSON(w, r, http.StatusOK, searchResponse{Query: query, Results: results})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, http.StatusOK, map[string]interface{}{
		"status":     "healthy",
		"timestamp":  time.Now().UTC(),
		"uptime":     time.Since(s.started).Round(time.Second).String(),
		"version":    version.GetShortVersion(),
		"components": len(s.engine.Names()),
	})
}

// writeJSON encodes v before writing the header so an unencodable value
// becomes a 500 rather than an empty 200.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		s.logger.Error(r.Context(), err, "Failed to encode response", "path", r.URL.Path)
		status = http.StatusInternalServerError
		body = []byte(`{"code":"` + errors.ErrCodeInternalError + `","message":"` + http.StatusText(status) + `"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

// writeError maps application errors to HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	code := errors.ErrCodeInternalError
	message := http.StatusText(status)

	var appErr *errors.Error
	if errors.As(err, &appErr) {
		code = appErr.Code
		if status != http.StatusInternalServerError {
			message = appErr.Message
		}
	}
	if status == http.StatusInternalServerError {
		s.logger.Error(r.Context(), err, "Request failed", "path", r.URL.Path)
	}
	s.writeJSON(w, r, status, errorResponse{Code: code, Message: message})
}

func notFound(message string) error {
	return errors.NewNotFoundError(errors.ErrCodeFileNotFound, message)
}
