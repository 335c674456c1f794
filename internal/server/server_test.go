package server

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/bsui/internal/components"
	"github.com/conneroisu/bsui/internal/config"
	"github.com/conneroisu/bsui/internal/options"
	"github.com/conneroisu/bsui/internal/routes"
	"github.com/conneroisu/bsui/internal/search"
)

func newTestServer(t *testing.T) (*Server, *routes.Table) {
	t.Helper()

	table := routes.NewTable()
	pages := []search.Page{
		{Title: "Getting Started", URL: "/docs/start", Keywords: []string{"install"}},
	}
	svc := search.NewService(nil, table, pages, search.DefaultConfig(), nil)
	srv := New(config.ServerConfig{Host: "127.0.0.1", Port: 0}, components.NewEngine(nil), svc, table, nil)
	return srv, table
}

func get(t *testing.T, srv *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRoutesAreRecorded(t *testing.T) {
	_, table := newTestServer(t)

	assert.Equal(t, []string{
		"_health",
		"_metrics",
		"api.components.index",
		"api.components.show",
		"api.search",
		"components.show",
		"home",
	}, table.Names())

	home, ok := table.Get("home")
	require.True(t, ok)
	assert.Equal(t, "/", home.Path)
	assert.Equal(t, http.MethodGet, home.Method)
}

func TestComponentList(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := get(t, srv, "/api/components")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var list []componentSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, len(components.Catalogue()))
	assert.Equal(t, "accordion", list[0].Name)
	assert.Equal(t, "/components/accordion", list[0].URL)
}

func TestComponentOptions(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := get(t, srv, "/api/components/button?label=Save&variant=success")
	require.Equal(t, http.StatusOK, rec.Code)

	var opts map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &opts))
	assert.Equal(t, "btn btn-success", opts["classes"])
	assert.Equal(t, "Save", opts["label"])
}

func TestComponentOptionsIgnoreNonFiniteNumbers(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		target string
		key    string
	}{
		{"/api/components/progress?value=NaN", "value"},
		{"/api/components/progress?value=Inf&max=%2BInfinity", "max"},
		{"/api/components/pricing_card?price=Inf", "price"},
		{"/api/components/pricing_card?price=0x1p4", "price"},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			rec := get(t, srv, tt.target)
			require.Equal(t, http.StatusOK, rec.Code)
			require.NotEmpty(t, rec.Body.String())

			var opts map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &opts))
			_, isNumber := opts[tt.key].(float64)
			assert.True(t, isNumber, "%s should fall back to its numeric default", tt.key)
		})
	}
}

func TestWriteJSONUnencodableValue(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.writeJSON(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, map[string]any{"v": math.NaN()})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "ERR_INTERNAL")
}

func TestComponentOptionsErrors(t *testing.T) {
	srv, _ := newTestServer(t)

	tests := []struct {
		name   string
		target string
		status int
		code   string
	}{
		{"unknown component", "/api/components/hologram", http.StatusNotFound, "ERR_COMPONENT_NOT_FOUND"},
		{"invalid name", "/api/components/9lives", http.StatusBadRequest, "ERR_INVALID_PROPS"},
		{"malformed props", "/api/components/button?props=" + url.QueryEscape("[1,2"), http.StatusBadRequest, "ERR_INVALID_PROPS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, srv, tt.target)
			assert.Equal(t, tt.status, rec.Code)

			var body errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestComponentPreview(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := get(t, srv, "/components/button?label=Go&variant=success")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), `<button class="btn btn-success" type="button">Go</button>`)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "cdn.jsdelivr.net")

	rec = get(t, srv, "/components/hologram")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIndexPage(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := get(t, srv, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `href="/components/alert"`)
}

func TestSearch(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := get(t, srv, "/api/search?q=install")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp searchResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "install", resp.Query)
	require.NotEmpty(t, resp.Results)
	assert.Equal(t, "/docs/start", resp.Results[0].URL)

	rec = get(t, srv, "/api/search?q=")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"query":"","results":[]}`, rec.Body.String())

	rec = get(t, srv, "/api/search?q=x&limit=zero")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchSkipsInternalRoutes(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := get(t, srv, "/api/search?q=health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"query":"health","results":[]}`, rec.Body.String())
}

func TestHealthAndMetrics(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := get(t, srv, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	var health map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &health))
	assert.Equal(t, "healthy", health["status"])
	assert.EqualValues(t, len(components.Catalogue()), health["components"])

	rec = get(t, srv, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bsui_http_requests_total")
}

func TestNotFoundRoute(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := get(t, srv, "/nowhere")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "ERR_FILE_NOT_FOUND")
}

func TestRecovererReturnsJSON(t *testing.T) {
	srv, _ := newTestServer(t)

	h := srv.recoverer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "ERR_INTERNAL")
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestPropsFromQuery(t *testing.T) {
	query := url.Values{
		"props":             {`{"label":"Save","tooltip":{"text":"Hi"}}`},
		"tooltip.placement": {"bottom"},
		"class":             {"ms-2", "me-1"},
	}

	props, err := propsFromQuery(query)
	require.NoError(t, err)
	assert.Equal(t, "Save", props["label"])
	assert.Equal(t, []any{"ms-2", "me-1"}, props["class"])

	tooltip, ok := props["tooltip"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "bottom", tooltip["placement"])
	assert.Equal(t, "Hi", tooltip["text"])

	empty, err := propsFromQuery(url.Values{})
	require.NoError(t, err)
	assert.Equal(t, options.Props{}, empty)

	null, err := propsFromQuery(url.Values{"props": {"null"}, "label": {"x"}})
	require.NoError(t, err)
	assert.Equal(t, options.Props{"label": "x"}, null)
}

func TestShutdownWithoutStart(t *testing.T) {
	srv, _ := newTestServer(t)

	assert.NoError(t, srv.Shutdown(context.Background()))
	assert.NoError(t, srv.Shutdown(context.Background()))
	assert.Equal(t, "127.0.0.1:0", srv.Addr())
}
