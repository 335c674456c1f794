package search

import (
	"context"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/conneroisu/bsui/internal/logging"
	"github.com/conneroisu/bsui/internal/metrics"
)

// Default configuration values.
const (
	DefaultLimit               = 20
	DefaultCacheSize           = 256
	DefaultInternalRoutePrefix = "_"
)

// Config tunes the search service.
type Config struct {
	// InternalRoutePrefix marks route names that are never indexed.
	InternalRoutePrefix string
	// DefaultLimit applies when a query passes a limit of zero or less.
	DefaultLimit int
	// CacheSize bounds the result cache; zero disables it.
	CacheSize int
}

// DefaultConfig returns the default service configuration.
func DefaultConfig() Config {
	return Config{
		InternalRoutePrefix: DefaultInternalRoutePrefix,
		DefaultLimit:        DefaultLimit,
		CacheSize:           DefaultCacheSize,
	}
}

type cacheKey struct {
	query string
	limit int
}

// Service is the lazily built search index over the content tree, the route
// table and the declared pages. It is safe for concurrent use.
type Service struct {
	tree   ContentTree
	routes RouteSource
	pages  []Page
	config Config
	logger logging.Logger

	once  sync.Once
	index *Index
	cache *lru.Cache[cacheKey, []Result]
}

// NewService creates a search service. tree and routes may be nil.
func NewService(tree ContentTree, routes RouteSource, pages []Page, config Config, logger logging.Logger) *Service {
	if config.DefaultLimit <= 0 {
		config.DefaultLimit = DefaultLimit
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	s := &Service{
		tree:   tree,
		routes: routes,
		pages:  pages,
		config: config,
		logger: logger.WithComponent("search"),
	}
	if config.CacheSize > 0 {
		s.cache, _ = lru.New[cacheKey, []Result](config.CacheSize)
	}
	return s
}

// Search returns up to limit results for query, best first. The first call
// builds the index.
func (s *Service) Search(ctx context.Context, query string, limit int) []Result {
	start := time.Now()
	defer func() { metrics.SearchQueryDuration.Observe(time.Since(start).Seconds()) }()

	if limit <= 0 {
		limit = s.config.DefaultLimit
	}
	normalized := NormalizeQuery(query)
	if normalized == "" {
		metrics.SearchQueriesTotal.WithLabelValues("empty").Inc()
		return []Result{}
	}

	index := s.ensureIndex(ctx)

	key := cacheKey{query: normalized, limit: limit}
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			metrics.SearchCacheTotal.WithLabelValues("hit").Inc()
			s.countOutcome(cached)
			return copyResults(cached)
		}
		metrics.SearchCacheTotal.WithLabelValues("miss").Inc()
	}

	results := index.Search(normalized, limit)
	if s.cache != nil {
		s.cache.Add(key, copyResults(results))
	}

	s.countOutcome(results)
	s.logger.Debug(ctx, "search executed", "query", normalized, "limit", limit, "results", len(results))
	return results
}

// Documents returns the indexed documents, building the index if needed.
func (s *Service) Documents(ctx context.Context) []Document {
	return s.ensureIndex(ctx).Documents()
}

func (s *Service) countOutcome(results []Result) {
	outcome := "hit"
	if len(results) == 0 {
		outcome = "empty"
	}
	metrics.SearchQueriesTotal.WithLabelValues(outcome).Inc()
}

func copyResults(results []Result) []Result {
	out := make([]Result, len(results))
	copy(out, results)
	return out
}

func (s *Service) ensureIndex(ctx context.Context) *Index {
	s.once.Do(func() {
		s.index = s.build(ctx)
	})
	return s.index
}

func (s *Service) build(ctx context.Context) *Index {
	op := logging.StartOperation(s.logger, "index_build")

	var docs []Document
	seen := make(map[string]bool)

	templates := s.indexTemplates(ctx, &docs, seen)
	routeCount := s.indexRoutes(ctx, &docs, seen)
	pageCount := s.indexPages(&docs)

	index := NewIndex(docs)

	byType := map[string]int{TypePage: 0, TypeComponent: 0, TypeRoute: 0}
	for _, d := range index.docs {
		byType[d.Type]++
	}
	for docType, n := range byType {
		metrics.IndexDocuments.WithLabelValues(docType).Set(float64(n))
	}
	metrics.IndexBuildDuration.Observe(op.Elapsed().Seconds())

	op.End(ctx,
		"documents", index.Len(),
		"templates", templates,
		"routes", routeCount,
		"pages", pageCount,
	)
	return index
}

func (s *Service) indexTemplates(ctx context.Context, docs *[]Document, seen map[string]bool) int {
	if s.tree == nil {
		return 0
	}
	files, err := s.tree.Files()
	if err != nil {
		s.logger.Warn(ctx, err, "content tree unavailable")
		return 0
	}

	count := 0
	for _, f := range files {
		src, err := f.Read()
		if err != nil {
			s.logger.Debug(ctx, "skipping unreadable template", "path", f.RelPath, "error", err.Error())
			continue
		}
		doc := ExtractTemplate(f.RelPath, src)
		*docs = append(*docs, doc)
		seen[doc.URL] = true
		count++
	}
	return count
}

func (s *Service) indexRoutes(ctx context.Context, docs *[]Document, seen map[string]bool) int {
	if s.routes == nil {
		return 0
	}

	count := 0
	for _, r := range s.routes.Routes() {
		if reason := s.skipRoute(r.Name, r.Path); reason != "" {
			s.logger.Debug(ctx, "skipping route", "route", r.Name, "reason", reason)
			continue
		}
		if seen[r.Path] {
			continue
		}

		title := TitleFromRouteName(r.Name)
		*docs = append(*docs, Document{
			Title:    title,
			URL:      r.Path,
			Type:     TypeRoute,
			Content:  NormalizeSpace(title + " " + r.Name + " " + r.Path),
			Keywords: routeKeywords(r.Name),
		})
		seen[r.Path] = true
		count++
	}
	return count
}

// skipRoute returns why a route is not indexed, or "".
func (s *Service) skipRoute(name, path string) string {
	lower := strings.ToLower(name)
	switch {
	case name == "":
		return "unnamed"
	case s.config.InternalRoutePrefix != "" && strings.HasPrefix(name, s.config.InternalRoutePrefix):
		return "internal"
	case strings.Contains(lower, "api"), strings.Contains(lower, "ignore"):
		return "excluded name"
	case path == "":
		return "empty path"
	case strings.Contains(path, "{"):
		return "parameterized path"
	}
	return ""
}

func routeKeywords(name string) []string {
	var out []string
	for _, segment := range strings.Split(name, ".") {
		if segment != "" {
			out = append(out, segment)
		}
	}
	return out
}

func (s *Service) indexPages(docs *[]Document) int {
	count := 0
	for _, p := range s.pages {
		if p.URL == "" {
			continue
		}
		docType := p.Type
		if docType == "" {
			docType = TypePage
		}
		*docs = append(*docs, Document{
			Title:       p.Title,
			Description: p.Description,
			URL:         p.URL,
			Type:        docType,
			Content:     NormalizeSpace(p.Title + " " + p.Description + " " + strings.Join(p.Keywords, " ")),
			Keywords:    append([]string(nil), p.Keywords...),
		})
		count++
	}
	return count
}
