// Package search indexes templates, application routes and declared pages
// for the in-app search box.
//
// The index is built lazily on the first query and never refreshed for the
// lifetime of the process. Scoring is an additive integer heuristic; a
// document scoring zero is not a result.
package search

import (
	"github.com/conneroisu/bsui/internal/routes"
	"github.com/conneroisu/bsui/internal/scanner"
)

// Document types.
const (
	TypePage      = "page"
	TypeComponent = "component"
	TypeRoute     = "route"
)

// Document is one indexed entry. URL is never empty and Content is plain
// text.
type Document struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	URL         string   `json:"url" yaml:"url"`
	Type        string   `json:"type" yaml:"type"`
	Content     string   `json:"content" yaml:"content"`
	Keywords    []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// Result is a ranked document without its score.
type Result struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	URL         string `json:"url" yaml:"url"`
	Type        string `json:"type" yaml:"type"`
}

// Page is a statically declared search entry.
type Page struct {
	Title       string
	Description string
	URL         string
	Type        string
	Keywords    []string
}

// ContentTree lists the templates to index.
type ContentTree interface {
	Files() ([]scanner.File, error)
}

// RouteSource lists the application routes to index.
type RouteSource interface {
	Routes() []routes.Route
}

func (d Document) result() Result {
	return Result{Title: d.Title, Description: d.Description, URL: d.URL, Type: d.Type}
}
