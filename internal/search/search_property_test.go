//go:build property
// +build property

package search

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestSearchProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	words := gen.SliceOfN(6, gen.OneConstOf("card", "alert", "modal", "grid", "button", "docs", "intro"))

	properties.Property("truncation stays within budget", prop.ForAll(
		func(ws []string, n int) bool {
			s := strings.Join(ws, " ")
			got := Truncate(s, n)
			if utf8.RuneCountInString(s) <= n {
				return got == s
			}
			return strings.HasSuffix(got, "...") && utf8.RuneCountInString(got) <= n+3
		},
		words,
		gen.IntRange(1, 40),
	))

	properties.Property("scores are never negative", prop.ForAll(
		func(title, content, q string) bool {
			return Score(Document{Title: title, Content: content, URL: "/x"}, q) >= 0
		},
		gen.AnyString(),
		gen.AnyString(),
		gen.AnyString(),
	))

	properties.Property("search is idempotent and ordered by score", prop.ForAll(
		func(titles []string, q string) bool {
			docs := make([]Document, 0, len(titles))
			for i, title := range titles {
				docs = append(docs, Document{Title: title, Content: title, URL: "/" + strings.Repeat("p", i+1)})
			}
			ix := NewIndex(docs)
			first := ix.Search(q, 20)
			second := ix.Search(q, 20)
			if len(first) != len(second) {
				return false
			}
			byURL := make(map[string]Document)
			for _, d := range docs {
				byURL[d.URL] = d
			}
			for i := range first {
				if first[i] != second[i] {
					return false
				}
				if i > 0 && Score(byURL[first[i-1].URL], q) < Score(byURL[first[i].URL], q) {
					return false
				}
			}
			return true
		},
		words,
		gen.OneConstOf("card", "docs", "a", "", "zebra"),
	))

	properties.TestingRun(t)
}
