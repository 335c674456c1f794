package search

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Score weights.
const (
	ScoreTitleExact       = 100
	ScoreTitlePrefix      = 50
	ScoreTitleContains    = 30
	ScoreDescription      = 20
	ScoreKeywordExact     = 40
	ScoreKeywordPartial   = 15
	ScoreContentWord      = 10
	ScoreContentToken     = 5
	minContentTokenLength = 3
)

// NormalizeQuery trims and lowercases a query.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// query is a normalized query with its derived matchers.
type query struct {
	text   string
	word   *regexp.Regexp
	tokens []string
}

func newQuery(q string) query {
	text := NormalizeQuery(q)
	var tokens []string
	for _, t := range strings.Fields(text) {
		if utf8.RuneCountInString(t) >= minContentTokenLength {
			tokens = append(tokens, t)
		}
	}
	return query{
		text:   text,
		word:   regexp.MustCompile(`\b` + regexp.QuoteMeta(text) + `\b`),
		tokens: tokens,
	}
}

// Score returns the relevance of doc for q. Zero means no match.
func Score(doc Document, q string) int {
	if NormalizeQuery(q) == "" {
		return 0
	}
	return newQuery(q).score(doc)
}

func (q query) score(doc Document) int {
	score := 0

	title := strings.ToLower(doc.Title)
	if title == q.text {
		score += ScoreTitleExact
	}
	if strings.HasPrefix(title, q.text) {
		score += ScoreTitlePrefix
	}
	if strings.Contains(title, q.text) {
		score += ScoreTitleContains
	}

	if strings.Contains(strings.ToLower(doc.Description), q.text) {
		score += ScoreDescription
	}

	for _, keyword := range doc.Keywords {
		k := strings.ToLower(strings.TrimSpace(keyword))
		if k == "" {
			continue
		}
		if k == q.text {
			score += ScoreKeywordExact
		} else if strings.Contains(k, q.text) || strings.Contains(q.text, k) {
			score += ScoreKeywordPartial
		}
	}

	content := strings.ToLower(doc.Content)
	if q.word.MatchString(content) {
		score += ScoreContentWord
	}
	for _, token := range q.tokens {
		if strings.Contains(content, token) {
			score += ScoreContentToken
		}
	}

	return score
}

// Index is an immutable list of documents that can be ranked against a
// query.
type Index struct {
	docs []Document
}

// NewIndex creates an index over docs. Documents without a URL are dropped.
func NewIndex(docs []Document) *Index {
	kept := make([]Document, 0, len(docs))
	for _, d := range docs {
		if d.URL == "" {
			continue
		}
		kept = append(kept, d)
	}
	return &Index{docs: kept}
}

// Len returns the number of documents.
func (ix *Index) Len() int { return len(ix.docs) }

// Documents returns a copy of the indexed documents.
func (ix *Index) Documents() []Document {
	out := make([]Document, len(ix.docs))
	copy(out, ix.docs)
	return out
}

// Search ranks the documents against q and returns at most limit results.
// An empty query returns no results.
func (ix *Index) Search(q string, limit int) []Result {
	results := []Result{}
	if NormalizeQuery(q) == "" || limit <= 0 {
		return results
	}

	type scored struct {
		doc   Document
		score int
	}

	matcher := newQuery(q)
	var hits []scored
	for _, doc := range ix.docs {
		if s := matcher.score(doc); s > 0 {
			hits = append(hits, scored{doc: doc, score: s})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	if len(hits) > limit {
		hits = hits[:limit]
	}
	for _, h := range hits {
		results = append(results, h.doc.result())
	}
	return results
}
