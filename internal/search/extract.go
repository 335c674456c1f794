package search

import (
	"path"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DescriptionLength is the rune budget of an extracted description.
const DescriptionLength = 150

var (
	templatingPattern = regexp.MustCompile(`(?s)\{\{.*?\}\}|\{%.*?%\}|\{#.*?#\}`)
	titleBlockPattern = []*regexp.Regexp{
		regexp.MustCompile(`(?s)\{%-?\s*block\s+title\s*-?%\}(.*?)\{%-?\s*endblock\b`),
		regexp.MustCompile(`(?s)\{\{-?\s*(?:define|block)\s+"title"[^}]*\}\}(.*?)\{\{-?\s*end\s*-?\}\}`),
	}
)

// HasTemplating reports whether s still holds template syntax.
func HasTemplating(s string) bool {
	return strings.Contains(s, "{{") || strings.Contains(s, "{%") || strings.Contains(s, "{#")
}

// StripTemplating removes template tags, comments and expressions.
func StripTemplating(s string) string {
	return templatingPattern.ReplaceAllString(s, " ")
}

// NormalizeSpace collapses runs of whitespace into single spaces.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// PlainText strips markup from src and normalizes whitespace. Script and
// style bodies are dropped.
func PlainText(src string) string {
	z := html.NewTokenizer(strings.NewReader(src))
	var b strings.Builder
	skip := 0
	for {
		switch z.Next() {
		case html.ErrorToken:
			return NormalizeSpace(b.String())
		case html.StartTagToken:
			if isRawText(z) {
				skip++
			}
		case html.EndTagToken:
			if isRawText(z) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
				b.WriteByte(' ')
			}
		}
	}
}

func isRawText(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	a := atom.Lookup(name)
	return a == atom.Script || a == atom.Style
}

// Truncate shortens s to at most n runes at a word boundary and appends
// "..." when anything was cut. Words are never split: a first word longer
// than n leaves only the ellipsis.
func Truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	cut := runes[:n]
	if runes[n] != ' ' {
		if i := lastSpace(cut); i >= 0 {
			cut = cut[:i]
		} else {
			cut = cut[:0]
		}
	}
	return strings.TrimRight(string(cut), " ,.;:") + "..."
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}

// TitleFromFilename derives a readable title from a template path:
// "docs/getting_started.html.twig" becomes "Getting Started". Index files
// take the name of their directory.
func TitleFromFilename(relPath string) string {
	dir, file := path.Split(relPath)
	base := stripExtensions(file)
	if base == "index" {
		base = path.Base(strings.TrimSuffix(dir, "/"))
		if base == "." || base == "/" || base == "" {
			return "Home"
		}
	}
	return humanize(base)
}

// TitleFromRouteName derives a title from a dotted route name:
// "admin.users.index" becomes "Admin - Users - Index".
func TitleFromRouteName(name string) string {
	var parts []string
	for _, segment := range strings.Split(name, ".") {
		if s := humanize(segment); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " - ")
}

func humanize(s string) string {
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return cases.Title(language.English).String(NormalizeSpace(s))
}

func stripExtensions(file string) string {
	if i := strings.Index(file, "."); i > 0 {
		return file[:i]
	}
	return file
}

// URLFromPath maps a template path to the URL it serves:
// "docs/intro.html" -> "/docs/intro", "docs/index.html" -> "/docs".
func URLFromPath(relPath string) string {
	dir, file := path.Split(relPath)
	base := stripExtensions(file)
	var url string
	if base == "index" {
		url = strings.TrimSuffix(dir, "/")
	} else {
		url = dir + base
	}
	return "/" + strings.TrimPrefix(url, "/")
}

// TypeFromPath classifies templates below a components directory.
func TypeFromPath(relPath string) string {
	for _, segment := range strings.Split(path.Dir(relPath), "/") {
		if segment == "components" {
			return TypeComponent
		}
	}
	return TypePage
}

// ExtractTemplate builds the index document of one template.
func ExtractTemplate(relPath string, src []byte) Document {
	text := string(src)
	doc := Document{
		URL:  URLFromPath(relPath),
		Type: TypeFromPath(relPath),
	}

	root, err := html.Parse(strings.NewReader(text))
	if err != nil {
		root = nil
	}

	doc.Title = extractTitle(relPath, text, root)
	doc.Description = extractDescription(root)
	doc.Keywords = extractKeywords(root)
	doc.Content = PlainText(StripTemplating(text))
	return doc
}

func extractTitle(relPath, text string, root *html.Node) string {
	for _, pattern := range titleBlockPattern {
		if m := pattern.FindStringSubmatch(text); m != nil {
			if title, ok := titleCandidate(PlainText(m[1])); ok {
				return title
			}
		}
	}

	if root != nil {
		finders := []func(*html.Node) bool{
			isElement(atom.H1),
			hasDisplayClass,
			isElement(atom.Title),
		}
		for _, match := range finders {
			for _, n := range findAll(root, match) {
				if title, ok := titleCandidate(nodeText(n)); ok {
					return title
				}
			}
		}
	}

	return TitleFromFilename(relPath)
}

func titleCandidate(s string) (string, bool) {
	s = NormalizeSpace(s)
	if s == "" || HasTemplating(s) {
		return "", false
	}
	return s, true
}

func extractDescription(root *html.Node) string {
	if root == nil {
		return ""
	}

	for _, n := range findAll(root, func(n *html.Node) bool {
		return isElement(atom.P)(n) && hasClass(n, "lead")
	}) {
		if d := descriptionCandidate(n); d != "" {
			return d
		}
	}

	seenHeading := false
	var found string
	walk(root, func(n *html.Node) bool {
		if found != "" {
			return false
		}
		if isElement(atom.H1)(n) {
			seenHeading = true
			return false
		}
		if seenHeading && isElement(atom.P)(n) {
			found = descriptionCandidate(n)
			return false
		}
		return true
	})
	return found
}

func descriptionCandidate(n *html.Node) string {
	text := NormalizeSpace(StripTemplating(nodeText(n)))
	if text == "" {
		return ""
	}
	return Truncate(text, DescriptionLength)
}

var keywordAtoms = map[atom.Atom]bool{
	atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true, atom.Code: true,
}

func extractKeywords(root *html.Node) []string {
	if root == nil {
		return nil
	}
	seen := make(map[string]bool)
	var keywords []string
	for _, n := range findAll(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && keywordAtoms[n.DataAtom]
	}) {
		text := NormalizeSpace(nodeText(n))
		if text == "" || HasTemplating(text) {
			continue
		}
		key := strings.ToLower(text)
		if seen[key] {
			continue
		}
		seen[key] = true
		keywords = append(keywords, text)
	}
	return keywords
}

// walk visits nodes in document order; returning false skips children.
func walk(n *html.Node, visit func(*html.Node) bool) {
	if !visit(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func findAll(root *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	walk(root, func(n *html.Node) bool {
		if match(n) {
			out = append(out, n)
			return false
		}
		return true
	})
	return out
}

func isElement(a atom.Atom) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == a
	}
}

func hasDisplayClass(n *html.Node) bool {
	return n.Type == html.ElementNode && (hasClass(n, "display-4") || hasClass(n, "display-5"))
}

func hasClass(n *html.Node, class string) bool {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(attr.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	walk(n, func(c *html.Node) bool {
		switch {
		case c.Type == html.TextNode:
			b.WriteString(c.Data)
			b.WriteByte(' ')
		case c.Type == html.ElementNode && (c.DataAtom == atom.Script || c.DataAtom == atom.Style):
			return false
		}
		return true
	})
	return b.String()
}
