// Package extract pulls single values, node lists and counts out of a parsed
// HTML tree with XPath. A query that matches nothing yields an empty result,
// never an error. Nothing here trims; callers decide per field.
package extract

import (
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"golang.org/x/net/html"
)

// Query is a compiled XPath expression.
type Query struct {
	raw  string
	expr *xpath.Expr
}

// Compile parses an XPath expression.
func Compile(raw string) (Query, error) {
	expr, err := xpath.Compile(raw)
	if err != nil {
		return Query{}, err
	}
	return Query{raw: raw, expr: expr}, nil
}

// MustCompile is like Compile but panics on a malformed expression.
// It is meant for the fixed catalogue, where a bad expression is a programming error.
func MustCompile(raw string) Query {
	q, err := Compile(raw)
	if err != nil {
		panic("extract: " + raw + ": " + err.Error())
	}
	return q
}

func (q Query) String() string {
	return q.raw
}

// Node returns the first node matched by q under top, or nil.
func Node(top *html.Node, q Query) *html.Node {
	if top == nil || q.expr == nil {
		return nil
	}
	return htmlquery.QuerySelector(top, q.expr)
}

// Nodes returns every node matched by q under top in document order.
func Nodes(top *html.Node, q Query) []*html.Node {
	if top == nil || q.expr == nil {
		return nil
	}
	return htmlquery.QuerySelectorAll(top, q.expr)
}

// Count returns the number of nodes matched by q.
func Count(top *html.Node, q Query) int {
	return len(Nodes(top, q))
}

// String returns the raw text of the first match. Attribute matches yield the attribute value.
func String(top *html.Node, q Query) string {
	n := Node(top, q)
	if n == nil {
		return ""
	}
	return htmlquery.InnerText(n)
}

// Strings returns the raw text of every match.
func Strings(top *html.Node, q Query) []string {
	nodes := Nodes(top, q)
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, htmlquery.InnerText(n))
	}
	return out
}

// Text returns all descendant text of n with whitespace normalized.
func Text(n *html.Node) string {
	if n == nil {
		return ""
	}
	return Normalize(htmlquery.InnerText(n))
}

// Normalize collapses runs of whitespace, including non-breaking spaces, into single spaces and trims.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
