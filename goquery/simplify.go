package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// allowedTags is the markup vocabulary simplified content may contain.
// Everything else is unwrapped to its children.
var allowedTags = map[atom.Atom]bool{
	atom.P:      true,
	atom.Br:     true,
	atom.B:      true,
	atom.I:      true,
	atom.Strong: true,
	atom.Em:     true,
	atom.U:      true,
	atom.H1:     true,
	atom.H2:     true,
	atom.H3:     true,
	atom.H4:     true,
	atom.H5:     true,
	atom.H6:     true,
	atom.Ul:     true,
	atom.Ol:     true,
	atom.Li:     true,
}

// textEscaper escapes the characters that would otherwise be read back as markup.
var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Simplify reduces every node in sel to the restricted markup vocabulary
// and concatenates the results.
func Simplify(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		b.WriteString(SimplifyNode(n))
	}
	return b.String()
}

// SimplifyNode reduces n to the restricted markup vocabulary.
//
// Text is trimmed and escaped. Elements outside the vocabulary are replaced
// by their simplified children. Allowed elements lose every attribute and
// are dropped entirely when their simplified children are blank, except br
// which is always emitted as <br/>. Comments and doctypes produce nothing.
func SimplifyNode(n *html.Node) string {
	switch n.Type {
	case html.TextNode:
		return textEscaper.Replace(strings.TrimSpace(n.Data))
	case html.ElementNode:
		return simplifyElement(n)
	case html.DocumentNode:
		return simplifyChildren(n)
	default:
		return ""
	}
}

func simplifyElement(n *html.Node) string {
	if n.DataAtom == atom.Br {
		return "<br/>"
	}

	children := simplifyChildren(n)
	if !allowedTags[n.DataAtom] {
		return children
	}
	if strings.TrimSpace(children) == "" {
		return ""
	}
	return "<" + n.Data + ">" + children + "</" + n.Data + ">"
}

func simplifyChildren(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(SimplifyNode(c))
	}
	return b.String()
}
