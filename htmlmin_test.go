package htmlmin

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// minifyFragment parses src as a <body> fragment, minifies it under opts
// (DefaultOptions() if nil) and returns the re-serialized children.
func minifyFragment(t *testing.T, src string, opts *Options) string {
	t.Helper()

	ctxElem := &html.Node{Type: html.ElementNode, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(src), ctxElem)
	require.NoError(t, err)

	root := &html.Node{Type: html.ElementNode, Data: "body"}
	for _, n := range nodes {
		root.AppendChild(n)
	}

	MinifyDocumentFragment(root, ctxElem, opts)

	var buf bytes.Buffer
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		require.NoError(t, html.Render(&buf, c))
	}
	return buf.String()
}

// parseDocument parses src as a full HTML document.
func parseDocument(t *testing.T, src string) (*html.Node, error) {
	t.Helper()
	return html.Parse(strings.NewReader(src))
}

// bodyText finds the document's <body> element and returns the concatenated
// text content of its descendants.
func bodyText(t *testing.T, doc *html.Node) string {
	t.Helper()
	var body *html.Node
	var find func(*html.Node)
	find = func(n *html.Node) {
		if body != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == "body" {
			body = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			find(c)
		}
	}
	find(doc)
	require.NotNil(t, body, "no <body> element found")

	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(body)
	return b.String()
}
