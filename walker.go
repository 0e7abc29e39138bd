// Package htmlmin minifies a parsed golang.org/x/net/html document or
// document fragment in place: it rewrites the tree to be byte-smaller while
// preserving its rendered meaning, driven by the CSS display model and the
// HTML white-space model.
package htmlmin

import "golang.org/x/net/html"

// minifier holds the read-only options plus the optional P1 attribute
// frequency census; it carries no other state between calls (§5: a minifier
// instance is disposable per document).
type minifier struct {
	opts *Options
	freq map[string]int
}

// walkCtx is the state threaded down the tree during the minifying walk
// (spec §4.7): the innermost enclosing element and whether any ancestor (or
// the node itself) has Pre white-space mode.
type walkCtx struct {
	current         *html.Node
	descendantOfPre bool
}

// MinifyDocument rewrites doc (a *html.Node of Type html.DocumentNode, as
// returned by html.Parse) in place.
func MinifyDocument(doc *html.Node, opts *Options) {
	if opts == nil {
		opts = DefaultOptions()
	}
	m := &minifier{opts: opts}
	if opts.SortAttributes {
		m.freq = map[string]int{}
		m.census(doc)
	}

	if opts.ForceSetHTML5Doctype {
		forceHTML5Doctype(doc)
	}

	ctx := walkCtx{}
	m.minifyChildrenOf(doc, ctx)
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		m.visit(c, ctx)
	}
}

// MinifyDocumentFragment rewrites fragment's children in place. contextElement
// supplies the namespace, tag name and pre-ancestry the fragment's top-level
// nodes are parsed and interpreted under (spec §3, §6).
func MinifyDocumentFragment(fragment *html.Node, contextElement *html.Node, opts *Options) {
	if opts == nil {
		opts = DefaultOptions()
	}
	m := &minifier{opts: opts}
	if opts.SortAttributes {
		m.freq = map[string]int{}
		m.census(fragment)
	}

	ctx := walkCtx{current: contextElement}
	if contextElement != nil {
		ctx.descendantOfPre = isPreWhitespace(contextElement.Namespace, contextElement.Data)
	}
	m.minifyChildrenOf(fragment, ctx)
	for c := fragment.FirstChild; c != nil; c = c.NextSibling {
		m.visit(c, ctx)
	}
}

// census implements P1: a full pass tallying how often each attribute name
// occurs, used by the P2 sort-by-frequency attribute ordering (spec §4.3).
func (m *minifier) census(n *html.Node) {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			m.freq[a.Key]++
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		m.census(c)
	}
}

// visit dispatches on node type: the tagged-variant dispatch the design notes
// (§9) call for, with no dynamic inheritance.
func (m *minifier) visit(n *html.Node, parent walkCtx) {
	switch n.Type {
	case html.ElementNode:
		m.visitElement(n, parent)
	case html.TextNode:
		n.Data = m.minifyText(n, parent)
	case html.CommentNode:
		m.minifyComment(n)
	}
}

// visitElement implements the per-element visit order from spec §4.7: clone
// header into current_element, update descendant_of_pre, rewrite the child
// list, recurse, body-trim, rewrite attributes, restore descendant_of_pre
// (implicit: descendantOfPre lives in a value-typed ctx, so the caller's copy
// is untouched by construction).
func (m *minifier) visitElement(n *html.Node, parent walkCtx) {
	ctx := walkCtx{
		current:         n,
		descendantOfPre: parent.descendantOfPre || isPreWhitespace(n.Namespace, n.Data),
	}

	m.minifyChildrenOf(n, ctx)

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		m.visit(c, ctx)
	}

	if n.Namespace == nsHTML && n.Data == "body" && m.opts.CollapseWhitespaces != CollapseNone {
		m.bodyTrim(n)
	}

	m.minifyAttributes(n)
}
