package htmlmin

import (
	"strings"
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/js"
	"github.com/tdewolff/minify/v2/json"
	"golang.org/x/net/html"
)

// sharedMinifier is built once: tdewolff's minify.M is safe for concurrent
// use once its AddFunc registrations are complete.
var sharedMinifier = sync.OnceValue(func() *minify.M {
	m := minify.New()
	m.AddFunc("text/css", css.Minify)
	m.AddFunc("application/javascript", js.Minify)
	m.AddFunc("application/json", json.Minify)
	return m
})

// DefaultJSMinifier wraps github.com/tdewolff/minify/v2/js. The isModule and
// isAttribute flags are not needed by tdewolff's parser (it infers module
// syntax from the source and always allows a top-level return), but are kept
// in the signature so callers can swap in a minifier that does need them.
func DefaultJSMinifier(src string, isModule, isAttribute bool) (string, bool) {
	out, err := sharedMinifier().String("application/javascript", src)
	if err != nil {
		return "", false
	}
	return strings.ReplaceAll(out, "</script>", "<\\/script>"), true
}

// DefaultCSSMinifier wraps github.com/tdewolff/minify/v2/css for all four
// CSS grammar productions the spec dispatches into. tdewolff's css.Minify
// parses a stylesheet or a standalone declaration list equally well; for the
// MediaQueryList and SourceSize modes (which it has no dedicated grammar
// for) we fall back to whitespace normalization, which is sufficient to
// satisfy the spec's "collapse whitespace inside the value" requirement.
func DefaultCSSMinifier(src string, mode CSSMode) (string, bool) {
	switch mode {
	case CSSModeMediaQueryList, CSSModeSourceSize:
		return collapseWhitespaceRuns(strings.TrimSpace(src)), true
	default:
		out, err := sharedMinifier().String("text/css", src)
		if err != nil {
			return "", false
		}
		return out, true
	}
}

// DefaultJSONMinifier wraps github.com/tdewolff/minify/v2/json.
func DefaultJSONMinifier(src string) (string, bool) {
	out, err := sharedMinifier().String("application/json", src)
	if err != nil {
		return "", false
	}
	return out, true
}

// minifyHTMLFragmentString implements the default HTMLMinifierFunc: parse src
// as an HTML fragment under a synthetic "template" context element (the
// template insertion mode accepts content — table rows, options, etc. — that
// would otherwise be foster-parented or dropped under a plain "div"), minify
// the resulting nodes in place, and re-serialize. Used for iframe[srcdoc]
// values and conditional-comment bodies (spec §4.5).
func minifyHTMLFragmentString(src string, opts *Options) (string, bool) {
	ctxElem := &html.Node{Type: html.ElementNode, Data: "template"}
	nodes, err := html.ParseFragment(strings.NewReader(src), ctxElem)
	if err != nil {
		opts.logger().Debug("minify fragment: parse failed", "error", err)
		return "", false
	}
	root := &html.Node{Type: html.ElementNode, Data: "template"}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	MinifyDocumentFragment(root, ctxElem, opts)

	var b strings.Builder
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			opts.logger().Debug("minify fragment: render failed", "error", err)
			return "", false
		}
	}
	return b.String(), true
}
