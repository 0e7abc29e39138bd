package htmlmin

import (
	"strings"

	"golang.org/x/net/html"
)

// minifyText implements spec §4.4: dispatch a Text node's content to the
// appropriate sub-minifier based on its parent element.
func (m *minifier) minifyText(n *html.Node, ctx walkCtx) string {
	parent := ctx.current
	if parent == nil || parent.Type != html.ElementNode {
		return n.Data
	}
	ns, tag := parent.Namespace, parent.Data

	switch {
	case (ns == nsHTML || ns == nsSVG) && tag == "script":
		if hasAttr(parent, "src") {
			return n.Data
		}
		switch m.scriptKind(parent) {
		case ScriptKindJS:
			if m.opts.MinifyJS {
				if out, ok := m.opts.jsMinifier()(n.Data, false, false); ok {
					return out
				}
			}
		case ScriptKindJSModule:
			if m.opts.MinifyJS {
				if out, ok := m.opts.jsMinifier()(n.Data, true, false); ok {
					return out
				}
			}
		case ScriptKindJSON:
			if m.opts.MinifyJSON {
				if out, ok := m.opts.jsonMinifier()(n.Data); ok {
					return out
				}
			}
		}
		return n.Data

	case (ns == nsHTML || ns == nsSVG) && tag == "style":
		t, _ := attrValue(parent, "type")
		t = strings.ToLower(strings.TrimSpace(t))
		if (t == "" || t == "text/css") && m.opts.MinifyCSS {
			if out, ok := m.opts.cssMinifier()(n.Data, CSSModeStylesheet); ok {
				return out
			}
		}
		return n.Data

	case ns == nsHTML && tag == "title":
		return trimHTMLSpace(collapseWhitespaceRuns(n.Data), true, true)

	default:
		return n.Data
	}
}

// scriptKind classifies a <script> element's content per spec §4.4.
func (m *minifier) scriptKind(parent *html.Node) ScriptKind {
	t, _ := attrValue(parent, "type")
	t = strings.ToLower(strings.TrimSpace(t))

	if t == "" || isDefaultScriptType(t) {
		return ScriptKindJS
	}
	if t == "module" {
		return ScriptKindJSModule
	}
	switch t {
	case "application/json", "application/ld+json", "importmap", "speculationrules":
		return ScriptKindJSON
	}
	for _, add := range m.opts.MinifyAdditionalScriptsContent {
		if add.Pattern != nil && add.Pattern.MatchString(t) {
			return add.Kind
		}
	}
	return ScriptKindNone
}
