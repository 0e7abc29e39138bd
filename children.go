package htmlmin

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// wsPolicy is the (collapse, trim) pair spec §4.1 derives from the parent
// element and the CollapseWhitespaces option. computeTrim uses trim directly
// for script/style and non-rendering SVG parents; for ordinary parents,
// Smart/OnlyMetadata/AdvancedConservative compute their own per-text trim
// decision via allowTrim.
type wsPolicy struct {
	collapse bool
	trim     bool
}

func (m *minifier) whitespacePolicy(ns, tag string, descendantOfPre bool) wsPolicy {
	if descendantOfPre {
		return wsPolicy{collapse: false, trim: false}
	}

	policy := m.opts.CollapseWhitespaces
	collapseEnabled := policy != CollapseNone && policy != CollapseOnlyMetadata

	if (ns == nsHTML || ns == nsSVG) && (tag == "script" || tag == "style") {
		return wsPolicy{collapse: false, trim: policy != CollapseNone && policy != CollapseOnlyMetadata}
	}

	if ns == nsSVG && !svgRenderingElements[tag] {
		forced := policy != CollapseNone && policy != CollapseOnlyMetadata
		return wsPolicy{collapse: forced, trim: forced}
	}

	return wsPolicy{collapse: collapseEnabled, trim: policy == CollapseAll}
}

// minifyChildrenOf rewrites parent's children list per spec §4.1: adjacent
// text merge, per-child retention, then empty-metadata filtering.
func (m *minifier) minifyChildrenOf(parent *html.Node, ctx walkCtx) {
	ns, tag := parent.Namespace, parent.Data
	pol := m.whitespacePolicy(ns, tag, ctx.descendantOfPre)
	collapsingPolicy := m.opts.CollapseWhitespaces != CollapseNone

	children := detachChildren(parent)
	kept := make([]*html.Node, 0, len(children))

	isHeadOrHTMLOrDoc := (ns == nsHTML && (tag == "html" || tag == "head")) || parent.Type == html.DocumentNode

	for i, c := range children {
		switch c.Type {
		case html.CommentNode:
			if m.keepComment(c) {
				kept = append(kept, c)
			}

		case html.ElementNode:
			if m.opts.MergeMetadataElements && len(kept) > 0 {
				if prev := kept[len(kept)-1]; prev.Type == html.ElementNode && mergeMetadataElements(prev, c) {
					continue
				}
			}
			kept = append(kept, c)

		case html.TextNode:
			if c.Data == "" {
				continue
			}
			if isHeadOrHTMLOrDoc && pol.collapse && isAllWhitespace(c.Data) {
				continue
			}
			if collapsingPolicy {
				c.Data = m.processText(c, i, children, pol, ns, tag, ctx.descendantOfPre)
				if c.Data == "" {
					continue
				}
			}
			if len(kept) > 0 {
				if prevText := kept[len(kept)-1]; prevText.Type == html.TextNode {
					prevText.Data += c.Data
					continue
				}
			}
			kept = append(kept, c)

		default:
			kept = append(kept, c)
		}
	}

	if m.opts.RemoveEmptyMetadataElements {
		kept = filterEmptyMetadata(kept)
	}

	attachChildren(parent, kept)
}

func (m *minifier) keepComment(c *html.Node) bool {
	if !m.opts.RemoveComments {
		return true
	}
	for _, re := range m.opts.PreserveComments {
		if re.MatchString(c.Data) {
			return true
		}
	}
	return false
}

func filterEmptyMetadata(kept []*html.Node) []*html.Node {
	out := kept[:0]
	for _, n := range kept {
		if n.Type == html.ElementNode && isMetadataElement(n.Namespace, n.Data) &&
			len(n.Attr) == 0 && n.FirstChild == nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// processText computes the trimmed/collapsed data for one Text child at
// index idx of the original (pre-filter) children slice (spec §4.1.2).
func (m *minifier) processText(c *html.Node, idx int, children []*html.Node, pol wsPolicy, parentNS, parentTag string, descendantOfPre bool) string {
	left, right := m.computeTrim(idx, children, parentNS, parentTag, descendantOfPre, pol)
	data := trimHTMLSpace(c.Data, left, right)
	if pol.collapse {
		data = collapseWhitespaceRuns(data)
	}
	return data
}

// computeTrim decides the (left, right) trim sides for the text at idx. It
// must agree with the category whitespacePolicy computed for this parent
// (pol), not re-derive a decision from the raw policy enum alone: Pre
// descendants never trim, and script/style/SVG-non-rendering elements trim
// symmetrically per pol.trim rather than via the neighbor-scanning logic
// allowTrim only makes sense for, which is reserved for ordinary elements.
func (m *minifier) computeTrim(idx int, children []*html.Node, parentNS, parentTag string, descendantOfPre bool, pol wsPolicy) (left, right bool) {
	if descendantOfPre {
		return false, false
	}

	if (parentNS == nsHTML || parentNS == nsSVG) && (parentTag == "script" || parentTag == "style") {
		return pol.trim, pol.trim
	}

	if parentNS == nsSVG && !svgRenderingElements[parentTag] {
		return pol.trim, pol.trim
	}

	policy := m.opts.CollapseWhitespaces
	switch policy {
	case CollapseAll:
		return true, true
	case CollapseSmart, CollapseOnlyMetadata, CollapseAdvancedConservative:
		return m.allowTrim(children, idx, -1, parentNS, parentTag, policy),
			m.allowTrim(children, idx, 1, parentNS, parentTag, policy)
	default:
		return false, false
	}
}

// blocksTrim implements the custom-element / <template> exception (spec
// §4.1.2): a custom element blocks left-trim only, <template> blocks both.
func blocksTrim(ns, tag string, isLeftSide bool) bool {
	if ns == nsHTML && tag == "template" {
		return true
	}
	return isLeftSide && isCustomElement(ns, tag)
}

// allowTrim decides whether the side `dir` (-1 = left/previous, +1 =
// right/next) of the text at idx may be trimmed, per spec §4.1.2.
func (m *minifier) allowTrim(children []*html.Node, idx, dir int, parentNS, parentTag string, policy CollapseWhitespaces) bool {
	var immediate *html.Node
	if j := idx + dir; j >= 0 && j < len(children) {
		immediate = children[j]
	}

	if immediate != nil {
		if immediate.Type == html.ElementNode && blocksTrim(immediate.Namespace, immediate.Data, dir < 0) {
			return false
		}
	} else if blocksTrim(parentNS, parentTag, dir < 0) {
		return false
	}

	d, ok := m.scanNeighbor(children, idx, dir, policy)
	if !ok {
		d = displayOf(parentNS, parentTag)
	}

	switch policy {
	case CollapseSmart:
		return d == DisplayBlock || d == DisplayInternalTable
	case CollapseOnlyMetadata, CollapseAdvancedConservative:
		return d == DisplayNone
	default:
		return false
	}
}

// scanNeighbor walks from idx in direction dir looking for the first sibling
// that determines trim behavior. Comments act as an opaque Display::None
// boundary under Smart, but are transparent (skipped) under
// OnlyMetadata/AdvancedConservative.
func (m *minifier) scanNeighbor(children []*html.Node, idx, dir int, policy CollapseWhitespaces) (Display, bool) {
	i := idx
	for {
		i += dir
		if i < 0 || i >= len(children) {
			return 0, false
		}
		c := children[i]
		if c.Type == html.CommentNode {
			if policy == CollapseOnlyMetadata || policy == CollapseAdvancedConservative {
				continue
			}
			return DisplayNone, true
		}
		return neighborDisplay(c, dir), true
	}
}

// neighborDisplay resolves the effective display category of a sibling node
// for trim purposes: text is always Inline; an undisplayed element is
// DisplayNone; a block or internal-table element is its own category;
// otherwise we drill into the element's subtree for the last (or first)
// displayed content, falling back to the element's own display category
// when its subtree is empty.
func neighborDisplay(n *html.Node, dir int) Display {
	switch n.Type {
	case html.TextNode:
		return DisplayInline
	case html.ElementNode:
		if !isDisplayedElement(n.Namespace, n.Data) {
			return DisplayNone
		}
		own := displayOf(n.Namespace, n.Data)
		if own == DisplayBlock || own == DisplayInternalTable {
			return own
		}
		if d, ok := drillDisplayedEdge(n, dir); ok {
			return d
		}
		return own
	default:
		return DisplayInline
	}
}

// drillDisplayedEdge walks into n's subtree (last child first when dir<0,
// first child first when dir>0), skipping comments and undisplayed
// subtrees, looking for the boundary content that actually renders.
func drillDisplayedEdge(n *html.Node, dir int) (Display, bool) {
	var c *html.Node
	if dir < 0 {
		c = n.LastChild
	} else {
		c = n.FirstChild
	}
	for c != nil {
		switch c.Type {
		case html.TextNode:
			if !isAllWhitespace(c.Data) {
				return DisplayInline, true
			}
		case html.ElementNode:
			if isDisplayedElement(c.Namespace, c.Data) {
				if d, ok := drillDisplayedEdge(c, dir); ok {
					return d, true
				}
				return displayOf(c.Namespace, c.Data), true
			}
		}
		if dir < 0 {
			c = c.PrevSibling
		} else {
			c = c.NextSibling
		}
	}
	return 0, false
}

// bodyTrim implements spec §4.1.3: after recursing into <body>, strip
// leading/trailing whitespace from the first/last Text descendant reached by
// descending only into Normal-whitespace elements.
func (m *minifier) bodyTrim(body *html.Node) {
	if first := edgeTextDescendant(body, -1); first != nil {
		first.Data = trimHTMLSpace(first.Data, true, false)
		if first.Data == "" {
			removeNode(first)
		}
	}
	if last := edgeTextDescendant(body, 1); last != nil {
		last.Data = trimHTMLSpace(last.Data, false, true)
		if last.Data == "" {
			removeNode(last)
		}
	}
}

// edgeTextDescendant finds the Text descendant at the edge selected by dir
// (-1 for the first Text in document order, +1 for the last), refusing to
// descend into Pre-mode elements.
func edgeTextDescendant(n *html.Node, dir int) *html.Node {
	var c *html.Node
	if dir < 0 {
		c = n.FirstChild
	} else {
		c = n.LastChild
	}
	for c != nil {
		if c.Type == html.TextNode {
			return c
		}
		if c.Type == html.ElementNode && !isPreWhitespace(c.Namespace, c.Data) {
			if t := edgeTextDescendant(c, dir); t != nil {
				return t
			}
		}
		if dir < 0 {
			c = c.NextSibling
		} else {
			c = c.PrevSibling
		}
	}
	return nil
}

func removeNode(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// mergeMetadataElements implements spec §4.1.1. On success cur's content has
// been folded into prev and the caller must drop cur from the children list.
func mergeMetadataElements(prev, cur *html.Node) bool {
	if prev.Namespace != cur.Namespace || prev.Data != cur.Data {
		return false
	}
	if prev.Namespace != nsHTML && prev.Namespace != nsSVG {
		return false
	}
	tag := prev.Data
	if tag != "style" && tag != "script" {
		return false
	}
	if tag == "script" && (hasAttr(prev, "src") || hasAttr(cur, "src")) {
		return false
	}

	if !attrMultisetEqual(normalizedMetadataAttrs(prev, tag), normalizedMetadataAttrs(cur, tag)) {
		return false
	}

	prevText, ok1 := elementTextContent(prev)
	curText, ok2 := elementTextContent(cur)
	if !ok1 || !ok2 {
		return false
	}

	var merged string
	switch {
	case prevText == "" || curText == "":
		merged = ""
	case tag == "script":
		merged = prevText + ";" + curText
	default:
		merged = prevText + curText
	}
	setElementTextContent(prev, merged)
	return true
}

func normalizedMetadataAttrs(n *html.Node, tag string) []html.Attribute {
	out := make([]html.Attribute, 0, len(n.Attr))
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == "type" {
			v := strings.ToLower(strings.TrimSpace(a.Val))
			if tag == "style" && v == "text/css" {
				continue
			}
			if tag == "script" && isDefaultScriptType(v) {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

func attrMultisetEqual(a, b []html.Attribute) bool {
	if len(a) != len(b) {
		return false
	}
	sa := append([]html.Attribute(nil), a...)
	sb := append([]html.Attribute(nil), b...)
	less := func(s []html.Attribute) func(i, j int) bool {
		return func(i, j int) bool {
			if s[i].Namespace != s[j].Namespace {
				return s[i].Namespace < s[j].Namespace
			}
			if s[i].Key != s[j].Key {
				return s[i].Key < s[j].Key
			}
			return s[i].Val < s[j].Val
		}
	}
	sort.Slice(sa, less(sa))
	sort.Slice(sb, less(sb))
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}

func elementTextContent(n *html.Node) (string, bool) {
	if n.FirstChild == nil {
		return "", true
	}
	if n.FirstChild.Type == html.TextNode && n.FirstChild.NextSibling == nil {
		return n.FirstChild.Data, true
	}
	return "", false
}

func setElementTextContent(n *html.Node, text string) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
	if text != "" {
		n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

// legacyJSMimeTypes are the "default" script MIME types that make a `type`
// attribute redundant (spec §4.1.1).
var legacyJSMimeTypes = map[string]bool{
	"":                         true,
	"text/javascript":          true,
	"application/javascript":   true,
	"application/ecmascript":   true,
	"application/x-ecmascript": true,
	"application/x-javascript": true,
	"text/ecmascript":          true,
	"text/javascript1.0":       true,
	"text/javascript1.1":       true,
	"text/javascript1.2":       true,
	"text/javascript1.3":       true,
	"text/javascript1.4":       true,
	"text/javascript1.5":       true,
	"text/jscript":             true,
	"text/livescript":          true,
	"text/x-ecmascript":        true,
	"text/x-javascript":        true,
}

func isDefaultScriptType(v string) bool {
	return legacyJSMimeTypes[v]
}
