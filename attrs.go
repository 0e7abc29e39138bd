package htmlmin

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// minifyAttributes implements spec §4.2 end to end for one element: the
// per-attribute dispatch rewrite, default-value elimination, empty-value
// elimination, duplicate elimination and (optionally) frequency sorting.
func (m *minifier) minifyAttributes(n *html.Node) {
	if n.Type != html.ElementNode || len(n.Attr) == 0 {
		if n.Type == html.ElementNode && m.opts.SortAttributes {
			m.sortAttrs(n)
		}
		return
	}

	ns, tag := n.Namespace, n.Data
	elemAttrs := elementAttrMap(n)

	rewritten := make([]html.Attribute, len(n.Attr))
	for i, a := range n.Attr {
		a.Val = m.minifyOneAttribute(ns, tag, a.Key, a.Val, elemAttrs)
		rewritten[i] = a
	}
	n.Attr = rewritten

	m.eliminateDefaults(n, ns, tag)
	if m.opts.RemoveEmptyAttributes {
		eliminateEmptyAttrs(n)
	}
	dedupeAttrs(n)

	if m.opts.SortAttributes {
		m.sortAttrs(n)
	}
}

// minifyOneAttribute applies the per-dispatch rewrite of spec §4.2 step 2 (and
// the value-changing half of step 1, which in this Go model collapses into
// the boolean/crossorigin rules below — see DESIGN.md on the "absent vs
// empty" simplification golang.org/x/net/html forces on us).
func (m *minifier) minifyOneAttribute(ns, tag, name, val string, elemAttrs map[string]string) string {
	if ns == nsHTML && tag == "iframe" && name == "srcdoc" {
		if out, ok := m.opts.htmlMinifier()(val, m.opts); ok {
			return out
		}
		return val
	}

	if m.opts.NormalizeAttributes && name == "type" && ns == nsHTML {
		switch tag {
		case "style", "link", "script", "input":
			val = strings.ToLower(strings.TrimSpace(val))
		}
	}

	// spec §4.2 step 1(b): an empty crossorigin on a CORS-capable element is
	// already absent-equivalent (the attribute's missing-value default is
	// "anonymous"); collapse it the same way the "== anonymous" case below
	// does, gated on normalize_attributes just like the original
	// (swc_html_minifier/src/lib.rs: "_ if self.options.normalize_attributes
	// && self.is_crossorigin_attribute(...) && value.is_empty() => None").
	if m.opts.NormalizeAttributes && name == "crossorigin" && ns == nsHTML && corsCapableElements[tag] &&
		strings.TrimSpace(val) == "" {
		return ""
	}

	if m.opts.NormalizeAttributes && name == "crossorigin" && ns == nsHTML && corsCapableElements[tag] &&
		strings.EqualFold(strings.TrimSpace(val), "anonymous") {
		return ""
	}

	if m.opts.CollapseBooleanAttributes && isBooleanAttribute(ns, tag, name) {
		return ""
	}

	if isEventHandlerAttribute(name) {
		v := strings.TrimSpace(val)
		if m.opts.NormalizeAttributes {
			v = strings.TrimPrefix(v, "javascript:")
		}
		if m.opts.MinifyJS {
			if out, ok := m.opts.jsMinifier()(v, false, true); ok {
				v = out
			}
		}
		return v
	}

	if ns == nsHTML && name == "contenteditable" && strings.EqualFold(strings.TrimSpace(val), "true") {
		return ""
	}

	if isSemicolonSeparatedSVGAttr(ns, tag, name) {
		items := strings.Split(val, ";")
		for i, it := range items {
			items[i] = collapseWhitespaceRuns(strings.TrimSpace(it))
		}
		return strings.Join(items, ";")
	}

	if ns == nsHTML && tag == "meta" && name == "content" &&
		strings.EqualFold(strings.TrimSpace(elemAttrs["http-equiv"]), "content-security-policy") {
		segs := strings.Split(val, ";")
		for i, s := range segs {
			segs[i] = collapseWhitespaceRuns(strings.TrimSpace(s))
		}
		return strings.TrimRight(strings.Join(segs, ";"), ";")
	}

	if m.opts.SortSpaceSeparatedAttributeValues && isUnorderedSetAttr(ns, tag, name) {
		items := splitHTMLWhitespace(val)
		sort.Strings(items)
		return strings.Join(items, " ")
	}

	if m.opts.NormalizeAttributes && isSpaceSeparatedAttr(ns, tag, name) {
		items := splitHTMLWhitespace(val)
		return strings.Join(items, " ")
	}

	if kind, ok := commaSeparatedAttr(ns, tag, name, elemAttrs); ok && m.opts.NormalizeAttributes {
		items := strings.Split(val, ",")
		for i, it := range items {
			items[i] = m.transformCommaItem(it, kind)
		}
		out := strings.Join(items, ",")
		if name == "media" && m.opts.MinifyCSS {
			if o, ok2 := m.opts.cssMinifier()(out, CSSModeMediaQueryList); ok2 {
				out = o
			}
		}
		return out
	}

	if name == "media" && m.opts.MinifyCSS {
		if o, ok := m.opts.cssMinifier()(val, CSSModeMediaQueryList); ok {
			return o
		}
	}

	if isTrimableAttr(ns, tag, name) {
		if name == "style" && m.opts.MinifyCSS {
			if o, ok := m.opts.cssMinifier()(val, CSSModeDeclarationList); ok {
				return o
			}
			return val
		}
		if m.opts.MinifyJS && isJSURLAttr(ns, tag, name) {
			trimmed := strings.TrimSpace(val)
			if strings.HasPrefix(strings.ToLower(trimmed), "javascript:") {
				body := trimmed[len("javascript:"):]
				if o, ok := m.opts.jsMinifier()(body, false, true); ok {
					return "javascript:" + o
				}
				return "javascript:" + body
			}
		}
		if m.opts.NormalizeAttributes {
			return strings.TrimSpace(val)
		}
		return val
	}

	if kind, ok := m.matchAdditionalAttribute(name); ok {
		if out, ok2 := m.dispatchAdditional(val, kind); ok2 {
			return out
		}
	}

	return val
}

func (m *minifier) transformCommaItem(item string, kind commaItemTransform) string {
	switch kind {
	case commaItemSourceSize:
		if o, ok := m.opts.cssMinifier()(item, CSSModeSourceSize); ok {
			return o
		}
		return strings.TrimSpace(item)
	case commaItemCollapseWS:
		return collapseWhitespaceRuns(strings.TrimSpace(item))
	case commaItemStripWS:
		return stripAllWhitespace(item)
	default:
		return strings.TrimSpace(item)
	}
}

func (m *minifier) matchAdditionalAttribute(name string) (AttrMinifierKind, bool) {
	for _, add := range m.opts.MinifyAdditionalAttributes {
		if add.Pattern != nil && add.Pattern.MatchString(name) {
			return add.Kind, true
		}
	}
	return 0, false
}

func (m *minifier) dispatchAdditional(val string, kind AttrMinifierKind) (string, bool) {
	switch kind {
	case AttrKindJS:
		return m.opts.jsMinifier()(val, false, true)
	case AttrKindJSModule:
		return m.opts.jsMinifier()(val, true, true)
	case AttrKindJSON:
		return m.opts.jsonMinifier()(val)
	case AttrKindCSS:
		return m.opts.cssMinifier()(val, CSSModeDeclarationList)
	case AttrKindHTML:
		return m.opts.htmlMinifier()(val, m.opts)
	}
	return val, false
}

// eliminateDefaults implements spec §4.2 step 3.
func (m *minifier) eliminateDefaults(n *html.Node, ns, tag string) {
	mode := m.opts.RemoveRedundantAttributes
	if mode == RedundantNone {
		return
	}
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if d, ok := lookupAttrDefault(ns, tag, a.Key); ok &&
			strings.EqualFold(strings.TrimSpace(a.Val), d.value) {
			drop := false
			switch mode {
			case RedundantAll:
				drop = !d.inherited
			case RedundantSmart:
				drop = !d.inherited || d.deprecated || d.metadata || ns == nsSVG
			}
			if drop {
				continue
			}
		}
		out = append(out, a)
	}
	n.Attr = out
}

// eliminateEmptyAttrs implements spec §4.2 step 4.
func eliminateEmptyAttrs(n *html.Node) {
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Val == "" {
			switch {
			case a.Key == "id", a.Key == "class", a.Key == "style":
				continue
			case isEventHandlerAttribute(a.Key):
				continue
			}
		}
		out = append(out, a)
	}
	n.Attr = out
}

// dedupeAttrs implements spec §4.2 step 5: for any pair (i<j) naming the same
// (namespace, key), the later one is removed.
func dedupeAttrs(n *html.Node) {
	seen := make(map[string]bool, len(n.Attr))
	out := n.Attr[:0]
	for _, a := range n.Attr {
		key := a.Namespace + "\x00" + a.Key
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, a)
	}
	n.Attr = out
}

// sortAttrs implements spec §4.3: (freq[name] desc, name desc), the observed
// tie-break preserved verbatim (spec §9 design note — not "fixed").
func (m *minifier) sortAttrs(n *html.Node) {
	freq := m.freq
	attrs := n.Attr
	sort.SliceStable(attrs, func(i, j int) bool {
		fi, fj := freq[attrs[i].Key], freq[attrs[j].Key]
		if fi != fj {
			return fi > fj
		}
		return attrs[i].Key > attrs[j].Key
	})
}
