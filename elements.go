package htmlmin

import "strings"

// Namespace mirrors the values golang.org/x/net/html.Node.Namespace takes on
// for foreign content: "" for HTML, "svg" and "math" for the two foreign trees.
const (
	nsHTML = ""
	nsSVG  = "svg"
	nsMath = "math"
)

// Display is the CSS display category used by the children minifier's
// left/right trim predicate (spec §4.1.2).
type Display int

const (
	// DisplayNone marks undisplayed metadata elements and comments.
	DisplayNone Display = iota
	DisplayBlock
	DisplayInline
	// DisplayInternalTable covers table-row-group/row/cell-like internal boxes.
	DisplayInternalTable
)

// htmlPreTags is the fixed set of HTML elements whose white-space mode is Pre
// (spec GLOSSARY: "White-space mode"). This is a literal, closed list per the
// spec, not the real CSS white-space property (which does not treat <code> as
// preformatted) — Pre-safety (§8 invariant 3) applies to exactly these tags.
var htmlPreTags = map[string]bool{
	"textarea":  true,
	"code":      true,
	"pre":       true,
	"listing":   true,
	"plaintext": true,
	"xmp":       true,
}

// htmlMetadataContentTags is the "Displayed element" exclusion set from the
// GLOSSARY: {base, command, link, meta, style, title, template}.
var htmlMetadataContentTags = map[string]bool{
	"base":     true,
	"command":  true,
	"link":     true,
	"meta":     true,
	"style":    true,
	"title":    true,
	"template": true,
}

// htmlDisplayNoneTags is the CSS UA-stylesheet display:none set, used for the
// Display classification (distinct from, but overlapping, the "displayed
// element" metadata-content set above).
var htmlDisplayNoneTags = map[string]bool{
	"area": true, "base": true, "basefont": true, "bgsound": true,
	"command": true, "datalist": true, "head": true, "link": true,
	"meta": true, "noembed": true, "noframes": true, "noscript": true,
	"param": true, "script": true, "style": true, "template": true,
	"title": true, "track": true, "source": true,
}

var htmlDisplayBlockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"body": true, "center": true, "details": true, "dialog": true,
	"dd": true, "div": true, "dl": true, "dt": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hgroup": true, "hr": true, "html": true, "legend": true,
	"li": true, "listing": true, "main": true, "menu": true, "nav": true,
	"ol": true, "p": true, "plaintext": true, "pre": true, "section": true,
	"summary": true, "ul": true, "xmp": true, "frameset": true, "frame": true,
}

var htmlDisplayInternalTableTags = map[string]bool{
	"caption": true, "col": true, "colgroup": true, "table": true,
	"tbody": true, "td": true, "tfoot": true, "th": true, "thead": true,
	"tr": true,
}

// svgRenderingElements are the SVG tags to which the ordinary HTML display
// rule applies (spec §4.1). All other SVG elements are forced-trim (Inline
// with trim forced on) unless the policy is None/OnlyMetadata.
var svgRenderingElements = map[string]bool{
	"a": true, "circle": true, "ellipse": true, "foreignObject": true,
	"g": true, "image": true, "line": true, "path": true, "polygon": true,
	"polyline": true, "rect": true, "svg": true, "switch": true,
	"symbol": true, "text": true, "textPath": true, "tspan": true, "use": true,
}

// customElementPseudoTags are the well-known hyphenated tag names that are
// NOT custom elements for the purposes of the left-trim-blocking rule.
var customElementPseudoTags = map[string]bool{
	"annotation-xml":   true,
	"color-profile":    true,
	"font-face":        true,
	"font-face-src":    true,
	"font-face-uri":    true,
	"font-face-format": true,
	"font-face-name":   true,
	"missing-glyph":    true,
}

// isCustomElement reports whether (ns, tag) names a custom element: a
// lowercase name containing '-' that is not a well-known pseudo-element.
func isCustomElement(ns, tag string) bool {
	if ns != nsHTML {
		return false
	}
	if !strings.Contains(tag, "-") {
		return false
	}
	if customElementPseudoTags[tag] {
		return false
	}
	if strings.HasPrefix(tag, "font-face") {
		return false
	}
	return strings.ToLower(tag) == tag
}

// isPreWhitespace reports whether an HTML element has Pre white-space mode.
func isPreWhitespace(ns, tag string) bool {
	return ns == nsHTML && htmlPreTags[tag]
}

// isDisplayedElement implements the GLOSSARY "Displayed element" predicate.
func isDisplayedElement(ns, tag string) bool {
	switch ns {
	case nsHTML:
		return !htmlMetadataContentTags[tag]
	case nsSVG:
		return tag != "style"
	default:
		return true
	}
}

// isMetadataElement implements the GLOSSARY "Metadata element" predicate: any
// undisplayed element plus script and noscript.
func isMetadataElement(ns, tag string) bool {
	if !isDisplayedElement(ns, tag) {
		return true
	}
	return ns == nsHTML && (tag == "script" || tag == "noscript")
}

// displayOf computes the Display category used by the trim predicate.
func displayOf(ns, tag string) Display {
	switch ns {
	case nsHTML:
		if htmlDisplayNoneTags[tag] {
			return DisplayNone
		}
		if htmlDisplayInternalTableTags[tag] {
			return DisplayInternalTable
		}
		if htmlDisplayBlockTags[tag] {
			return DisplayBlock
		}
		return DisplayInline
	case nsSVG:
		if tag == "style" {
			return DisplayNone
		}
		if tag == "text" || tag == "foreignObject" {
			return DisplayBlock
		}
		return DisplayInline
	default:
		return DisplayInline
	}
}

// isVoidElement reports whether an HTML element never has children/end tag.
var htmlVoidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

func isVoidElement(ns, tag string) bool {
	return ns == nsHTML && htmlVoidElements[tag]
}
