package htmlmin

import "golang.org/x/net/html"

// forceHTML5Doctype implements spec §4.6: when enabled, the document's
// DocumentType node (if any) is rewritten to the bare HTML5 form
// ("<!DOCTYPE html>": name "html", no public id, no system id) regardless of
// what the source declared. golang.org/x/net/html represents a doctype's
// public/system identifiers as Attr entries keyed "public" and "system" on
// the html.DoctypeNode; clearing Attr drops both at once.
func forceHTML5Doctype(doc *html.Node) {
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.DoctypeNode {
			c.Data = "html"
			c.Attr = nil
			return
		}
	}
}
