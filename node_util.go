package htmlmin

import "golang.org/x/net/html"

// attrValue returns the raw value of the unnamespaced attribute key on n,
// and whether it was present at all.
func attrValue(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasAttr(n *html.Node, key string) bool {
	_, ok := attrValue(n, key)
	return ok
}

// elementAttrMap snapshots an element's attributes as a plain name->value
// map, used by dispatch rules that need to read a sibling attribute (e.g.
// <input accept> depends on the element's own "type").
func elementAttrMap(n *html.Node) map[string]string {
	m := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		if a.Namespace == "" {
			m[a.Key] = a.Val
		}
	}
	return m
}

// detachChildren unlinks every child of n and returns them as a slice,
// preserving order. n is left childless.
func detachChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		out = append(out, c)
		c = next
	}
	return out
}

// attachChildren appends children to n in order, relinking sibling/parent
// pointers.
func attachChildren(n *html.Node, children []*html.Node) {
	for _, c := range children {
		n.AppendChild(c)
	}
}
