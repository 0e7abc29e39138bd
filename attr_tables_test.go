package htmlmin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsBooleanAttribute(t *testing.T) {
	require.True(t, isBooleanAttribute(nsHTML, "input", "disabled"))
	require.True(t, isBooleanAttribute(nsHTML, "video", "loop"))
	require.False(t, isBooleanAttribute(nsSVG, "rect", "disabled"))
	require.False(t, isBooleanAttribute(nsHTML, "div", "href"))
}

func TestLookupAttrDefault(t *testing.T) {
	d, ok := lookupAttrDefault(nsHTML, "input", "type")
	require.True(t, ok)
	require.Equal(t, "text", d.value)

	_, ok = lookupAttrDefault(nsHTML, "input", "placeholder")
	require.False(t, ok)

	d, ok = lookupAttrDefault(nsSVG, "rect", "fill")
	require.True(t, ok, "svg wildcard fallback should resolve fill")
	require.Equal(t, "black", d.value)
}

func TestIsEventHandlerAttribute(t *testing.T) {
	require.True(t, isEventHandlerAttribute("onclick"))
	require.True(t, isEventHandlerAttribute("onpointerdown"))
	require.False(t, isEventHandlerAttribute("class"))
}

func TestIsUnorderedSetAttr(t *testing.T) {
	require.True(t, isUnorderedSetAttr(nsHTML, "a", "class"))
	require.True(t, isUnorderedSetAttr(nsHTML, "a", "rel"))
	require.False(t, isUnorderedSetAttr(nsHTML, "div", "rel"))
	require.True(t, isUnorderedSetAttr(nsHTML, "iframe", "sandbox"))
}

func TestCommaSeparatedAttr(t *testing.T) {
	kind, ok := commaSeparatedAttr(nsHTML, "img", "srcset", nil)
	require.True(t, ok)
	require.Equal(t, commaItemTrim, kind)

	kind, ok = commaSeparatedAttr(nsHTML, "img", "sizes", nil)
	require.True(t, ok)
	require.Equal(t, commaItemSourceSize, kind)

	_, ok = commaSeparatedAttr(nsHTML, "div", "sizes", nil)
	require.False(t, ok)
}

func TestSemicolonSeparatedSVGAttr(t *testing.T) {
	require.True(t, isSemicolonSeparatedSVGAttr(nsSVG, "animate", "values"))
	require.False(t, isSemicolonSeparatedSVGAttr(nsHTML, "animate", "values"))
	require.False(t, isSemicolonSeparatedSVGAttr(nsSVG, "rect", "values"))
}

func TestIsTrimableAttr(t *testing.T) {
	require.True(t, isTrimableAttr(nsHTML, "a", "href"))
	require.True(t, isTrimableAttr(nsHTML, "div", "style"))
	require.False(t, isTrimableAttr(nsHTML, "div", "data-x"))
}
