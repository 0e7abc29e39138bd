package htmlmin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMergeMetadataElementsScript(t *testing.T) {
	src := `<script>a();</script><script>b();</script>`
	got := minifyFragment(t, src, &Options{MergeMetadataElements: true})
	require.Equal(t, `<script>a();;b();</script>`, got)
}

func TestMergeMetadataElementsSkipsWhenSrcPresent(t *testing.T) {
	src := `<script src="a.js"></script><script>b();</script>`
	got := minifyFragment(t, src, &Options{MergeMetadataElements: true})
	require.Equal(t, `<script src="a.js"></script><script>b();</script>`, got)
}

func TestMergeMetadataElementsRespectsDifferingAttrs(t *testing.T) {
	src := `<style media="screen">a{color:red}</style><style media="print">b{color:blue}</style>`
	got := minifyFragment(t, src, &Options{MergeMetadataElements: true})
	require.Equal(t, src, got)
}

func TestRemoveEmptyMetadataElements(t *testing.T) {
	src := `<div><style></style><p>x</p></div>`
	got := minifyFragment(t, src, &Options{RemoveEmptyMetadataElements: true})
	require.Equal(t, `<div><p>x</p></div>`, got)
}

// TestBodyTrimStripsOuterEdges exercises spec §4.1.3 in isolation: under the
// Conservative policy, ordinary per-text trimming never fires (it only
// collapses runs), so any edge trimming visible on <body> must come from the
// dedicated body-trim pass.
func TestBodyTrimStripsOuterEdges(t *testing.T) {
	doc, err := parseDocument(t, "<html><body>  hello  </body></html>")
	require.NoError(t, err)

	MinifyDocument(doc, &Options{CollapseWhitespaces: CollapseConservative})

	require.Equal(t, "hello", bodyText(t, doc))
}
