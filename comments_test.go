package htmlmin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinifyCommentConditional(t *testing.T) {
	src := `<!--[if lt IE 9]> <link rel="stylesheet" href="ie8.css"> <![endif]-->`
	got := minifyFragment(t, src, &Options{MinifyConditionalComments: true, CollapseWhitespaces: CollapseAll})
	require.Equal(t, `<!--[if lt IE 9]><link rel="stylesheet" href="ie8.css"/><![endif]-->`, got)
}

func TestMinifyCommentMalformedLeftIntact(t *testing.T) {
	src := `<!--[if IE] no closing marker here-->`
	got := minifyFragment(t, src, &Options{MinifyConditionalComments: true})
	require.Equal(t, src, got)
}

func TestMinifyCommentNonConditionalLeftIntact(t *testing.T) {
	src := `<!-- just a regular comment -->`
	got := minifyFragment(t, src, &Options{MinifyConditionalComments: true})
	require.Equal(t, src, got)
}

func TestMinifyCommentOptedOutEntirely(t *testing.T) {
	src := `<!--[if IE]> <b>x</b> <![endif]-->`
	got := minifyFragment(t, src, &Options{MinifyConditionalComments: false})
	require.Equal(t, src, got)
}
