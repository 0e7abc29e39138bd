package htmlmin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollapseWhitespaceRuns(t *testing.T) {
	require.Equal(t, " a b ", collapseWhitespaceRuns("  a\t\nb \f"))
	require.Equal(t, "", collapseWhitespaceRuns(""))
	require.Equal(t, "abc", collapseWhitespaceRuns("abc"))
}

func TestTrimHTMLSpace(t *testing.T) {
	require.Equal(t, "a  b", trimHTMLSpace("  a  b  ", true, true))
	require.Equal(t, "a  b  ", trimHTMLSpace("  a  b  ", true, false))
	require.Equal(t, "  a  b", trimHTMLSpace("  a  b  ", false, true))
	require.Equal(t, "  a  b  ", trimHTMLSpace("  a  b  ", false, false))
}

func TestIsAllWhitespace(t *testing.T) {
	require.True(t, isAllWhitespace(" \t\n\r\f"))
	require.True(t, isAllWhitespace(""))
	require.False(t, isAllWhitespace(" a "))
}

func TestStripAllWhitespace(t *testing.T) {
	require.Equal(t, "abc", stripAllWhitespace(" a\tb\nc "))
}

func TestSplitHTMLWhitespace(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, splitHTMLWhitespace("  a \t b\nc  "))
	require.Nil(t, splitHTMLWhitespace("   "))
}
