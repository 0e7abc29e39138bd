package htmlmin

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConcreteScenarios runs the worked examples from the package's design
// notes: one option combination and expected output per row.
func TestConcreteScenarios(t *testing.T) {
	cases := []struct {
		name string
		src  string
		opts *Options
		want string
	}{
		{
			name: "collapse all trims and joins interior runs",
			src:  `<p>   hello   world   </p>`,
			opts: &Options{CollapseWhitespaces: CollapseAll},
			want: `<p>hello world</p>`,
		},
		{
			name: "pre blocks collapse entirely",
			src:  `<pre>  a  b  </pre>`,
			opts: &Options{CollapseWhitespaces: CollapseAll},
			want: `<pre>  a  b  </pre>`,
		},
		{
			name: "smart leaves inline-neighbor whitespace alone",
			src:  `<div>A <span>B</span> C</div>`,
			opts: &Options{CollapseWhitespaces: CollapseSmart},
			want: `<div>A <span>B</span> C</div>`,
		},
		{
			name: "smart trims whitespace between block list items",
			src:  "<ul>\n <li>x</li>\n <li>y</li>\n</ul>",
			opts: &Options{CollapseWhitespaces: CollapseSmart},
			want: `<ul><li>x</li><li>y</li></ul>`,
		},
		{
			name: "redundant boolean value collapses to an empty value",
			src:  `<input type="text" disabled="disabled">`,
			opts: &Options{CollapseBooleanAttributes: true, RemoveRedundantAttributes: RedundantSmart},
			// golang.org/x/net/html always serializes attributes in key="val"
			// form, so the bare-word shorthand the grammar allows never
			// appears on output; collapsing still drops both the redundant
			// "type" and the attribute value, which is the byte saving that
			// matters.
			want: `<input disabled=""/>`,
		},
		{
			name: "adjacent style elements merge and minify together",
			src:  `<style>a{color:red}</style><style>b{color:blue}</style>`,
			opts: &Options{MergeMetadataElements: true, MinifyCSS: true},
			want: `<style>a{color:red}b{color:blue}</style>`,
		},
		{
			name: "href trims and the comment child is removed",
			src:  `<a href=" x "><!--c--></a>`,
			opts: &Options{NormalizeAttributes: true, RemoveComments: true},
			want: `<a href="x"></a>`,
		},
		{
			name: "conditional comment body is minified in place",
			src:  `<!--[if IE]> <b>x</b> <![endif]-->`,
			opts: &Options{MinifyConditionalComments: true, CollapseWhitespaces: CollapseAll},
			want: `<!--[if IE]><b>x</b><![endif]-->`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := minifyFragment(t, tc.src, tc.opts)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestIdempotence checks that running the minifier twice produces no further
// change, across a representative option spread.
func TestIdempotence(t *testing.T) {
	inputs := []string{
		`<div>  <p>Hello   <b>world</b>  !</p>  </div>`,
		`<ul>\n<li>a</li>\n<li>b</li></ul>`,
		`<input type="checkbox" checked="checked" disabled>`,
		`<style>p{color:red}</style><style>p{color:red}</style>`,
		`<a HREF=" /x " class="b a">link</a>`,
	}
	optionSets := []*Options{
		DefaultOptions(),
		{CollapseWhitespaces: CollapseAll},
		{CollapseWhitespaces: CollapseSmart, NormalizeAttributes: true, SortAttributes: true},
	}

	for _, opts := range optionSets {
		for _, src := range inputs {
			once := minifyFragment(t, src, opts)
			twice := minifyFragment(t, once, opts)
			require.Equal(t, once, twice, "not idempotent for %q under %+v", src, opts)
		}
	}
}

// TestPreSafety checks that Text content inside Pre-mode elements is
// byte-identical regardless of the collapse policy.
func TestPreSafety(t *testing.T) {
	src := "<pre>  line one\n\tline  two  </pre>"
	for _, policy := range []CollapseWhitespaces{
		CollapseNone, CollapseAll, CollapseSmart, CollapseConservative,
		CollapseOnlyMetadata, CollapseAdvancedConservative,
	} {
		got := minifyFragment(t, src, &Options{CollapseWhitespaces: policy})
		require.Equal(t, src, got, "policy %v altered pre content", policy)
	}
}

// TestNoTagRewrites checks that tag names and namespaces survive the walk
// unchanged, including inside foreign (SVG) content.
func TestNoTagRewrites(t *testing.T) {
	src := `<div><svg><circle cx="1" cy="2" r="3"></circle></svg><CustomEl-Thing></CustomEl-Thing></div>`
	got := minifyFragment(t, src, DefaultOptions())
	require.Contains(t, got, "<svg>")
	require.Contains(t, got, "<circle")
	require.Contains(t, got, "<customel-thing>")
}

// TestDuplicateAttributeRemoval checks that a repeated attribute name keeps
// only its first occurrence.
func TestDuplicateAttributeRemoval(t *testing.T) {
	src := `<div id="a" id="b" class="c"></div>`
	got := minifyFragment(t, src, &Options{})
	require.Equal(t, `<div id="a" class="c"></div>`, got)
}
