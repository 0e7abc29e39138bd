package htmlmin

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestMinifyTextScript(t *testing.T) {
	src := `<script>  const x = 1 ;  console.log( x ) ;  </script>`
	got := minifyFragment(t, src, &Options{MinifyJS: true})
	require.Equal(t, `<script>const x=1;console.log(x)</script>`, got)
}

func TestMinifyTextScriptWithSrcIsUntouched(t *testing.T) {
	src := `<script src="a.js">  const x = 1 ;  </script>`
	got := minifyFragment(t, src, &Options{MinifyJS: true})
	require.Equal(t, src, got)
}

func TestMinifyTextJSONScript(t *testing.T) {
	src := `<script type="application/json">{ "a" : 1 }</script>`
	got := minifyFragment(t, src, &Options{MinifyJSON: true})
	require.Equal(t, `<script type="application/json">{"a":1}</script>`, got)
}

func TestMinifyTextStyle(t *testing.T) {
	src := `<style>  a   {  color :  red ;  }  </style>`
	got := minifyFragment(t, src, &Options{MinifyCSS: true})
	require.Equal(t, `<style>a{color:red}</style>`, got)
}

func TestMinifyTextTitleCollapsesWhitespace(t *testing.T) {
	src := `<title>  Hello   World  </title>`
	got := minifyFragment(t, src, &Options{})
	require.Equal(t, `<title>Hello World</title>`, got)
}

func TestScriptKindClassification(t *testing.T) {
	m := &minifier{opts: DefaultOptions()}

	plain := &html.Node{Type: html.ElementNode, Data: "script"}
	require.Equal(t, ScriptKindJS, m.scriptKind(plain))

	module := &html.Node{Type: html.ElementNode, Data: "script", Attr: []html.Attribute{{Key: "type", Val: "module"}}}
	require.Equal(t, ScriptKindJSModule, m.scriptKind(module))

	ld := &html.Node{Type: html.ElementNode, Data: "script", Attr: []html.Attribute{{Key: "type", Val: "application/ld+json"}}}
	require.Equal(t, ScriptKindJSON, m.scriptKind(ld))

	unknown := &html.Node{Type: html.ElementNode, Data: "script", Attr: []html.Attribute{{Key: "type", Val: "text/x-unknown"}}}
	require.Equal(t, ScriptKindNone, m.scriptKind(unknown))
}
