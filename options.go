package htmlmin

import (
	"io"
	"log/slog"
	"regexp"
)

// CollapseWhitespaces selects the whitespace collapsing/trimming policy used
// by the children minifier (see children.go).
type CollapseWhitespaces int

const (
	// CollapseNone leaves all whitespace text untouched.
	CollapseNone CollapseWhitespaces = iota
	// CollapseAll collapses and trims whitespace everywhere collapsing is legal.
	CollapseAll
	// CollapseSmart trims based on the CSS display of surrounding siblings.
	CollapseSmart
	// CollapseConservative collapses runs of whitespace; apart from the
	// <body> edge trim, it does not trim.
	CollapseConservative
	// CollapseOnlyMetadata only trims whitespace adjacent to undisplayed metadata.
	CollapseOnlyMetadata
	// CollapseAdvancedConservative trims like OnlyMetadata (comments are
	// transparent for both) but also collapses runs of whitespace.
	CollapseAdvancedConservative
)

// RedundantAttributes selects how aggressively default-valued attributes are
// removed (see attrs.go).
type RedundantAttributes int

const (
	RedundantNone RedundantAttributes = iota
	RedundantSmart
	RedundantAll
)

// ScriptKind classifies the content of a <script> element.
type ScriptKind int

const (
	ScriptKindJS ScriptKind = iota
	ScriptKindJSModule
	ScriptKindJSON
	ScriptKindNone
)

// CSSMode selects the grammar production the CSS sub-minifier parses.
type CSSMode int

const (
	CSSModeStylesheet CSSMode = iota
	CSSModeDeclarationList
	CSSModeMediaQueryList
	CSSModeSourceSize
)

// AttrMinifierKind names which sub-minifier an additional attribute dispatches to.
type AttrMinifierKind int

const (
	AttrKindJS AttrMinifierKind = iota
	AttrKindJSModule
	AttrKindJSON
	AttrKindCSS
	AttrKindHTML
)

// JSMinifierFunc minifies a JS source string. isModule marks <script type=module>
// bodies; isAttribute marks event-handler-attribute bodies, where a bare
// top-level return is legal JS. ok is false when the source could not be
// minified, in which case callers must leave the original text untouched —
// this is the Go shape of the spec's Option<String> sub-minifier contract.
type JSMinifierFunc func(src string, isModule, isAttribute bool) (out string, ok bool)

// CSSMinifierFunc minifies a CSS source string parsed under the given mode.
type CSSMinifierFunc func(src string, mode CSSMode) (out string, ok bool)

// JSONMinifierFunc minifies a JSON source string.
type JSONMinifierFunc func(src string) (out string, ok bool)

// HTMLMinifierFunc recursively minifies an HTML fragment string, used for
// iframe[srcdoc] values and conditional-comment bodies.
type HTMLMinifierFunc func(src string, opts *Options) (out string, ok bool)

// AdditionalAttributeMatcher routes attributes whose name matches Pattern (and
// that the built-in tables do not already handle) to the named sub-minifier.
type AdditionalAttributeMatcher struct {
	Pattern *regexp.Regexp
	Kind    AttrMinifierKind
}

// AdditionalScriptMatcher routes <script type="..."> bodies whose type matches
// Pattern to the named kind, for non-standard script types.
type AdditionalScriptMatcher struct {
	Pattern *regexp.Regexp
	Kind    ScriptKind
}

// Options configures every stage of the minifying walk. MinifyDocument and
// MinifyDocumentFragment replace a nil *Options with DefaultOptions().
type Options struct {
	ForceSetHTML5Doctype bool

	CollapseWhitespaces       CollapseWhitespaces
	RemoveComments            bool
	PreserveComments          []*regexp.Regexp
	MinifyConditionalComments bool

	RemoveRedundantAttributes RedundantAttributes
	RemoveEmptyAttributes     bool
	CollapseBooleanAttributes bool
	NormalizeAttributes       bool

	SortSpaceSeparatedAttributeValues bool
	SortAttributes                    bool

	MergeMetadataElements       bool
	RemoveEmptyMetadataElements bool

	MinifyJS   bool
	MinifyCSS  bool
	MinifyJSON bool

	MinifyAdditionalAttributes     []AdditionalAttributeMatcher
	MinifyAdditionalScriptsContent []AdditionalScriptMatcher

	// JSMinifier, CSSMinifier and JSONMinifier default to the tdewolff-backed
	// implementations in sub_minifiers.go when left nil and the corresponding
	// MinifyJS/MinifyCSS/MinifyJSON flag is set.
	JSMinifier   JSMinifierFunc
	CSSMinifier  CSSMinifierFunc
	JSONMinifier JSONMinifierFunc
	HTMLMinifier HTMLMinifierFunc

	// Logger receives Debug-level diagnostics about sub-minifier fallbacks and
	// malformed conditional comments. Defaults to a discarding logger.
	Logger *slog.Logger
}

// DefaultOptions returns the commonly recommended option combination: smart
// whitespace collapsing, comment removal, Smart redundant-attribute removal,
// boolean/empty attribute collapsing and metadata element merging, with JS,
// CSS and JSON sub-minification enabled.
func DefaultOptions() *Options {
	return &Options{
		CollapseWhitespaces:               CollapseSmart,
		RemoveComments:                    true,
		MinifyConditionalComments:         true,
		RemoveRedundantAttributes:         RedundantSmart,
		RemoveEmptyAttributes:             true,
		CollapseBooleanAttributes:         true,
		NormalizeAttributes:               true,
		SortSpaceSeparatedAttributeValues: true,
		MergeMetadataElements:             true,
		RemoveEmptyMetadataElements:       true,
		MinifyJS:                          true,
		MinifyCSS:                         true,
		MinifyJSON:                        true,
	}
}

func (o *Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o *Options) jsMinifier() JSMinifierFunc {
	if o.JSMinifier != nil {
		return o.JSMinifier
	}
	return DefaultJSMinifier
}

func (o *Options) cssMinifier() CSSMinifierFunc {
	if o.CSSMinifier != nil {
		return o.CSSMinifier
	}
	return DefaultCSSMinifier
}

func (o *Options) jsonMinifier() JSONMinifierFunc {
	if o.JSONMinifier != nil {
		return o.JSONMinifier
	}
	return DefaultJSONMinifier
}

func (o *Options) htmlMinifier() HTMLMinifierFunc {
	if o.HTMLMinifier != nil {
		return o.HTMLMinifier
	}
	return minifyHTMLFragmentString
}
