// Command htmlmin-example reads an HTML document from stdin, minifies it and
// writes the result to stdout.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/net/html"

	"github.com/dpotapov/htmlmin"
)

func main() {
	verbose := flag.Bool("v", false, "log debug diagnostics to stderr")
	collapse := flag.String("collapse", "smart", "whitespace policy: none|all|smart|conservative|only-metadata|advanced-conservative")
	doctype := flag.Bool("doctype5", true, "force the HTML5 doctype")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	opts := htmlmin.DefaultOptions()
	opts.Logger = logger
	opts.ForceSetHTML5Doctype = *doctype

	policy, err := parseCollapsePolicy(*collapse)
	if err != nil {
		logger.Error("bad -collapse flag", "error", err)
		os.Exit(2)
	}
	opts.CollapseWhitespaces = policy

	doc, err := html.Parse(os.Stdin)
	if err != nil {
		logger.Error("parse HTML", "error", err)
		os.Exit(1)
	}

	htmlmin.MinifyDocument(doc, opts)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		logger.Error("render HTML", "error", err)
		os.Exit(1)
	}

	logger.Debug("minified document", "bytes", buf.Len())

	if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
		logger.Error("write stdout", "error", err)
		os.Exit(1)
	}
}

func parseCollapsePolicy(s string) (htmlmin.CollapseWhitespaces, error) {
	switch s {
	case "none":
		return htmlmin.CollapseNone, nil
	case "all":
		return htmlmin.CollapseAll, nil
	case "smart":
		return htmlmin.CollapseSmart, nil
	case "conservative":
		return htmlmin.CollapseConservative, nil
	case "only-metadata":
		return htmlmin.CollapseOnlyMetadata, nil
	case "advanced-conservative":
		return htmlmin.CollapseAdvancedConservative, nil
	default:
		return 0, fmt.Errorf("unknown collapse policy %q", s)
	}
}
