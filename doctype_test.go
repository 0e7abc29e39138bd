package htmlmin

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestForceHTML5Doctype(t *testing.T) {
	src := `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd"><html><head></head><body></body></html>`
	doc, err := html.Parse(strings.NewReader(src))
	require.NoError(t, err)

	MinifyDocument(doc, &Options{ForceSetHTML5Doctype: true})

	var buf bytes.Buffer
	require.NoError(t, html.Render(&buf, doc))
	require.Contains(t, buf.String(), "<!DOCTYPE html>")
	require.NotContains(t, buf.String(), "4.01")
}

func TestForceHTML5DoctypeLeavesDoctypelessDocumentAlone(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<html><body>hi</body></html>`))
	require.NoError(t, err)

	MinifyDocument(doc, &Options{ForceSetHTML5Doctype: true})

	var buf bytes.Buffer
	require.NoError(t, html.Render(&buf, doc))
	require.NotContains(t, buf.String(), "<!DOCTYPE")
}
