// Package testutil holds helpers shared by the HTML tests.
package testutil

import (
	"bytes"
	"testing"

	"github.com/PuerkitoBio/goquery"
	g "maragu.dev/gomponents"
)

// ParseHTML parses body into a goquery document for assertions.
func ParseHTML(t testing.TB, body []byte) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

// Render renders node and parses the result. A nil node yields an empty
// document.
func Render(t testing.TB, node g.Node) *goquery.Document {
	t.Helper()

	var buf bytes.Buffer
	if node != nil {
		if err := node.Render(&buf); err != nil {
			t.Fatalf("render: %v", err)
		}
	}
	return ParseHTML(t, buf.Bytes())
}
