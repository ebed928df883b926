package sitemap

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Write(&buf, "https://helixio.app", []Entry{
		{Path: "/", Priority: 1, ChangeFreq: "weekly", LastMod: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		{Path: "/pricing", Priority: 0.8},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, out, `xmlns:xhtml="http://www.w3.org/1999/xhtml"`)

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	locs := doc.Find("url > loc").Map(func(_ int, s *goquery.Selection) string { return s.Text() })
	assert.Equal(t, []string{
		"https://helixio.app/",
		"https://helixio.app/en",
		"https://helixio.app/pricing",
		"https://helixio.app/en/pricing",
	}, locs)
	assert.Equal(t, "2025-06-01", doc.Find("url > lastmod").First().Text())
	assert.Equal(t, "1.0", doc.Find("url > priority").First().Text())
	assert.Equal(t, 12, strings.Count(out, "<xhtml:link "))
}

func TestRobots(t *testing.T) {
	t.Parallel()

	r := Robots("https://helixio.app/")
	assert.Contains(t, r, "Sitemap: https://helixio.app/sitemap.xml")
	assert.Contains(t, r, "Disallow: /pricing/cards")
}
