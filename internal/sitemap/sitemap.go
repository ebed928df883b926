// Package sitemap renders an i18n-aware sitemap.xml and robots.txt.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
	"time"

	"helixio.app/web/internal/i18n"
	"helixio.app/web/internal/seo"
)

const (
	sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"
	xhtmlNS   = "http://www.w3.org/1999/xhtml"
)

// Entry is one canonical page. Each entry is emitted once per locale.
type Entry struct {
	Path       string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
}

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	XHTML   string   `xml:"xmlns:xhtml,attr"`
	URLs    []url    `xml:"url"`
}

type url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
	Links      []link `xml:"xhtml:link"`
}

type link struct {
	Rel      string `xml:"rel,attr"`
	Hreflang string `xml:"hreflang,attr"`
	Href     string `xml:"href,attr"`
}

// Write encodes the sitemap for entries to w.
func Write(w io.Writer, siteURL string, entries []Entry) error {
	set := urlset{XMLNS: sitemapNS, XHTML: xhtmlNS}
	for _, e := range entries {
		alternates := seo.Alternates(siteURL, e.Path)
		links := make([]link, 0, len(alternates))
		for _, a := range alternates {
			links = append(links, link{Rel: "alternate", Hreflang: a.Hreflang, Href: a.Href})
		}
		for _, l := range i18n.All {
			u := url{
				Loc:        seo.Absolute(siteURL, i18n.Localize(e.Path, l)),
				ChangeFreq: e.ChangeFreq,
				Links:      links,
			}
			if !e.LastMod.IsZero() {
				u.LastMod = e.LastMod.UTC().Format("2006-01-02")
			}
			if e.Priority > 0 {
				u.Priority = fmt.Sprintf("%.1f", e.Priority)
			}
			set.URLs = append(set.URLs, u)
		}
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}
	return enc.Flush()
}

// Robots returns robots.txt content pointing at the sitemap.
func Robots(siteURL string) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /pricing/cards\n")
	b.WriteString("Disallow: /en/pricing/cards\n\n")
	b.WriteString("Sitemap: " + seo.Absolute(siteURL, "/sitemap.xml") + "\n")
	return b.String()
}
