// Package seo builds page metadata: canonical and hreflang links, Open Graph
// tags and schema.org JSON-LD payloads.
package seo

import (
	"strings"

	"helixio.app/web/internal/i18n"
)

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	Locale      string
	SiteName    string
}

type Twitter struct {
	Card  string
	Site  string
	Image string
}

// Alternate is one <link rel="alternate" hreflang> entry.
type Alternate struct {
	Hreflang string
	Href     string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	Lang        i18n.Locale
	Alternates  []Alternate
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
	JSONLD      []map[string]any
}

// DefaultImage is the share image used when a page sets none.
const DefaultImage = "https://cdn.helixio.id/assets/img/public/og.png"

// Absolute joins the site origin and a root-relative path.
func Absolute(siteURL, path string) string {
	base := strings.TrimRight(siteURL, "/")
	if path == "" || path == "/" {
		return base + "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}

// Alternates lists the page in every locale plus x-default, which points at
// the primary locale.
func Alternates(siteURL, path string) []Alternate {
	out := make([]Alternate, 0, len(i18n.All)+1)
	for _, l := range i18n.All {
		out = append(out, Alternate{Hreflang: l.String(), Href: Absolute(siteURL, i18n.Localize(path, l))})
	}
	out = append(out, Alternate{Hreflang: "x-default", Href: Absolute(siteURL, i18n.Localize(path, i18n.Primary))})
	return out
}

// OGLocale maps a locale to the og:locale form.
func OGLocale(l i18n.Locale) string {
	if l == i18n.EN {
		return "en_US"
	}
	return "id_ID"
}

// PageMeta fills the common fields for the page at path in locale l.
func PageMeta(siteURL, siteName, path string, l i18n.Locale, title, description string) Meta {
	canonical := Absolute(siteURL, i18n.Localize(path, l))
	return Meta{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		Lang:        l,
		Alternates:  Alternates(siteURL, path),
		Robots:      "index, follow",
		OG: OpenGraph{
			Title:       title,
			Description: description,
			Image:       DefaultImage,
			Type:        "website",
			Locale:      OGLocale(l),
			SiteName:    siteName,
		},
		Twitter: Twitter{Card: "summary_large_image", Image: DefaultImage},
	}
}

// AlternateLocales returns the og:locale:alternate values for the other locales.
func (m Meta) AlternateLocales() []string {
	var out []string
	for _, l := range i18n.All {
		if l != m.Lang {
			out = append(out, OGLocale(l))
		}
	}
	return out
}
