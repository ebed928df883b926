// Package nav builds the localized site navigation and models the mobile
// menu.
package nav

import (
	"path"
	"strings"

	"helixio.app/web/internal/i18n"
)

// Item represents a top-level navigation item.
type Item struct {
	Path     string // canonical path, e.g. "/pricing" or "/#contact"
	LabelKey string // i18n key, e.g. "nav.pricing"
}

// RenderedItem is a view model for components.
type RenderedItem struct {
	Href     string
	LabelKey string
	Active   bool
	// Delay staggers the item's entrance in the mobile menu, in milliseconds.
	Delay int
}

// Crumb represents a breadcrumb entry. If LabelKey is empty, use Label.
type Crumb struct {
	Href     string
	LabelKey string
	Label    string
	Active   bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/features", LabelKey: "nav.features"},
	{Path: "/pricing", LabelKey: "nav.pricing"},
	{Path: "/faq", LabelKey: "nav.faq"},
	{Path: "/#contact", LabelKey: "nav.contact"},
}

// Build renders navigation items for locale with active state given the
// current path, which may carry the locale prefix.
func Build(currentPath string, locale i18n.Locale) []RenderedItem {
	current := canonical(currentPath)
	items := make([]RenderedItem, 0, len(Main))
	for i, it := range Main {
		items = append(items, RenderedItem{
			Href:     i18n.Localize(it.Path, locale),
			LabelKey: it.LabelKey,
			Active:   isActive(it.Path, current),
			Delay:    (i + 1) * 50,
		})
	}
	return items
}

func canonical(p string) string {
	p = i18n.Strip(p)
	if i := strings.IndexAny(p, "?#"); i != -1 {
		p = p[:i]
	}
	if p == "" {
		return "/"
	}
	return p
}

func isActive(itemPath, currentPath string) bool {
	// fragment links point into a page section and are never current
	if strings.Contains(itemPath, "#") {
		return false
	}
	if itemPath == "/" {
		return currentPath == "/"
	}
	// match exact or prefix boundary: "/faq" or "/faq/..."
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds localized breadcrumb entries from the current path.
// Home comes first, known top-level sections use nav label keys and deeper
// segments get a prettified slug.
func Breadcrumbs(currentPath string, locale i18n.Locale) []Crumb {
	current := canonical(currentPath)
	crumbs := []Crumb{{Href: i18n.Localize("/", locale), LabelKey: "nav.home", Active: current == "/"}}
	if current == "/" {
		return crumbs
	}

	clean := path.Clean(current)
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")

	href := ""
	for i, seg := range parts {
		if seg == "" {
			continue
		}
		href += "/" + seg
		c := Crumb{
			Href:   i18n.Localize(href, locale),
			Label:  titleFromSegment(seg),
			Active: i == len(parts)-1,
		}
		if i == 0 {
			for _, it := range Main {
				if it.Path == href {
					c.LabelKey = it.LabelKey
					break
				}
			}
		}
		crumbs = append(crumbs, c)
	}
	return crumbs
}

func titleFromSegment(seg string) string {
	if seg == "" {
		return seg
	}
	s := strings.NewReplacer("-", " ", "_", " ").Replace(seg)
	r := []rune(s)
	// ASCII only is sufficient for slugs here
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}

// LangOption is one flag of the language switch.
type LangOption struct {
	Locale i18n.Locale
	Flag   string
	Href   string // empty for the current locale
	Title  string
	Active bool
}

var flags = map[i18n.Locale]string{
	i18n.ID: "🇮🇩",
	i18n.EN: "🇬🇧",
}

var switchTitles = map[i18n.Locale]string{
	i18n.ID: "Ganti ke Bahasa Indonesia",
	i18n.EN: "Switch to English",
}

// LangSwitch returns the flags in fixed order, primary first. The inactive
// flag links to the same page in the other locale.
func LangSwitch(currentPath string) []LangOption {
	current := i18n.Resolve(currentPath)
	out := make([]LangOption, 0, len(i18n.All))
	for _, l := range i18n.All {
		opt := LangOption{Locale: l, Flag: flags[l], Active: l == current}
		if !opt.Active {
			opt.Href = i18n.Alternate(currentPath)
			opt.Title = switchTitles[l]
		}
		out = append(out, opt)
	}
	return out
}
