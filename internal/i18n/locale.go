package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Locale identifies one of the two languages the site is published in.
type Locale string

const (
	// ID is the primary locale. Its pages live at the root of the site.
	ID Locale = "id"
	// EN is the secondary locale. Its pages live under the /en prefix.
	EN Locale = "en"

	Primary   = ID
	Secondary = EN

	secondaryPrefix = "/en"
)

// All lists the supported locales, primary first.
var All = []Locale{ID, EN}

func (l Locale) String() string { return string(l) }

// Tag returns the BCP 47 tag for the locale.
func (l Locale) Tag() language.Tag {
	if l == EN {
		return language.English
	}
	return language.Indonesian
}

// Other returns the opposite locale, used by the language switch.
func (l Locale) Other() Locale {
	if l == EN {
		return ID
	}
	return EN
}

// Parse maps a language code such as "en" or "en-US" to a supported locale.
func Parse(s string) (Locale, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if dash := strings.IndexAny(s, "-_"); dash != -1 {
		s = s[:dash]
	}
	switch Locale(s) {
	case ID:
		return ID, true
	case EN:
		return EN, true
	}
	return "", false
}

// Resolve derives the locale from a URL path. Only a whole /en segment selects
// the secondary locale, so /enterprise stays primary.
func Resolve(path string) Locale {
	p, _ := splitSuffix(path)
	if hasSecondaryPrefix(p) {
		return Secondary
	}
	return Primary
}

// Strip removes the secondary prefix and returns the canonical path. The empty
// result maps to "/". Query strings and fragments are preserved.
func Strip(path string) string {
	p, suffix := splitSuffix(path)
	if hasSecondaryPrefix(p) {
		p = strings.TrimPrefix(p, secondaryPrefix)
	}
	if p == "" {
		p = "/"
	}
	return p + suffix
}

// Localize returns the path that shows the same page in the given locale.
// Canonical "/" in the secondary locale is the bare prefix, not prefix+"/".
func Localize(path string, l Locale) string {
	clean := Strip(path)
	if l != Secondary {
		return clean
	}
	p, suffix := splitSuffix(clean)
	if p == "/" {
		return secondaryPrefix + suffix
	}
	return secondaryPrefix + p + suffix
}

// Alternate returns the language-switch target for the page at path.
func Alternate(path string) string {
	return Localize(Strip(path), Resolve(path).Other())
}

func hasSecondaryPrefix(p string) bool {
	return p == secondaryPrefix || strings.HasPrefix(p, secondaryPrefix+"/")
}

// splitSuffix separates the path from a trailing "?query" or "#fragment".
func splitSuffix(path string) (string, string) {
	if path == "" {
		return "/", ""
	}
	if i := strings.IndexAny(path, "?#"); i != -1 {
		p := path[:i]
		if p == "" {
			p = "/"
		}
		return p, path[i:]
	}
	return path, ""
}
