package i18n

import "golang.org/x/text/language"

var matcher = language.NewMatcher([]language.Tag{ID.Tag(), EN.Tag()})

// Negotiate chooses the best supported locale from an Accept-Language header.
// q-values are honoured; anything unparseable or unmatched yields Primary.
// The result only drives the "view this page in ..." suggestion, never a redirect.
func Negotiate(acceptLang string) Locale {
	if acceptLang == "" {
		return Primary
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLang)
	if err != nil || len(tags) == 0 {
		return Primary
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(All) {
		return Primary
	}
	return All[idx]
}
