package middleware

import (
	"net/http"

	"helixio.app/web/internal/i18n"
)

// LocalePrefix resolves the page locale from the /en path prefix. The
// Accept-Language header never redirects; a mismatch only records a
// suggestion for the banner.
func LocalePrefix(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := i18n.Resolve(r.URL.Path)
		ctx := WithLocale(r.Context(), l)
		if accept := r.Header.Get("Accept-Language"); accept != "" {
			if preferred := i18n.Negotiate(accept); preferred != l {
				ctx = WithSuggestion(ctx, preferred)
			}
		}
		w.Header().Set("Content-Language", l.String())
		w.Header().Add("Vary", "Accept-Language")
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
