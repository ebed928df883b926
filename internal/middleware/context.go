package middleware

import (
	"context"

	"helixio.app/web/internal/i18n"
)

// context keys are unexported to avoid collisions
type ctxKey string

const (
	ctxKeyRequestID ctxKey = "req_id"
	ctxKeyIsHTMX    ctxKey = "is_htmx"
	ctxKeyLocale    ctxKey = "locale"
	ctxKeySuggest   ctxKey = "locale_suggest"
)

// WithRequestID stores request id in context
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, id)
}

// RequestID gets request id from context
func RequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ctxKeyRequestID).(string)
	return v, ok
}

// WithHTMX marks request as HTMX
func WithHTMX(ctx context.Context, is bool) context.Context {
	return context.WithValue(ctx, ctxKeyIsHTMX, is)
}

// IsHTMX returns whether this is an htmx request
func IsHTMX(ctx context.Context) bool {
	v, _ := ctx.Value(ctxKeyIsHTMX).(bool)
	return v
}

// WithLocale stores the page locale.
func WithLocale(ctx context.Context, l i18n.Locale) context.Context {
	return context.WithValue(ctx, ctxKeyLocale, l)
}

// Locale returns the page locale, defaulting to the primary one.
func Locale(ctx context.Context) i18n.Locale {
	if l, ok := ctx.Value(ctxKeyLocale).(i18n.Locale); ok && l != "" {
		return l
	}
	return i18n.Primary
}

// WithSuggestion stores the locale the visitor's browser prefers when it
// differs from the page locale.
func WithSuggestion(ctx context.Context, l i18n.Locale) context.Context {
	return context.WithValue(ctx, ctxKeySuggest, l)
}

// Suggestion returns the suggested locale, if any.
func Suggestion(ctx context.Context) (i18n.Locale, bool) {
	l, ok := ctx.Value(ctxKeySuggest).(i18n.Locale)
	return l, ok && l != ""
}
