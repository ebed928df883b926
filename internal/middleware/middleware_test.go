package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"github.com/go-chi/chi/v5"
	chiMid "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"helixio.app/web/internal/i18n"
	"helixio.app/web/internal/observability"
)

func TestLocalePrefix(t *testing.T) {
	t.Parallel()

	var got i18n.Locale
	var suggest i18n.Locale
	var hasSuggest bool
	h := LocalePrefix(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = Locale(r.Context())
		suggest, hasSuggest = Suggestion(r.Context())
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/en/pricing", nil)
	req.Header.Set("Accept-Language", "id-ID,id;q=0.9")
	h.ServeHTTP(rec, req)
	assert.Equal(t, i18n.EN, got)
	assert.True(t, hasSuggest)
	assert.Equal(t, i18n.ID, suggest)
	assert.Equal(t, "en", rec.Header().Get("Content-Language"))
	assert.Equal(t, "Accept-Language", rec.Header().Get("Vary"))

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/enterprise", nil)
	req.Header.Set("Accept-Language", "id")
	h.ServeHTTP(rec, req)
	assert.Equal(t, i18n.ID, got)
	assert.False(t, hasSuggest)
	assert.Equal(t, "id", rec.Header().Get("Content-Language"))
}

func TestLocaleDefaultsToPrimary(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, i18n.Primary, Locale(req.Context()))
	_, ok := Suggestion(req.Context())
	assert.False(t, ok)
}

func TestRequestLoggerLogsAndCountsByRoute(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	metrics := observability.NewMetrics()

	r := chi.NewRouter()
	r.Use(chiMid.RequestID, HTMX, RequestLogger(zap.New(core), metrics))
	r.Get("/legal/{slug}", func(w http.ResponseWriter, r *http.Request) {
		observability.FromContext(r.Context()).Info("inside")
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	req := httptest.NewRequest(http.MethodGet, "/legal/privacy", nil)
	req.Header.Set("HX-Request", "true")
	r.ServeHTTP(httptest.NewRecorder(), req)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	inside := logs.FilterMessage("inside").All()
	require.Len(t, inside, 1)
	assert.NotEmpty(t, inside[0].ContextMap()["request_id"])

	done := logs.FilterMessage("request completed").All()
	require.Len(t, done, 2)
	fields := done[0].ContextMap()
	assert.Equal(t, "/legal/{slug}", fields["route"])
	assert.EqualValues(t, 200, fields["status"])
	assert.EqualValues(t, 2, fields["bytes"])
	assert.Equal(t, true, fields["htmx"])
	assert.Equal(t, zap.ErrorLevel, done[1].Level)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), `helixio_web_requests_total{route="/legal/{slug}",status="200"} 1`)
}

func TestRecover(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.ErrorLevel)
	h := HTMX(Recover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(observability.WithLogger(req.Context(), zap.New(core)))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, 1, logs.FilterMessage("panic recovered").Len())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "true")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal Server Error", body.Error)
}

func TestAssetsWithCache(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{"css/site.css": {Data: []byte("body{}")}}
	h := AssetsWithCache(fsys, "/assets", "")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "body{}", rec.Body.String())
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)
	assert.Contains(t, rec.Header().Get("Cache-Control"), "max-age=604800")

	req := httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil)
	req.Header.Set("If-None-Match", etag)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotModified, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/missing.js", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
