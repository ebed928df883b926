// Package cms serves the localized markdown pages of the site, such as the
// privacy policy and terms of service.
package cms

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"helixio.app/web/internal/i18n"
)

// ErrNotFound is returned when a page cannot be located.
var ErrNotFound = errors.New("cms: not found")

// ContentPage is a rendered markdown page in one locale.
type ContentPage struct {
	Kind          string
	Slug          string
	Lang          i18n.Locale
	Title         string
	Summary       string
	Body          string // markdown source without front matter
	HTML          string // sanitized rendered body
	TOC           []Heading
	EffectiveDate time.Time
	UpdatedAt     time.Time
	Version       string
	SEO           ContentSEO
}

// Fallback reports whether the page is shown in a locale other than the one
// requested.
func (p ContentPage) Fallback(requested i18n.Locale) bool { return p.Lang != requested }

// ContentSEO holds optional metadata overrides for static pages.
type ContentSEO struct {
	Title       string
	Description string
}

type contentFrontMatter struct {
	Title         string                `yaml:"title"`
	Summary       string                `yaml:"summary"`
	EffectiveDate string                `yaml:"effective_date"`
	UpdatedAt     string                `yaml:"updated_at"`
	Version       string                `yaml:"version"`
	SEO           contentFrontMatterSEO `yaml:"seo"`
}

type contentFrontMatterSEO struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

const defaultCacheTTL = 5 * time.Minute

// Store reads pages laid out as <kind>/<locale>/<slug>.md.
type Store struct {
	fsys     fs.FS
	fallback i18n.Locale
	renderer *Renderer

	mu    sync.RWMutex
	items map[string]contentCacheEntry
	ttl   time.Duration
	now   func() time.Time
}

type contentCacheEntry struct {
	page    ContentPage
	expires time.Time
}

// NewStore returns a store over fsys. Pages missing in a locale fall back to
// the primary locale.
func NewStore(fsys fs.FS) *Store {
	return &Store{
		fsys:     fsys,
		fallback: i18n.Primary,
		renderer: NewRenderer(),
		items:    map[string]contentCacheEntry{},
		ttl:      defaultCacheTTL,
		now:      time.Now,
	}
}

// SetCacheDuration overrides the in-memory cache duration. Zero disables
// caching, as in dev mode.
func (s *Store) SetCacheDuration(d time.Duration) {
	s.mu.Lock()
	s.ttl = d
	s.items = map[string]contentCacheEntry{}
	s.mu.Unlock()
}

// Page returns the page in the requested locale, or in the primary locale
// when no translation exists.
func (s *Store) Page(ctx context.Context, kind, slug string, lang i18n.Locale) (ContentPage, error) {
	kind = strings.TrimSpace(strings.ToLower(kind))
	slug = sanitizeSlug(slug)
	if kind == "" || slug == "" {
		return ContentPage{}, ErrNotFound
	}
	cacheKey := strings.Join([]string{kind, lang.String(), slug}, "|")
	if page, ok := s.cached(cacheKey); ok {
		return page, nil
	}

	priority := []i18n.Locale{lang}
	if lang != s.fallback {
		priority = append(priority, s.fallback)
	}
	for _, candidate := range priority {
		if err := ctx.Err(); err != nil {
			return ContentPage{}, err
		}
		page, err := s.read(kind, slug, candidate)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			// parse failures stop the search
			return ContentPage{}, err
		}
		s.store(cacheKey, page)
		return page, nil
	}
	return ContentPage{}, ErrNotFound
}

// Slugs lists the pages of kind available in the primary locale, sorted.
func (s *Store) Slugs(kind string) ([]string, error) {
	dir := path.Join(kind, s.fallback.String())
	entries, err := fs.ReadDir(s.fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("cms: list %s: %w", dir, err)
	}
	var slugs []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		slugs = append(slugs, strings.TrimSuffix(name, ".md"))
	}
	sort.Strings(slugs)
	return slugs, nil
}

func (s *Store) read(kind, slug string, lang i18n.Locale) (ContentPage, error) {
	file := path.Join(kind, lang.String(), slug+".md")
	data, err := fs.ReadFile(s.fsys, file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ContentPage{}, ErrNotFound
		}
		return ContentPage{}, err
	}
	fm, body := splitFrontMatter(string(data))
	front := contentFrontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return ContentPage{}, fmt.Errorf("cms: parse front matter %s: %w", file, err)
		}
	}
	rendered, err := s.renderer.Render([]byte(body))
	if err != nil {
		return ContentPage{}, fmt.Errorf("cms: render %s: %w", file, err)
	}
	page := ContentPage{
		Kind:          kind,
		Slug:          slug,
		Lang:          lang,
		Title:         strings.TrimSpace(front.Title),
		Summary:       strings.TrimSpace(front.Summary),
		Body:          body,
		HTML:          rendered.HTML,
		TOC:           rendered.TOC,
		Version:       strings.TrimSpace(front.Version),
		EffectiveDate: parseContentDate(front.EffectiveDate),
		UpdatedAt:     parseContentDate(front.UpdatedAt),
		SEO: ContentSEO{
			Title:       strings.TrimSpace(front.SEO.Title),
			Description: strings.TrimSpace(front.SEO.Description),
		},
	}
	if page.UpdatedAt.IsZero() {
		if info, err := fs.Stat(s.fsys, file); err == nil {
			page.UpdatedAt = info.ModTime()
		}
	}
	if page.Title == "" {
		page.Title = prettifySlug(slug)
	}
	return page, nil
}

func (s *Store) cached(key string) (ContentPage, bool) {
	s.mu.RLock()
	entry, ok := s.items[key]
	s.mu.RUnlock()
	if !ok || s.now().After(entry.expires) {
		return ContentPage{}, false
	}
	return cloneContentPage(entry.page), true
}

func (s *Store) store(key string, page ContentPage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ttl <= 0 {
		return
	}
	s.items[key] = contentCacheEntry{
		page:    cloneContentPage(page),
		expires: s.now().Add(s.ttl),
	}
}

func cloneContentPage(src ContentPage) ContentPage {
	cp := src
	cp.TOC = append([]Heading(nil), src.TOC...)
	return cp
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func parseContentDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006/01/02",
		"2006-1-2",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func prettifySlug(slug string) string {
	parts := strings.Split(strings.TrimSpace(slug), "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		if runes[0] >= 'a' && runes[0] <= 'z' {
			runes[0] -= 'a' - 'A'
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func sanitizeSlug(slug string) string {
	slug = strings.TrimSpace(strings.ToLower(slug))
	slug = strings.Trim(slug, "/")
	if slug == "" || strings.Contains(slug, "..") || strings.ContainsAny(slug, `/\`) {
		return ""
	}
	return slug
}
