// Package export renders the site into a directory of static files.
package export

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"helixio.app/web/internal/i18n"
	"helixio.app/web/internal/observability"
)

// Options configures one export run.
type Options struct {
	// Handler serves the site. Every page is rendered through it.
	Handler http.Handler
	// Pages are canonical paths; each one is written once per locale.
	Pages []string
	// Files are extra generated files written verbatim, e.g. /sitemap.xml.
	Files []string
	// Assets are copied under /assets.
	Assets  fs.FS
	OutDir  string
	Workers int
	Logger  *zap.Logger
	Metrics *observability.Metrics
}

// Result summarizes a finished export.
type Result struct {
	Pages  int
	Files  int
	Assets int
}

type job struct {
	url    string // request path
	file   string // output path, relative to OutDir
	locale i18n.Locale
	page   bool
	status int
}

// Run renders every page in every locale, the localized 404 pages, the extra
// files and the assets into opts.OutDir, then checks that every internal link
// in the written pages resolves to a written file.
func Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Handler == nil {
		return Result{}, errors.New("export: handler is required")
	}
	if opts.OutDir == "" {
		return Result{}, errors.New("export: output directory is required")
	}
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("export: create %s: %w", opts.OutDir, err)
	}

	jobs := plan(opts.Pages, opts.Files)
	var (
		mu    sync.Mutex
		pages = map[string][]byte{}
		res   Result
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for _, j := range jobs {
		g.Go(func() error {
			body, err := fetch(gctx, opts.Handler, j)
			if err != nil {
				return err
			}
			if err := write(opts.OutDir, j.file, body); err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			if j.page {
				pages[j.file] = body
				res.Pages++
				opts.Metrics.PageExported(j.locale.String())
			} else {
				res.Files++
			}
			logger.Debug("exported", zap.String("url", j.url), zap.String("file", j.file))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	if opts.Assets != nil {
		n, err := copyAssets(opts.Assets, filepath.Join(opts.OutDir, "assets"))
		if err != nil {
			return Result{}, err
		}
		res.Assets = n
	}

	if err := CheckLinks(opts.OutDir, pages); err != nil {
		return Result{}, err
	}
	logger.Info("export finished",
		zap.String("dir", opts.OutDir),
		zap.Int("pages", res.Pages),
		zap.Int("files", res.Files),
		zap.Int("assets", res.Assets),
	)
	return res, nil
}

func plan(pages, files []string) []job {
	var jobs []job
	for _, p := range pages {
		for _, l := range i18n.All {
			u := i18n.Localize(p, l)
			jobs = append(jobs, job{url: u, file: pageFile(u), locale: l, page: true, status: http.StatusOK})
		}
	}
	for _, l := range i18n.All {
		u := i18n.Localize("/404", l)
		jobs = append(jobs, job{url: u, file: strings.TrimPrefix(u, "/") + ".html", locale: l, page: true, status: http.StatusNotFound})
	}
	for _, f := range files {
		jobs = append(jobs, job{url: f, file: strings.TrimPrefix(f, "/"), status: http.StatusOK})
	}
	return jobs
}

// pageFile maps a request path to its index.html file.
func pageFile(u string) string {
	p := strings.Trim(u, "/")
	if p == "" {
		return "index.html"
	}
	return path.Join(p, "index.html")
}

func fetch(ctx context.Context, h http.Handler, j job) ([]byte, error) {
	req := httptest.NewRequest(http.MethodGet, j.url, nil).WithContext(ctx)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != j.status {
		return nil, fmt.Errorf("export: GET %s: status %d, want %d", j.url, rr.Code, j.status)
	}
	return rr.Body.Bytes(), nil
}

func write(dir, name string, body []byte) error {
	dst := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("export: create dir for %s: %w", name, err)
	}
	if err := os.WriteFile(dst, body, 0o644); err != nil {
		return fmt.Errorf("export: write %s: %w", name, err)
	}
	return nil
}

func copyAssets(fsys fs.FS, dst string) (int, error) {
	n := 0
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		if err := write(dst, p, data); err != nil {
			return err
		}
		n++
		return nil
	})
	if err != nil {
		return n, fmt.Errorf("export: copy assets: %w", err)
	}
	return n, nil
}

// sortedKeys keeps link check reports stable.
func sortedKeys(m map[string][]byte) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
