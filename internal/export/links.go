package export

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// linkAttrs lists the attributes that point at another resource, per element.
var linkAttrs = map[string]string{
	"a":      "href",
	"link":   "href",
	"script": "src",
	"img":    "src",
	"source": "src",
}

// BrokenLink is an internal link whose target was not exported.
type BrokenLink struct {
	Page string
	Href string
}

func (b BrokenLink) Error() string {
	return fmt.Sprintf("%s: broken link %s", b.Page, b.Href)
}

// CheckLinks parses every page and verifies that each internal link resolves
// to a file under dir. External links and in-page anchors are skipped.
func CheckLinks(dir string, pages map[string][]byte) error {
	var errs []error
	for _, name := range sortedKeys(pages) {
		hrefs, err := Links(pages[name])
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		for _, href := range hrefs {
			target, ok := internalPath(href)
			if !ok {
				continue
			}
			if !exists(dir, target) {
				errs = append(errs, BrokenLink{Page: name, Href: href})
			}
		}
	}
	return errors.Join(errs...)
}

// Links returns the link targets found in an HTML document, in document order.
func Links(doc []byte) ([]string, error) {
	root, err := html.Parse(bytes.NewReader(doc))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	var out []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if key, ok := linkAttrs[n.Data]; ok {
				for _, a := range n.Attr {
					if a.Key == key && strings.TrimSpace(a.Val) != "" {
						out = append(out, strings.TrimSpace(a.Val))
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out, nil
}

// internalPath reports the site path an href points at, without query or
// fragment. Absolute URLs, protocol-relative URLs and pure fragments are not
// internal.
func internalPath(href string) (string, bool) {
	if strings.HasPrefix(href, "#") || strings.HasPrefix(href, "//") {
		return "", false
	}
	u, err := url.Parse(href)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "", false
	}
	if !strings.HasPrefix(u.Path, "/") {
		return "", false
	}
	return u.Path, true
}

// exists resolves p the way a static host would: a file, or a directory with
// an index.html.
func exists(dir, p string) bool {
	clean := strings.TrimPrefix(path.Clean(p), "/")
	full := filepath.Join(dir, filepath.FromSlash(clean))
	info, err := os.Stat(full)
	if err != nil {
		return false
	}
	if !info.IsDir() {
		return true
	}
	_, err = os.Stat(filepath.Join(full, "index.html"))
	return err == nil
}
