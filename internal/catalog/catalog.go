// Package catalog loads the plan and showcase panel definitions and joins them
// with localized copy.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"helixio.app/web/internal/i18n"
	"helixio.app/web/internal/pricing"
	"helixio.app/web/internal/showcase"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// unlimitedValue is translated to pricing.unlimited wherever it appears.
const unlimitedValue = "unlimited"

// Catalog is the locale-independent structure of plans and panels.
type Catalog struct {
	Plans  []PlanSpec  `yaml:"plans"`
	Panels []PanelSpec `yaml:"panels"`
}

type PlanSpec struct {
	ID       string        `yaml:"id"`
	Icon     string        `yaml:"icon"`
	Free     bool          `yaml:"free"`
	Popular  bool          `yaml:"popular"`
	Prices   PriceSpec     `yaml:"prices"`
	Features []FeatureSpec `yaml:"features"`
}

type PriceSpec struct {
	Monthly   int64 `yaml:"monthly"`
	SixMonths int64 `yaml:"six_months"`
	Yearly    int64 `yaml:"yearly"`
}

type FeatureSpec struct {
	Key      string `yaml:"key"`
	Included *bool  `yaml:"included"`
	Value    string `yaml:"value"`
}

type PanelSpec struct {
	Key    string      `yaml:"key"`
	Icon   string      `yaml:"icon"`
	Accent string      `yaml:"accent"`
	Limits []LimitSpec `yaml:"limits"`
}

type LimitSpec struct {
	Plan  string `yaml:"plan"`
	Value string `yaml:"value"`
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog file, or the embedded one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) validate() error {
	var errs []error
	if len(c.Plans) == 0 {
		errs = append(errs, errors.New("catalog: no plans"))
	}
	seen := map[string]bool{}
	for i, p := range c.Plans {
		switch {
		case p.ID == "":
			errs = append(errs, fmt.Errorf("catalog: plan %d has no id", i))
		case seen[p.ID]:
			errs = append(errs, fmt.Errorf("catalog: duplicate plan %q", p.ID))
		}
		seen[p.ID] = true
		if p.Prices.Monthly < 0 || p.Prices.SixMonths < 0 || p.Prices.Yearly < 0 {
			errs = append(errs, fmt.Errorf("catalog: plan %q has a negative price", p.ID))
		}
	}
	for i, p := range c.Panels {
		if p.Key == "" {
			errs = append(errs, fmt.Errorf("catalog: panel %d has no key", i))
		}
		for _, l := range p.Limits {
			if !seen[l.Plan] {
				errs = append(errs, fmt.Errorf("catalog: panel %q limits unknown plan %q", p.Key, l.Plan))
			}
		}
	}
	return errors.Join(errs...)
}

// Plan returns the plan spec with id.
func (c *Catalog) Plan(id string) (PlanSpec, bool) {
	return lo.Find(c.Plans, func(p PlanSpec) bool { return p.ID == id })
}

// LocalizedPlans joins the plans with their copy. CTAs point at the signup
// URL with the plan preselected.
func (c *Catalog) LocalizedPlans(tr i18n.Translator, signupURL string) []pricing.Plan {
	return lo.Map(c.Plans, func(p PlanSpec, _ int) pricing.Plan {
		prefix := "pricing.plans." + p.ID
		return pricing.Plan{
			ID:             p.ID,
			Name:           tr.T(prefix + ".name"),
			Description:    tr.T(prefix + ".description"),
			PriceMonthly:   p.Prices.Monthly,
			PriceSixMonths: p.Prices.SixMonths,
			PriceYearly:    p.Prices.Yearly,
			Free:           p.Free,
			Popular:        p.Popular,
			Features: lo.Map(p.Features, func(f FeatureSpec, _ int) pricing.Feature {
				return pricing.Feature{
					Label:    tr.T("pricing.features." + f.Key),
					Included: f.Included == nil || *f.Included,
					Value:    localizeValue(tr, f.Value),
				}
			}),
			CTALabel: tr.T(prefix + ".cta"),
			CTAHref:  signupHref(signupURL, p),
			Icon:     p.Icon,
		}
	})
}

// LocalizedPanels joins the panels with their copy. Limit rows name plans by
// their localized name.
func (c *Catalog) LocalizedPanels(tr i18n.Translator) []showcase.Panel {
	return lo.Map(c.Panels, func(p PanelSpec, _ int) showcase.Panel {
		prefix := "showcase.panels." + p.Key
		badge, _ := tr.Lookup(prefix + ".badge")
		return showcase.Panel{
			Key:        p.Key,
			Icon:       p.Icon,
			Name:       tr.T(prefix + ".name"),
			Highlights: tr.Strings(prefix + ".highlights"),
			Badge:      badge,
			Accent:     p.Accent,
			Limits: lo.Map(p.Limits, func(l LimitSpec, _ int) showcase.Limit {
				return showcase.Limit{
					Plan:  tr.T("pricing.plans." + l.Plan + ".name"),
					Value: localizeValue(tr, l.Value),
				}
			}),
		}
	})
}

func localizeValue(tr i18n.Translator, v string) string {
	if v == unlimitedValue {
		return tr.T("pricing.unlimited")
	}
	return v
}

func signupHref(base string, p PlanSpec) string {
	if base == "" || p.Free {
		return base
	}
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	q.Set("plan", p.ID)
	u.RawQuery = q.Encode()
	return u.String()
}
