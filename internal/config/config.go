// Package config reads runtime settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort      = "3000"
	defaultSiteURL   = "https://helixio.app"
	defaultSignupURL = "https://app.helixio.id/register"
	defaultExportDir = "dist"
)

// Config holds runtime settings for serving and exporting the site.
type Config struct {
	Addr         string
	Dev          bool
	SiteURL      string
	SignupURL    string
	LocalesDir   string // empty uses the embedded tables
	ContentDir   string // empty uses the embedded pages
	CatalogFile  string // empty uses the embedded catalog
	ExportDir    string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	Analytics    Analytics
}

// Analytics holds client instrumentation configuration surfaced to pages.
type Analytics struct {
	GA4MeasurementID string // e.g. G-XXXXXXXXXX
	GTMContainerID   string // e.g. GTM-XXXXXXX
	Debug            bool
}

// Load reads envFile (when it exists) and then the environment. A missing
// .env file is reported through warn and is not an error.
func Load(envFile string, warn func(string)) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("load %s: %w", envFile, err)
			}
			if warn != nil {
				warn(fmt.Sprintf(".env file not found at %s, using environment", envFile))
			}
		}
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Addr:         ":" + firstNonEmpty(getenv("HELIXIO_WEB_PORT"), getenv("PORT"), defaultPort),
		Dev:          parseBool(firstNonEmpty(getenv("HELIXIO_WEB_DEV"), getenv("DEV"))),
		SiteURL:      strings.TrimRight(firstNonEmpty(getenv("HELIXIO_SITE_URL"), defaultSiteURL), "/"),
		SignupURL:    firstNonEmpty(getenv("HELIXIO_APP_URL"), defaultSignupURL),
		LocalesDir:   strings.TrimSpace(getenv("HELIXIO_LOCALES_DIR")),
		ContentDir:   strings.TrimSpace(getenv("HELIXIO_CONTENT_DIR")),
		CatalogFile:  strings.TrimSpace(getenv("HELIXIO_CATALOG_FILE")),
		ExportDir:    firstNonEmpty(getenv("HELIXIO_EXPORT_DIR"), defaultExportDir),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		Analytics: Analytics{
			GA4MeasurementID: strings.TrimSpace(getenv("HELIXIO_WEB_GA_MEASUREMENT_ID")),
			GTMContainerID:   strings.TrimSpace(getenv("HELIXIO_WEB_GTM_CONTAINER_ID")),
			Debug:            parseBool(getenv("HELIXIO_WEB_ANALYTICS_DEBUG")),
		},
	}
	var errs []error
	for _, d := range []struct {
		key string
		dst *time.Duration
	}{
		{"HELIXIO_WEB_READ_TIMEOUT", &cfg.ReadTimeout},
		{"HELIXIO_WEB_WRITE_TIMEOUT", &cfg.WriteTimeout},
		{"HELIXIO_WEB_IDLE_TIMEOUT", &cfg.IdleTimeout},
	} {
		v := strings.TrimSpace(getenv(d.key))
		if v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil || parsed <= 0 {
			errs = append(errs, fmt.Errorf("%s: invalid duration %q", d.key, v))
			continue
		}
		*d.dst = parsed
	}
	if err := validateURL("HELIXIO_SITE_URL", cfg.SiteURL); err != nil {
		errs = append(errs, err)
	}
	if err := validateURL("HELIXIO_APP_URL", cfg.SignupURL); err != nil {
		errs = append(errs, err)
	}
	if err := errors.Join(errs...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func validateURL(key, v string) error {
	u, err := url.Parse(v)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s: %q is not an absolute URL", key, v)
	}
	return nil
}

func parseBool(v string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && b
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
