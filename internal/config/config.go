package config

import (
	"os"
	"strings"
	"time"
)

const (
	defaultPort         = "8080"
	defaultReadTimeout  = 15 * time.Second
	defaultWriteTimeout = 15 * time.Second
	defaultIdleTimeout  = 60 * time.Second

	defaultBaseURL       = "https://www.truescholar.in"
	defaultSiteName      = "TrueScholar"
	defaultOGImage       = "/images/og-default.png"
	defaultTwitterHandle = "@truescholar"
)

// Config captures runtime configuration organised by concern.
type Config struct {
	Server ServerConfig
	Site   SiteConfig
	API    APIConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// SiteConfig holds the site-wide SEO constants.
type SiteConfig struct {
	BaseURL        string
	Name           string
	DefaultOGImage string
	TwitterHandle  string
}

// APIConfig points at the backend content API.
type APIConfig struct {
	BaseURL     string
	FixturesDir string
}

// Load reads configuration from the process environment, applying defaults
// for anything unset.
func Load() Config {
	port := lookup("PORTAL_PORT", "")
	if port == "" {
		port = lookup("PORT", defaultPort)
	}
	return Config{
		Server: ServerConfig{
			Port:         port,
			ReadTimeout:  lookupDuration("PORTAL_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout: lookupDuration("PORTAL_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:  lookupDuration("PORTAL_IDLE_TIMEOUT", defaultIdleTimeout),
		},
		Site: SiteConfig{
			BaseURL:        strings.TrimRight(lookup("PORTAL_BASE_URL", defaultBaseURL), "/"),
			Name:           lookup("PORTAL_SITE_NAME", defaultSiteName),
			DefaultOGImage: lookup("PORTAL_OG_IMAGE", defaultOGImage),
			TwitterHandle:  lookup("PORTAL_TWITTER_HANDLE", defaultTwitterHandle),
		},
		API: APIConfig{
			BaseURL:     lookup("PORTAL_API_URL", ""),
			FixturesDir: lookup("PORTAL_FIXTURES_DIR", ""),
		},
	}
}

func lookup(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func lookupDuration(key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
