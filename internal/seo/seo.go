package seo

// OpenGraph carries the og:* head properties for a page.
type OpenGraph struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	SiteName    string `json:"siteName"`
	Image       string `json:"image"`
	Type        string `json:"type"`
}

// Twitter carries the twitter:* card properties.
type Twitter struct {
	Card        string `json:"card"`
	Site        string `json:"site"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Robots is the per-page indexing directive.
type Robots struct {
	Index  bool `json:"index"`
	Follow bool `json:"follow"`
}

// Meta is the complete head-metadata result for one page render.
type Meta struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Keywords    []string  `json:"keywords,omitempty"`
	Canonical   string    `json:"canonical"`
	Robots      Robots    `json:"robots"`
	OG          OpenGraph `json:"openGraph"`
	Twitter     Twitter   `json:"twitter"`
}

// Site holds the process-wide constants every generator reads: the canonical
// host, site name and default social image. Values are fixed at startup and
// never mutated, so generators stay safe under concurrent page renders.
type Site struct {
	BaseURL        string
	Name           string
	DefaultOGImage string
	TwitterHandle  string
}

// DefaultSite is the production configuration.
var DefaultSite = Site{
	BaseURL:        "https://www.truescholar.in",
	Name:           "TrueScholar",
	DefaultOGImage: "/images/og-default.png",
	TwitterHandle:  "@truescholar",
}

// AbsoluteURL joins a site-relative path onto the base URL. Already-absolute
// URLs pass through unchanged.
func (s Site) AbsoluteURL(path string) string {
	if path == "" {
		return s.BaseURL
	}
	if hasScheme(path) {
		return path
	}
	base := s.BaseURL
	for len(base) > 0 && base[len(base)-1] == '/' {
		base = base[:len(base)-1]
	}
	if path[0] != '/' {
		path = "/" + path
	}
	return base + path
}

func hasScheme(u string) bool {
	return len(u) > 8 && (u[:7] == "http://" || u[:8] == "https://")
}
