package nav

import (
	"strings"

	"truescholar.in/portal-web/internal/slug"
)

// Crumb is one breadcrumb entry. Exactly the last entry of a trail has
// Current set.
type Crumb struct {
	Name    string `json:"name"`
	Href    string `json:"href"`
	Current bool   `json:"current,omitempty"`
}

// home is the fixed root of every trail.
var home = Crumb{Name: "Home", Href: "/"}

// entityLabels maps a listing entity type to its section label and root path.
var entityLabels = map[string]struct {
	Label string
	Path  string
}{
	"colleges": {Label: "Colleges", Path: "/colleges"},
	"exams":    {Label: "Exams", Path: "/exams"},
	"articles": {Label: "Articles", Path: "/articles"},
}

// EntityLabel returns the section label for an entity type, falling back to a
// prettified form of the raw value.
func EntityLabel(entityType string) string {
	if e, ok := entityLabels[entityType]; ok {
		return e.Label
	}
	return titleFromSegment(entityType)
}

// CollegeTrail builds Home → Colleges → <name> and, when tab names a
// non-default tab, appends its labelled node. The default tab collapses onto
// the college node rather than adding a fourth entry.
func CollegeTrail(name, slugID, tab string) []Crumb {
	detail := "/colleges/" + slugID
	crumbs := []Crumb{home,
		{Name: "Colleges", Href: "/colleges"},
		{Name: name, Href: detail},
	}
	if tab != "" && tab != DefaultCollegeTab {
		crumbs = append(crumbs, Crumb{Name: CollegeTabLabel(tab), Href: detail + "/" + tab})
	}
	return markCurrent(crumbs)
}

// ExamTrail builds Home → Exams → <name>, appending the silo node for
// non-default silos.
func ExamTrail(name, slugID, silo string) []Crumb {
	detail := "/exams/" + slugID
	crumbs := []Crumb{home,
		{Name: "Exams", Href: "/exams"},
		{Name: name, Href: detail},
	}
	if silo != "" && silo != DefaultExamSilo {
		crumbs = append(crumbs, Crumb{Name: ExamSiloLabel(silo), Href: detail + "/" + SiloPath(silo)})
	}
	return markCurrent(crumbs)
}

// articleTitleMax bounds the breadcrumb label for long article headlines.
const articleTitleMax = 40

// ArticleTrail builds Home → Articles → <title>. Article taxonomy is flat: a
// category is never inserted as an intermediate node even when supplied.
func ArticleTrail(title, slugID string) []Crumb {
	return markCurrent([]Crumb{home,
		{Name: "Articles", Href: "/articles"},
		{Name: truncateRunes(title, articleTitleMax), Href: "/articles/" + slugID},
	})
}

// AuthorTrail builds Home → Authors → <name>.
func AuthorTrail(name, slugID string) []Crumb {
	return markCurrent([]Crumb{home,
		{Name: "Authors", Href: "/authors"},
		{Name: name, Href: "/authors/" + slugID},
	})
}

// StaticTrail builds Home → <page>.
func StaticTrail(name, path string) []Crumb {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return markCurrent([]Crumb{home, {Name: name, Href: path}})
}

// Facet is the display name and slug of one active listing filter.
type Facet struct {
	Name string
	Slug string
}

// FilterTrail builds Home → <section> plus one node per active facet, stream
// before city. Facet node names combine the facet value with the section
// label ("Engineering Colleges"); hrefs accumulate the encoded filter state.
func FilterTrail(entityType string, stream, city *Facet) []Crumb {
	section, ok := entityLabels[entityType]
	if !ok {
		section.Label = titleFromSegment(entityType)
		section.Path = "/" + strings.Trim(entityType, "/")
	}
	crumbs := []Crumb{home, {Name: section.Label, Href: section.Path}}

	var state slug.FilterState
	if stream != nil && stream.Slug != "" {
		state.Stream = stream.Slug
		crumbs = append(crumbs, Crumb{
			Name: stream.Name + " " + section.Label,
			Href: section.Path + "/" + slug.Encode(state),
		})
	}
	if city != nil && city.Slug != "" {
		state.City = city.Slug
		name := section.Label + " in " + city.Name
		if stream != nil && stream.Slug != "" {
			name = stream.Name + " " + section.Label + " in " + city.Name
		}
		crumbs = append(crumbs, Crumb{
			Name: name,
			Href: section.Path + "/" + slug.Encode(state),
		})
	}
	return markCurrent(crumbs)
}

// Absolutize rewrites relative hrefs against base. Already-absolute hrefs
// pass through unchanged, so applying it twice is harmless.
func Absolutize(crumbs []Crumb, base string) []Crumb {
	base = strings.TrimRight(base, "/")
	out := make([]Crumb, len(crumbs))
	for i, c := range crumbs {
		if !strings.HasPrefix(c.Href, "http://") && !strings.HasPrefix(c.Href, "https://") {
			if !strings.HasPrefix(c.Href, "/") {
				c.Href = "/" + c.Href
			}
			c.Href = base + c.Href
		}
		out[i] = c
	}
	return out
}

func markCurrent(crumbs []Crumb) []Crumb {
	for i := range crumbs {
		crumbs[i].Current = i == len(crumbs)-1
	}
	return crumbs
}

func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return strings.TrimRight(string(r[:max]), " ") + "…"
}

func titleFromSegment(seg string) string {
	s := strings.ReplaceAll(strings.Trim(seg, "/"), "-", " ")
	s = strings.ReplaceAll(s, "_", " ")
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = asciiUpper(r[0])
	return string(r)
}

func asciiUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
