package seo

import (
	"fmt"
	"strings"
	"time"

	"truescholar.in/portal-web/internal/format"
	"truescholar.in/portal-web/internal/nav"
	"truescholar.in/portal-web/internal/page"
	"truescholar.in/portal-web/internal/slug"
)

// descriptionMax keeps generated meta descriptions inside the length search
// engines display without clipping.
const descriptionMax = 160

// PageMetadata produces the head metadata for any page variant. It is total
// over well-formed input: missing or malformed entity data degrades to the
// not-found template instead of failing, so the rendered head is always
// structurally valid.
func (s Site) PageMetadata(v page.Variant) Meta {
	ent, err := page.Normalize(v)
	if err != nil {
		return s.ErrorMetadata("error", "")
	}

	switch v.Kind {
	case page.KindCollege, page.KindCollegeTab:
		if ent.Name == "" || ent.ID == 0 {
			return s.ErrorMetadata("not-found", "colleges")
		}
		return s.collegeMetadata(ent)
	case page.KindExam, page.KindExamSilo:
		if ent.Name == "" || ent.ID == 0 {
			return s.ErrorMetadata("not-found", "exams")
		}
		return s.examMetadata(ent)
	case page.KindArticle:
		if ent.Name == "" || ent.ID == 0 {
			return s.ErrorMetadata("not-found", "articles")
		}
		return s.articleMetadata(*v.Article, ent)
	case page.KindFilter:
		return s.ListingMetadata(*v.Filter)
	case page.KindStatic:
		return s.staticMetadata(*v.Static)
	case page.KindError:
		return s.ErrorMetadata(v.Error.Kind, v.Error.EntityType)
	default:
		return s.ErrorMetadata("error", "")
	}
}

func (s Site) collegeMetadata(ent page.Entity) Meta {
	year := time.Now().Year()
	path := "/colleges/" + slug.AppendID(ent.Slug, ent.ID)
	title := ent.SEOTitle
	desc := ent.MetaDesc

	if ent.Tab != "" && ent.Tab != nav.DefaultCollegeTab {
		// Entity-level SEO overrides describe the profile as a whole; tab
		// pages always template so each tab gets distinct copy.
		label := nav.CollegeTabLabel(ent.Tab)
		path += "/" + ent.Tab
		title = fmt.Sprintf("%s %s %d: Dates, Details & Latest Updates", ent.Name, label, year)
		desc = fmt.Sprintf("%s %s %d: check the latest %s details for %s along with important dates and updates.",
			ent.Name, label, year, strings.ToLower(label), ent.Name)
	} else {
		if title == "" {
			title = fmt.Sprintf("%s%s: Courses, Fees, Admission, Placements %d", ent.Name, locationSuffix(ent.Location), year)
		}
		if desc == "" {
			desc = fmt.Sprintf("%s%s: get details on courses, fees, cutoffs, placements, rankings and admission %d.",
				ent.Name, locationSuffix(ent.Location), year)
		}
	}
	keywords := ent.Keywords
	if len(keywords) == 0 {
		keywords = []string{ent.Name, ent.Name + " admission", ent.Name + " courses", ent.Name + " fees"}
	}
	return s.build(title, truncatePlain(desc, descriptionMax), keywords, path, ent.ImageURL, "website", Robots{Index: true, Follow: true})
}

func (s Site) examMetadata(ent page.Entity) Meta {
	year := time.Now().Year()
	path := "/exams/" + slug.AppendID(ent.Slug, ent.ID)
	title := ent.SEOTitle
	desc := ent.MetaDesc

	if ent.Tab != "" && ent.Tab != nav.DefaultExamSilo {
		label := nav.ExamSiloLabel(ent.Tab)
		path += "/" + nav.SiloPath(ent.Tab)
		title = fmt.Sprintf("%s %s %d", ent.Name, label, year)
		desc = fmt.Sprintf("%s %s %d: complete %s details with the latest official updates.",
			ent.Name, label, year, strings.ToLower(label))
	} else {
		if title == "" {
			title = fmt.Sprintf("%s %d: Dates, Registration, Syllabus, Pattern, Results", ent.Name, year)
		}
		if desc == "" {
			desc = fmt.Sprintf("%s %d: exam dates, registration, eligibility, syllabus, pattern, admit card and results.", ent.Name, year)
		}
	}
	keywords := ent.Keywords
	if len(keywords) == 0 {
		keywords = []string{ent.Name, ent.Name + " syllabus", ent.Name + " dates", ent.Name + " result"}
	}
	return s.build(title, truncatePlain(desc, descriptionMax), keywords, path, ent.ImageURL, "website", Robots{Index: true, Follow: true})
}

func (s Site) articleMetadata(a page.Article, ent page.Entity) Meta {
	path := "/articles/" + slug.AppendID(ent.Slug, ent.ID)
	title := ent.SEOTitle
	if title == "" {
		title = ent.Name
	}
	desc := ent.MetaDesc
	if desc == "" {
		desc = DescriptionFromMarkdown(a.Body, descriptionMax)
	}
	if desc == "" {
		desc = truncatePlain(a.Excerpt, descriptionMax)
	}
	return s.build(title, desc, a.Tags, path, ent.ImageURL, "article", Robots{Index: true, Follow: true})
}

// ListingMetadata produces head metadata for a filtered listing page. Titles
// compose the active facets in fixed order (stream, then city) and fall back
// to the "India" jurisdiction when no city is selected, so every combination
// yields a grammatical title.
func (s Site) ListingMetadata(f page.Filter) Meta {
	year := time.Now().Year()
	label := nav.EntityLabel(f.EntityType)

	subject := label
	if f.Stream != nil && f.Stream.Name != "" {
		subject = f.Stream.Name + " " + label
	}
	where := "India"
	if f.City != nil && f.City.Name != "" {
		where = f.City.Name
	}
	title := fmt.Sprintf("Top %s in %s %d: Ranking, Fees, Admission", subject, where, year)

	var desc string
	if f.ResultCount > 0 {
		desc = fmt.Sprintf("Explore %s %s in %s. Compare rankings, courses, fees, placements and admission details for %d.",
			format.Count(f.ResultCount), subject, where, year)
	} else {
		desc = fmt.Sprintf("Explore %s in %s. Compare rankings, courses, fees, placements and admission details for %d.",
			subject, where, year)
	}
	if ranges := f.Selection.FeeRanges; len(ranges) > 0 {
		labels := make([]string, len(ranges))
		for i, key := range ranges {
			labels[i] = format.FeeRangeLabel(key)
		}
		desc += " Total fees: " + strings.Join(labels, ", ") + "."
	}

	path := "/" + strings.Trim(f.EntityType, "/")
	if encoded := slug.Encode(f.Selection); encoded != "" {
		path += "/" + encoded
	}
	return s.build(title, truncatePlain(desc, descriptionMax), nil, path, "", "website", Robots{Index: true, Follow: true})
}

func (s Site) staticMetadata(p page.Static) Meta {
	title := p.Title
	if title == "" {
		title = p.Name
	}
	if title == "" {
		title = s.Name
	}
	title = title + " | " + s.Name
	robots := Robots{Index: !p.NoIndex, Follow: true}
	return s.build(title, truncatePlain(p.Description, descriptionMax), nil, "/"+strings.Trim(p.Slug, "/"), "", "website", robots)
}

// ErrorMetadata produces the not-found/error head. Both variants carry a
// noindex directive while remaining followable.
func (s Site) ErrorMetadata(kind, entityType string) Meta {
	var title, desc string
	switch kind {
	case "not-found":
		what := "Page"
		if entityType != "" {
			what = strings.TrimSuffix(nav.EntityLabel(entityType), "s")
		}
		title = fmt.Sprintf("%s Not Found | %s", what, s.Name)
		desc = fmt.Sprintf("The %s you are looking for does not exist or has moved.", strings.ToLower(what))
	default:
		title = "Something Went Wrong | " + s.Name
		desc = "An unexpected error occurred. Please try again."
	}
	m := s.build(title, desc, nil, "", "", "website", Robots{Index: false, Follow: true})
	m.Canonical = ""
	m.OG.URL = ""
	return m
}

// build assembles the shared Meta shape: OG and Twitter mirror the title,
// description and canonical, with the entity image falling back to the site
// default.
func (s Site) build(title, desc string, keywords []string, path, image, ogType string, robots Robots) Meta {
	canonical := s.AbsoluteURL(path)
	if image == "" {
		image = s.DefaultOGImage
	}
	image = s.AbsoluteURL(image)
	return Meta{
		Title:       title,
		Description: desc,
		Keywords:    keywords,
		Canonical:   canonical,
		Robots:      robots,
		OG: OpenGraph{
			Title:       title,
			Description: desc,
			URL:         canonical,
			SiteName:    s.Name,
			Image:       image,
			Type:        ogType,
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Site:        s.TwitterHandle,
			Title:       title,
			Description: desc,
			Image:       image,
		},
	}
}

func locationSuffix(location string) string {
	if location == "" {
		return ""
	}
	return ", " + location
}
