package content

import (
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"truescholar.in/portal-web/internal/page"
)

// The backend API predates this service and its payloads are loosely shaped:
// ids and years arrive as strings or numbers depending on the writing
// service, and several fields have legacy aliases. gjson tolerates both.

func collegeFromJSON(raw []byte) page.College {
	j := gjson.ParseBytes(raw)
	return page.College{
		ID:            firstInt(j, "college_id", "id"),
		Name:          firstString(j, "college_name", "name"),
		Slug:          firstString(j, "slug"),
		City:          firstString(j, "city_name", "city", "location.city"),
		State:         firstString(j, "state_name", "state", "location.state"),
		Location:      firstString(j, "location"),
		InstituteType: firstString(j, "type_of_institute", "institute_type"),
		FoundedYear:   int(firstInt(j, "founded_year", "established_year")),
		LogoURL:       firstString(j, "logo_img", "logo_url"),
		SEOTitle:      firstString(j, "seo_title"),
		MetaDesc:      firstString(j, "meta_desc", "meta_description"),
		Keywords:      stringList(j, "keywords"),
		FAQs:          faqList(j),
		Dates:         dateList(j),
	}
}

func examFromJSON(raw []byte) page.Exam {
	j := gjson.ParseBytes(raw)
	return page.Exam{
		ID:        firstInt(j, "exam_id", "id"),
		Name:      firstString(j, "exam_name", "name"),
		ShortName: firstString(j, "exam_shortname", "short_name"),
		Slug:      firstString(j, "slug"),
		Level:     firstString(j, "level_of_exam", "level"),
		Mode:      firstString(j, "mode_of_exam", "mode"),
		LogoURL:   firstString(j, "exam_logo", "logo_url"),
		SEOTitle:  firstString(j, "seo_title"),
		MetaDesc:  firstString(j, "meta_desc", "meta_description"),
		Keywords:  stringList(j, "keywords"),
		FAQs:      faqList(j),
		Dates:     dateList(j),
	}
}

func articleFromJSON(raw []byte) page.Article {
	j := gjson.ParseBytes(raw)
	return page.Article{
		ID:           firstInt(j, "article_id", "id"),
		Title:        firstString(j, "title"),
		Slug:         firstString(j, "slug"),
		Category:     firstString(j, "category"),
		Body:         firstString(j, "content", "body"),
		Excerpt:      firstString(j, "excerpt", "summary"),
		HeroImageURL: firstString(j, "img_url", "hero_image"),
		Author: page.Author{
			Name: firstString(j, "author.view_name", "author.name", "author_name"),
			Slug: firstString(j, "author.slug", "author_slug"),
		},
		Tags:        stringList(j, "tags"),
		SEOTitle:    firstString(j, "seo_title"),
		MetaDesc:    firstString(j, "meta_desc", "meta_description"),
		PublishedAt: parseDate(firstString(j, "published_at", "created_at")),
		UpdatedAt:   parseDate(firstString(j, "updated_at")),
	}
}

func firstString(j gjson.Result, paths ...string) string {
	for _, p := range paths {
		v := j.Get(p)
		if !v.Exists() || v.IsObject() || v.IsArray() {
			continue
		}
		if s := strings.TrimSpace(v.String()); s != "" {
			return s
		}
	}
	return ""
}

func firstInt(j gjson.Result, paths ...string) int64 {
	for _, p := range paths {
		if v := j.Get(p); v.Exists() && v.Int() != 0 {
			return v.Int()
		}
	}
	return 0
}

func stringList(j gjson.Result, path string) []string {
	v := j.Get(path)
	if !v.Exists() {
		return nil
	}
	// either a JSON array or a comma-joined string
	var out []string
	if v.IsArray() {
		for _, item := range v.Array() {
			if s := strings.TrimSpace(item.String()); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	for _, s := range strings.Split(v.String(), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func faqList(j gjson.Result) []page.FAQ {
	var out []page.FAQ
	for _, item := range j.Get("faqs").Array() {
		q := firstString(item, "question", "q")
		a := firstString(item, "answer", "a")
		if q != "" && a != "" {
			out = append(out, page.FAQ{Question: q, Answer: a})
		}
	}
	return out
}

func dateList(j gjson.Result) []page.DateRange {
	dates := j.Get("dates")
	if !dates.Exists() {
		dates = j.Get("important_dates")
	}
	var out []page.DateRange
	for _, item := range dates.Array() {
		d := page.DateRange{
			Name:  firstString(item, "name", "event"),
			Start: parseDate(firstString(item, "start_date", "start")),
			End:   parseDate(firstString(item, "end_date", "end")),
		}
		if d.Name != "" && !d.Start.IsZero() {
			out = append(out, d)
		}
	}
	return out
}

func parseDate(v string) time.Time {
	if v == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006/01/02",
		"02-01-2006",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}
