package page

import (
	"fmt"
	"strings"
	"time"
)

// Entity is the stable field set the metadata and schema generators consume,
// regardless of which variant it came from. Optional fields are zero values;
// the normalizer never fabricates narrative text, only structural defaults.
type Entity struct {
	Kind        Kind
	ID          int64
	Name        string
	Slug        string
	Location    string
	City        string
	State       string
	ImageURL    string
	SEOTitle    string
	MetaDesc    string
	Keywords    []string
	Author      string
	Tab         string // tab or silo key, empty for untabbed pages
	ResultCount int
	PublishedAt time.Time
	UpdatedAt   time.Time
}

// Normalize extracts the generator-facing field set from a variant. An unset
// payload or unknown tag is a programming error, not a runtime condition: the
// union is closed and callers construct variants directly.
func Normalize(v Variant) (Entity, error) {
	switch v.Kind {
	case KindCollege:
		if v.College == nil {
			return Entity{}, fmt.Errorf("page: college variant without payload")
		}
		return normalizeCollege(*v.College, ""), nil
	case KindCollegeTab:
		if v.CollegeTab == nil {
			return Entity{}, fmt.Errorf("page: college-tab variant without payload")
		}
		return normalizeCollege(v.CollegeTab.College, v.CollegeTab.Tab), nil
	case KindExam:
		if v.Exam == nil {
			return Entity{}, fmt.Errorf("page: exam variant without payload")
		}
		return normalizeExam(*v.Exam, ""), nil
	case KindExamSilo:
		if v.ExamSilo == nil {
			return Entity{}, fmt.Errorf("page: exam-silo variant without payload")
		}
		return normalizeExam(v.ExamSilo.Exam, v.ExamSilo.Silo), nil
	case KindArticle:
		if v.Article == nil {
			return Entity{}, fmt.Errorf("page: article variant without payload")
		}
		a := *v.Article
		return Entity{
			Kind:        KindArticle,
			ID:          a.ID,
			Name:        strings.TrimSpace(a.Title),
			Slug:        strings.TrimSpace(a.Slug),
			ImageURL:    strings.TrimSpace(a.HeroImageURL),
			SEOTitle:    strings.TrimSpace(a.SEOTitle),
			MetaDesc:    strings.TrimSpace(a.MetaDesc),
			Keywords:    a.Tags,
			Author:      strings.TrimSpace(a.Author.Name),
			PublishedAt: a.PublishedAt,
			UpdatedAt:   a.UpdatedAt,
		}, nil
	case KindFilter:
		if v.Filter == nil {
			return Entity{}, fmt.Errorf("page: filter variant without payload")
		}
		f := *v.Filter
		name := f.EntityType
		if f.Stream != nil {
			name = f.Stream.Name + " " + name
		}
		return Entity{
			Kind:        KindFilter,
			Name:        strings.TrimSpace(name),
			ResultCount: f.ResultCount,
		}, nil
	case KindStatic:
		if v.Static == nil {
			return Entity{}, fmt.Errorf("page: static variant without payload")
		}
		s := *v.Static
		name := strings.TrimSpace(s.Name)
		if name == "" {
			name = strings.TrimSpace(s.Title)
		}
		return Entity{
			Kind:     KindStatic,
			Name:     name,
			Slug:     strings.TrimSpace(s.Slug),
			SEOTitle: strings.TrimSpace(s.Title),
			MetaDesc: strings.TrimSpace(s.Description),
		}, nil
	case KindError:
		if v.Error == nil {
			return Entity{}, fmt.Errorf("page: error variant without payload")
		}
		return Entity{Kind: KindError, Name: v.Error.EntityType}, nil
	default:
		return Entity{}, fmt.Errorf("page: unknown variant kind %q", v.Kind)
	}
}

func normalizeCollege(c College, tab string) Entity {
	kind := KindCollege
	if tab != "" {
		kind = KindCollegeTab
	}
	return Entity{
		Kind:     kind,
		ID:       c.ID,
		Name:     strings.TrimSpace(c.Name),
		Slug:     strings.TrimSpace(c.Slug),
		Location: joinLocation(c.Location, c.City, c.State),
		City:     strings.TrimSpace(c.City),
		State:    strings.TrimSpace(c.State),
		ImageURL: strings.TrimSpace(c.LogoURL),
		SEOTitle: strings.TrimSpace(c.SEOTitle),
		MetaDesc: strings.TrimSpace(c.MetaDesc),
		Keywords: c.Keywords,
		Tab:      strings.TrimSpace(tab),
	}
}

func normalizeExam(e Exam, silo string) Entity {
	kind := KindExam
	if silo != "" {
		kind = KindExamSilo
	}
	name := strings.TrimSpace(e.Name)
	if name == "" {
		name = strings.TrimSpace(e.ShortName)
	}
	return Entity{
		Kind:     kind,
		ID:       e.ID,
		Name:     name,
		Slug:     strings.TrimSpace(e.Slug),
		ImageURL: strings.TrimSpace(e.LogoURL),
		SEOTitle: strings.TrimSpace(e.SEOTitle),
		MetaDesc: strings.TrimSpace(e.MetaDesc),
		Keywords: e.Keywords,
		Tab:      strings.TrimSpace(silo),
	}
}

// joinLocation prefers an explicit location string, else derives one from
// city and state.
func joinLocation(location, city, state string) string {
	if l := strings.TrimSpace(location); l != "" {
		return l
	}
	parts := make([]string, 0, 2)
	if c := strings.TrimSpace(city); c != "" {
		parts = append(parts, c)
	}
	if s := strings.TrimSpace(state); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}
