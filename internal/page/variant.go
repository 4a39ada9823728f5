package page

import (
	"time"

	"truescholar.in/portal-web/internal/slug"
)

// Kind discriminates the closed set of page variants the engine knows about.
type Kind string

const (
	KindCollege    Kind = "college"
	KindCollegeTab Kind = "college-tab"
	KindExam       Kind = "exam"
	KindExamSilo   Kind = "exam-silo"
	KindArticle    Kind = "article"
	KindFilter     Kind = "filter"
	KindStatic     Kind = "static"
	KindError      Kind = "error"
)

// Variant is a tagged union over page payloads. Exactly one payload field is
// set, matching Kind; payloads are read only after switching on the tag.
type Variant struct {
	Kind Kind

	College    *College
	CollegeTab *CollegeTab
	Exam       *Exam
	ExamSilo   *ExamSilo
	Article    *Article
	Filter     *Filter
	Static     *Static
	Error      *ErrorPage
}

// FAQ is a question/answer pair attached to college and exam payloads.
type FAQ struct {
	Question string
	Answer   string
}

// DateRange models a named window such as an application or counselling round.
type DateRange struct {
	Name  string
	Start time.Time
	End   time.Time
}

// Author captures article author metadata.
type Author struct {
	Name string
	Slug string
}

// Facet is a display name/slug pair for one active listing filter.
type Facet struct {
	Name string
	Slug string
}

// College is the profile payload for a single institution.
type College struct {
	ID            int64
	Name          string
	Slug          string
	City          string
	State         string
	Location      string
	InstituteType string
	FoundedYear   int
	LogoURL       string
	SEOTitle      string
	MetaDesc      string
	Keywords      []string
	FAQs          []FAQ
	Dates         []DateRange
}

// CollegeTab is a college profile scoped to one content tab (cutoffs,
// placements, ...).
type CollegeTab struct {
	College    College
	Tab        string
	TabContent string
}

// Exam is the profile payload for a single entrance exam.
type Exam struct {
	ID        int64
	Name      string
	ShortName string
	Slug      string
	Level     string
	Mode      string
	LogoURL   string
	SEOTitle  string
	MetaDesc  string
	Keywords  []string
	FAQs      []FAQ
	Dates     []DateRange
}

// ExamSilo is an exam scoped to one content silo (syllabus, pattern, ...).
type ExamSilo struct {
	Exam Exam
	Silo string
}

// Article is a news/guide article payload. Body is markdown.
type Article struct {
	ID           int64
	Title        string
	Slug         string
	Category     string
	Body         string
	Excerpt      string
	HeroImageURL string
	Author       Author
	Tags         []string
	SEOTitle     string
	MetaDesc     string
	PublishedAt  time.Time
	UpdatedAt    time.Time
}

// Filter is a filtered listing page: entity type plus the active facets.
// Selection drives canonical URLs; Stream/City carry display names for
// titles and breadcrumbs.
type Filter struct {
	EntityType  string // "colleges" or "exams"
	Stream      *Facet
	City        *Facet
	Selection   slug.FilterState
	ResultCount int
}

// Static is a fixed informational page (about, privacy, contact).
type Static struct {
	Name        string
	Slug        string
	Title       string
	Description string
	NoIndex     bool
}

// ErrorPage marks a not-found or server-error render.
type ErrorPage struct {
	Kind       string // "not-found" or "error"
	EntityType string
}
