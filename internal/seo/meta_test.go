package seo

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"truescholar.in/portal-web/internal/page"
	"truescholar.in/portal-web/internal/slug"
)

var testSite = Site{
	BaseURL:        "https://www.truescholar.in",
	Name:           "TrueScholar",
	DefaultOGImage: "/images/og-default.png",
	TwitterHandle:  "@truescholar",
}

func collegeVariant() page.Variant {
	return page.Variant{Kind: page.KindCollege, College: &page.College{
		ID:    123,
		Name:  "IIT Delhi",
		Slug:  "iit-delhi",
		City:  "New Delhi",
		State: "Delhi",
	}}
}

func TestCollegeMetadata(t *testing.T) {
	m := testSite.PageMetadata(collegeVariant())

	assert.Contains(t, m.Title, "IIT Delhi")
	assert.Contains(t, m.Title, fmt.Sprint(time.Now().Year()))
	assert.NotEmpty(t, m.Description)
	assert.Equal(t, "https://www.truescholar.in/colleges/iit-delhi-123", m.Canonical)
	assert.Equal(t, Robots{Index: true, Follow: true}, m.Robots)
	assert.Equal(t, m.Title, m.OG.Title)
	assert.Equal(t, m.Canonical, m.OG.URL)
	assert.Equal(t, "https://www.truescholar.in/images/og-default.png", m.OG.Image)
	assert.Equal(t, "summary_large_image", m.Twitter.Card)
}

func TestCollegeTabMetadata(t *testing.T) {
	v := page.Variant{Kind: page.KindCollegeTab, CollegeTab: &page.CollegeTab{
		College: *collegeVariant().College,
		Tab:     "cutoffs",
	}}
	m := testSite.PageMetadata(v)
	assert.Contains(t, m.Title, "IIT Delhi")
	assert.Contains(t, m.Title, "Cutoff")
	assert.Equal(t, "https://www.truescholar.in/colleges/iit-delhi-123/cutoffs", m.Canonical)
}

func TestSEOOverridesWin(t *testing.T) {
	c := *collegeVariant().College
	c.SEOTitle = "Custom Title"
	c.MetaDesc = "Custom description."
	m := testSite.PageMetadata(page.Variant{Kind: page.KindCollege, College: &c})
	assert.Equal(t, "Custom Title", m.Title)
	assert.Equal(t, "Custom description.", m.Description)
}

func TestTabPagesIgnoreEntityOverrides(t *testing.T) {
	// profile-level overrides describe the default tab only; every other tab
	// templates both fields so tabs never share copy
	c := *collegeVariant().College
	c.SEOTitle = "Custom Title"
	c.MetaDesc = "Custom description."
	m := testSite.PageMetadata(page.Variant{Kind: page.KindCollegeTab, CollegeTab: &page.CollegeTab{
		College: c,
		Tab:     "placements",
	}})
	assert.NotEqual(t, "Custom Title", m.Title)
	assert.NotEqual(t, "Custom description.", m.Description)
	assert.Contains(t, m.Title, "Placements")
	assert.Contains(t, m.Description, "IIT Delhi")

	e := page.Exam{ID: 7, Name: "JEE Main", Slug: "jee-main", SEOTitle: "Exam Custom", MetaDesc: "Exam custom desc."}
	m = testSite.PageMetadata(page.Variant{Kind: page.KindExamSilo, ExamSilo: &page.ExamSilo{
		Exam: e,
		Silo: "exam-cutoff",
	}})
	assert.NotEqual(t, "Exam Custom", m.Title)
	assert.NotEqual(t, "Exam custom desc.", m.Description)
	assert.Contains(t, m.Title, "Cutoff")
}

func TestExamSiloMetadata(t *testing.T) {
	v := page.Variant{Kind: page.KindExamSilo, ExamSilo: &page.ExamSilo{
		Exam: page.Exam{ID: 7, Name: "JEE Main", Slug: "jee-main"},
		Silo: "exam-syllabus",
	}}
	m := testSite.PageMetadata(v)
	assert.Contains(t, m.Title, "JEE Main")
	assert.Contains(t, m.Title, "Syllabus")
	assert.Equal(t, "https://www.truescholar.in/exams/jee-main-7/syllabus", m.Canonical)
}

func TestArticleMetadataDerivesDescription(t *testing.T) {
	v := page.Variant{Kind: page.KindArticle, Article: &page.Article{
		ID:    55,
		Title: "How to Prepare for JEE",
		Slug:  "how-to-prepare-for-jee",
		Body:  "# Preparation\n\nStart with **NCERT** books and build a schedule around mock tests.",
	}}
	m := testSite.PageMetadata(v)
	assert.Equal(t, "How to Prepare for JEE", m.Title)
	assert.Contains(t, m.Description, "NCERT")
	assert.NotContains(t, m.Description, "#")
	assert.NotContains(t, m.Description, "**")
	assert.Equal(t, "article", m.OG.Type)
}

func TestTitleNonEmptyAcrossVariants(t *testing.T) {
	variants := []page.Variant{
		collegeVariant(),
		{Kind: page.KindExam, Exam: &page.Exam{ID: 7, Name: "JEE Main", Slug: "jee-main"}},
		{Kind: page.KindArticle, Article: &page.Article{ID: 1, Title: "Exam News", Slug: "exam-news"}},
		{Kind: page.KindFilter, Filter: &page.Filter{EntityType: "colleges"}},
		{Kind: page.KindStatic, Static: &page.Static{Name: "About", Slug: "about-us"}},
	}
	for _, v := range variants {
		m := testSite.PageMetadata(v)
		require.NotEmpty(t, m.Title, "variant %s", v.Kind)
	}
}

func TestListingMetadataFacetOrderAndFallback(t *testing.T) {
	withBoth := testSite.ListingMetadata(page.Filter{
		EntityType: "colleges",
		Stream:     &page.Facet{Name: "Engineering", Slug: "engineering"},
		City:       &page.Facet{Name: "Mumbai", Slug: "mumbai"},
		Selection:  slug.FilterState{Stream: "engineering", City: "mumbai"},
	})
	assert.Contains(t, withBoth.Title, "Engineering Colleges")
	assert.Contains(t, withBoth.Title, "Mumbai")
	assert.True(t, strings.Index(withBoth.Title, "Engineering") < strings.Index(withBoth.Title, "Mumbai"))
	assert.Equal(t, "https://www.truescholar.in/colleges/stream-engineering--city-mumbai", withBoth.Canonical)

	noCity := testSite.ListingMetadata(page.Filter{EntityType: "colleges"})
	assert.Contains(t, noCity.Title, "India")
	assert.Equal(t, "https://www.truescholar.in/colleges", noCity.Canonical)
}

func TestListingMetadataIncludesCount(t *testing.T) {
	m := testSite.ListingMetadata(page.Filter{
		EntityType:  "colleges",
		Stream:      &page.Facet{Name: "Engineering", Slug: "engineering"},
		ResultCount: 1240,
	})
	assert.Contains(t, m.Description, "1,240")
}

func TestListingMetadataFeeRangeCopy(t *testing.T) {
	m := testSite.ListingMetadata(page.Filter{
		EntityType: "colleges",
		Selection:  slug.FilterState{FeeRanges: []string{"1-2-lakh"}},
	})
	assert.Contains(t, m.Description, "Total fees: ₹1,00,000 to ₹2,00,000")

	noFees := testSite.ListingMetadata(page.Filter{EntityType: "colleges"})
	assert.NotContains(t, noFees.Description, "Total fees")
}

func TestErrorMetadataRobots(t *testing.T) {
	m := testSite.ErrorMetadata("not-found", "")
	assert.Equal(t, Robots{Index: false, Follow: true}, m.Robots)
	assert.Contains(t, m.Title, "Not Found")
	assert.Empty(t, m.Canonical)

	m = testSite.ErrorMetadata("not-found", "colleges")
	assert.Contains(t, m.Title, "College Not Found")

	m = testSite.ErrorMetadata("error", "")
	assert.Equal(t, Robots{Index: false, Follow: true}, m.Robots)
}

func TestStaticNoIndex(t *testing.T) {
	v := page.Variant{Kind: page.KindStatic, Static: &page.Static{
		Name: "Contact", Slug: "contact-us", NoIndex: true,
	}}
	m := testSite.PageMetadata(v)
	assert.Equal(t, Robots{Index: false, Follow: true}, m.Robots)
}

func TestMissingEntityDegradesToNotFound(t *testing.T) {
	m := testSite.PageMetadata(page.Variant{Kind: page.KindCollege, College: &page.College{}})
	assert.False(t, m.Robots.Index)
	assert.Contains(t, m.Title, "Not Found")

	// nil payload is a programming error and degrades to the error template
	m = testSite.PageMetadata(page.Variant{Kind: page.KindCollege})
	assert.False(t, m.Robots.Index)
}
