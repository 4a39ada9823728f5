package nav

import (
	"strings"
	"testing"
)

func assertTrailInvariants(t *testing.T, crumbs []Crumb) {
	t.Helper()
	if len(crumbs) == 0 {
		t.Fatal("empty trail")
	}
	if crumbs[0].Name != "Home" || crumbs[0].Href != "/" {
		t.Fatalf("trail must start at Home, got %+v", crumbs[0])
	}
	for i, c := range crumbs {
		want := i == len(crumbs)-1
		if c.Current != want {
			t.Fatalf("crumb %d %q: current=%v, want %v", i, c.Name, c.Current, want)
		}
	}
}

func TestCollegeTrailWithTab(t *testing.T) {
	crumbs := CollegeTrail("IIT Delhi", "iit-delhi-123", "cutoffs")
	assertTrailInvariants(t, crumbs)
	if len(crumbs) != 4 {
		t.Fatalf("expected 4 crumbs, got %d: %+v", len(crumbs), crumbs)
	}
	if crumbs[1].Name != "Colleges" || crumbs[1].Href != "/colleges" {
		t.Fatalf("unexpected section crumb: %+v", crumbs[1])
	}
	if crumbs[2].Name != "IIT Delhi" || crumbs[2].Href != "/colleges/iit-delhi-123" {
		t.Fatalf("unexpected college crumb: %+v", crumbs[2])
	}
	if crumbs[3].Name != "Cutoff" || crumbs[3].Href != "/colleges/iit-delhi-123/cutoffs" {
		t.Fatalf("unexpected tab crumb: %+v", crumbs[3])
	}
}

func TestCollegeTrailDefaultTabCollapses(t *testing.T) {
	for _, tab := range []string{"", "info"} {
		crumbs := CollegeTrail("IIT Delhi", "iit-delhi-123", tab)
		assertTrailInvariants(t, crumbs)
		if len(crumbs) != 3 {
			t.Fatalf("tab %q: expected 3 crumbs, got %d", tab, len(crumbs))
		}
	}
}

func TestExamTrailSiloLabel(t *testing.T) {
	crumbs := ExamTrail("JEE Main", "jee-main-7", "exam-syllabus")
	assertTrailInvariants(t, crumbs)
	if len(crumbs) != 4 {
		t.Fatalf("expected 4 crumbs, got %d", len(crumbs))
	}
	if crumbs[3].Name != "Syllabus" {
		t.Fatalf("expected silo label Syllabus, got %q", crumbs[3].Name)
	}
	if crumbs[3].Href != "/exams/jee-main-7/syllabus" {
		t.Fatalf("silo href should not carry the internal exam- prefix: %q", crumbs[3].Href)
	}
}

func TestArticleTrailTruncatesAndStaysFlat(t *testing.T) {
	long := "A Very Long Article Headline That Keeps Going Well Past Forty Characters"
	crumbs := ArticleTrail(long, "a-very-long-article-55")
	assertTrailInvariants(t, crumbs)
	// flat taxonomy: Home, Articles, title - never a category node
	if len(crumbs) != 3 {
		t.Fatalf("expected 3 crumbs, got %d", len(crumbs))
	}
	label := crumbs[2].Name
	if !strings.HasSuffix(label, "…") {
		t.Fatalf("expected truncated label with ellipsis, got %q", label)
	}
	if n := len([]rune(strings.TrimSuffix(label, "…"))); n > 40 {
		t.Fatalf("label too long after truncation: %d runes", n)
	}

	short := ArticleTrail("Short Headline", "short-headline-9")
	if short[2].Name != "Short Headline" {
		t.Fatalf("short titles must pass through unchanged, got %q", short[2].Name)
	}
}

func TestFilterTrail(t *testing.T) {
	crumbs := FilterTrail("colleges",
		&Facet{Name: "Engineering", Slug: "engineering"},
		&Facet{Name: "Mumbai", Slug: "mumbai"},
	)
	assertTrailInvariants(t, crumbs)
	if len(crumbs) != 4 {
		t.Fatalf("expected 4 crumbs, got %d: %+v", len(crumbs), crumbs)
	}
	if !strings.Contains(crumbs[2].Name, "Engineering") {
		t.Fatalf("stream crumb should mention the stream: %+v", crumbs[2])
	}
	if !strings.Contains(crumbs[3].Name, "Mumbai") {
		t.Fatalf("city crumb should mention the city: %+v", crumbs[3])
	}
	if crumbs[2].Href != "/colleges/stream-engineering" {
		t.Fatalf("stream href should carry the encoded facet: %q", crumbs[2].Href)
	}
	if crumbs[3].Href != "/colleges/stream-engineering--city-mumbai" {
		t.Fatalf("city href should accumulate both facets: %q", crumbs[3].Href)
	}
}

func TestFilterTrailNoFacets(t *testing.T) {
	crumbs := FilterTrail("exams", nil, nil)
	assertTrailInvariants(t, crumbs)
	if len(crumbs) != 2 {
		t.Fatalf("expected 2 crumbs, got %d", len(crumbs))
	}
	if crumbs[1].Name != "Exams" {
		t.Fatalf("unexpected section crumb: %+v", crumbs[1])
	}
}

func TestStaticAndAuthorTrails(t *testing.T) {
	assertTrailInvariants(t, StaticTrail("Privacy Policy", "/privacy-policy"))
	assertTrailInvariants(t, AuthorTrail("Asha Rao", "asha-rao-3"))
}

func TestAbsolutizeIdempotent(t *testing.T) {
	in := []Crumb{
		{Name: "Home", Href: "/"},
		{Name: "Colleges", Href: "/colleges"},
		{Name: "Ext", Href: "https://example.org/x", Current: true},
	}
	once := Absolutize(in, "https://www.truescholar.in/")
	if once[0].Href != "https://www.truescholar.in/" {
		t.Fatalf("home href: %q", once[0].Href)
	}
	if once[1].Href != "https://www.truescholar.in/colleges" {
		t.Fatalf("colleges href: %q", once[1].Href)
	}
	if once[2].Href != "https://example.org/x" {
		t.Fatalf("absolute href must pass through: %q", once[2].Href)
	}
	twice := Absolutize(once, "https://www.truescholar.in")
	for i := range twice {
		if twice[i] != once[i] {
			t.Fatalf("absolutize not idempotent at %d: %+v vs %+v", i, twice[i], once[i])
		}
	}
}

func TestTabLabelFallback(t *testing.T) {
	if got := CollegeTabLabel("brand-new-tab"); got != "Information" {
		t.Fatalf("unmapped tab label: %q", got)
	}
	if got := ExamSiloLabel("exam-brand-new"); got != "Information" {
		t.Fatalf("unmapped silo label: %q", got)
	}
}
