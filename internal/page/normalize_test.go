package page

import (
	"testing"
)

func TestNormalizeCollegeLocationFallback(t *testing.T) {
	ent, err := Normalize(Variant{Kind: KindCollege, College: &College{
		ID: 1, Name: " IIT Delhi ", Slug: "iit-delhi", City: "New Delhi", State: "Delhi",
	}})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if ent.Name != "IIT Delhi" {
		t.Fatalf("name not trimmed: %q", ent.Name)
	}
	if ent.Location != "New Delhi, Delhi" {
		t.Fatalf("location fallback: %q", ent.Location)
	}

	explicit, _ := Normalize(Variant{Kind: KindCollege, College: &College{
		ID: 1, Name: "X", Location: "Hauz Khas, New Delhi", City: "New Delhi",
	}})
	if explicit.Location != "Hauz Khas, New Delhi" {
		t.Fatalf("explicit location must win: %q", explicit.Location)
	}

	cityOnly, _ := Normalize(Variant{Kind: KindCollege, College: &College{ID: 1, Name: "X", City: "Pune"}})
	if cityOnly.Location != "Pune" {
		t.Fatalf("city-only location: %q", cityOnly.Location)
	}
}

func TestNormalizeExamShortNameFallback(t *testing.T) {
	ent, err := Normalize(Variant{Kind: KindExam, Exam: &Exam{ID: 7, ShortName: "JEE", Slug: "jee"}})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if ent.Name != "JEE" {
		t.Fatalf("short name fallback: %q", ent.Name)
	}
}

func TestNormalizeTabAndSilo(t *testing.T) {
	tab, err := Normalize(Variant{Kind: KindCollegeTab, CollegeTab: &CollegeTab{
		College: College{ID: 1, Name: "X", Slug: "x"}, Tab: "cutoffs",
	}})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if tab.Kind != KindCollegeTab || tab.Tab != "cutoffs" {
		t.Fatalf("tab entity: %+v", tab)
	}

	silo, err := Normalize(Variant{Kind: KindExamSilo, ExamSilo: &ExamSilo{
		Exam: Exam{ID: 7, Name: "JEE Main", Slug: "jee-main"}, Silo: "exam-syllabus",
	}})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if silo.Tab != "exam-syllabus" {
		t.Fatalf("silo key: %q", silo.Tab)
	}
}

func TestNormalizeStaticNameFallsBackToTitle(t *testing.T) {
	ent, err := Normalize(Variant{Kind: KindStatic, Static: &Static{Title: "About Us", Slug: "about-us"}})
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if ent.Name != "About Us" {
		t.Fatalf("name fallback: %q", ent.Name)
	}
}

func TestNormalizeRejectsBadVariants(t *testing.T) {
	if _, err := Normalize(Variant{Kind: Kind("mystery")}); err == nil {
		t.Fatal("unknown kind must error")
	}
	if _, err := Normalize(Variant{Kind: KindCollege}); err == nil {
		t.Fatal("missing payload must error")
	}
}
