package nav

import "strings"

// DefaultCollegeTab is the tab a bare college URL lands on. It never adds a
// breadcrumb node of its own; the college node already covers it.
const DefaultCollegeTab = "info"

// DefaultExamSilo is the silo a bare exam URL lands on.
const DefaultExamSilo = "exam-info"

// fallbackLabel covers tab/silo keys added to the backend before this service
// learns their label.
const fallbackLabel = "Information"

var collegeTabLabels = map[string]string{
	"info":        "Info",
	"courses":     "Courses & Fees",
	"admission":   "Admission",
	"cutoffs":     "Cutoff",
	"placements":  "Placements",
	"ranking":     "Ranking",
	"reviews":     "Reviews",
	"scholarship": "Scholarship",
	"facilities":  "Facilities",
	"news":        "News",
}

var examSiloLabels = map[string]string{
	"exam-info":            "Info",
	"exam-syllabus":        "Syllabus",
	"exam-pattern":         "Exam Pattern",
	"exam-dates":           "Important Dates",
	"exam-eligibility":     "Eligibility",
	"exam-cutoff":          "Cutoff",
	"exam-results":         "Results",
	"exam-admit-card":      "Admit Card",
	"exam-application":     "Application Form",
	"exam-counselling":     "Counselling",
	"exam-question-papers": "Question Papers",
}

// CollegeTabLabel maps a tab key to its human label.
func CollegeTabLabel(tab string) string {
	if l, ok := collegeTabLabels[tab]; ok {
		return l
	}
	return fallbackLabel
}

// ExamSiloLabel maps an internal silo key to its human label.
func ExamSiloLabel(silo string) string {
	if l, ok := examSiloLabels[silo]; ok {
		return l
	}
	return fallbackLabel
}

// SiloPath converts an internal silo key to its URL segment: the keys carry
// an "exam-" prefix internally that never appears in URLs.
func SiloPath(silo string) string {
	return strings.TrimPrefix(silo, "exam-")
}

// SiloKey converts a URL segment back to the internal silo key.
func SiloKey(segment string) string {
	if segment == "" {
		return ""
	}
	if strings.HasPrefix(segment, "exam-") {
		return segment
	}
	return "exam-" + segment
}
