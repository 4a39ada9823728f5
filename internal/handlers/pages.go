package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"truescholar.in/portal-web/internal/content"
	"truescholar.in/portal-web/internal/nav"
	"truescholar.in/portal-web/internal/page"
	"truescholar.in/portal-web/internal/seo"
	"truescholar.in/portal-web/internal/slug"
)

// ContentSource is the subset of the backend client the page handlers need.
type ContentSource interface {
	College(ctx context.Context, id int64) (page.College, error)
	Exam(ctx context.Context, id int64) (page.Exam, error)
	Article(ctx context.Context, id int64) (page.Article, error)
}

// Handlers serves head payloads for every page kind.
type Handlers struct {
	site    seo.Site
	content ContentSource
	logger  *zap.Logger
}

// New constructs the page handlers.
func New(site seo.Site, source ContentSource, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{site: site, content: source, logger: logger}
}

// Home serves the landing page head.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	v := page.Variant{Kind: page.KindStatic, Static: &page.Static{
		Name:        "Home",
		Slug:        "",
		Title:       h.site.Name + ": Find Colleges, Exams, Courses & Admissions",
		Description: "Discover colleges and entrance exams across India. Compare courses, fees, cutoffs, placements and admission dates.",
	}}
	h.respond(w, http.StatusOK, v, nav.StaticTrail("Home", "/"))
}

// College serves /colleges/{segment} and /colleges/{segment}/{tab}. Segments
// ending in "-<id>" are detail pages; anything else is treated as an encoded
// filter selection for the colleges listing.
func (h *Handlers) College(w http.ResponseWriter, r *http.Request) {
	segment := chi.URLParam(r, "segment")
	ref, err := slug.ParseID(segment)
	if err != nil {
		h.listing(w, r, "colleges", segment)
		return
	}
	col, err := h.content.College(r.Context(), ref.ID)
	if err != nil {
		h.entityError(w, r, "colleges", err)
		return
	}
	tab := chi.URLParam(r, "tab")
	var v page.Variant
	if tab != "" && tab != nav.DefaultCollegeTab {
		v = page.Variant{Kind: page.KindCollegeTab, CollegeTab: &page.CollegeTab{College: col, Tab: tab}}
	} else {
		v = page.Variant{Kind: page.KindCollege, College: &col}
	}
	slugID := slug.AppendID(col.Slug, col.ID)
	h.respond(w, http.StatusOK, v, nav.CollegeTrail(col.Name, slugID, tab))
}

// Exam serves /exams/{segment} and /exams/{segment}/{silo}.
func (h *Handlers) Exam(w http.ResponseWriter, r *http.Request) {
	segment := chi.URLParam(r, "segment")
	ref, err := slug.ParseID(segment)
	if err != nil {
		h.listing(w, r, "exams", segment)
		return
	}
	exam, err := h.content.Exam(r.Context(), ref.ID)
	if err != nil {
		h.entityError(w, r, "exams", err)
		return
	}
	silo := nav.SiloKey(chi.URLParam(r, "silo"))
	var v page.Variant
	if silo != "" && silo != nav.DefaultExamSilo {
		v = page.Variant{Kind: page.KindExamSilo, ExamSilo: &page.ExamSilo{Exam: exam, Silo: silo}}
	} else {
		v = page.Variant{Kind: page.KindExam, Exam: &exam}
	}
	name := exam.Name
	if name == "" {
		name = exam.ShortName
	}
	h.respond(w, http.StatusOK, v, nav.ExamTrail(name, slug.AppendID(exam.Slug, exam.ID), silo))
}

// Article serves /articles/{segment}.
func (h *Handlers) Article(w http.ResponseWriter, r *http.Request) {
	ref, err := slug.ParseID(chi.URLParam(r, "segment"))
	if err != nil {
		h.notFound(w, r, "articles")
		return
	}
	art, err := h.content.Article(r.Context(), ref.ID)
	if err != nil {
		h.entityError(w, r, "articles", err)
		return
	}
	v := page.Variant{Kind: page.KindArticle, Article: &art}
	h.respond(w, http.StatusOK, v, nav.ArticleTrail(art.Title, slug.AppendID(art.Slug, art.ID)))
}

// Listing serves the unfiltered /colleges and /exams roots.
func (h *Handlers) Listing(entityType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.listing(w, r, entityType, "")
	}
}

func (h *Handlers) listing(w http.ResponseWriter, r *http.Request, entityType, segment string) {
	state, err := slug.Decode(segment)
	if err != nil {
		h.notFound(w, r, entityType)
		return
	}
	f := page.Filter{
		EntityType: entityType,
		Stream:     facetFromSlug(state.Stream),
		City:       facetFromSlug(state.City),
		Selection:  state,
	}
	v := page.Variant{Kind: page.KindFilter, Filter: &f}
	h.respond(w, http.StatusOK, v, nav.FilterTrail(entityType, navFacet(f.Stream), navFacet(f.City)))
}

// Static returns a handler for a fixed informational page.
func (h *Handlers) Static(name, path, title, description string, noIndex bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := page.Variant{Kind: page.KindStatic, Static: &page.Static{
			Name:        name,
			Slug:        strings.Trim(path, "/"),
			Title:       title,
			Description: description,
			NoIndex:     noIndex,
		}}
		h.respond(w, http.StatusOK, v, nav.StaticTrail(name, path))
	}
}

// NotFound serves the catch-all 404 head.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	h.notFound(w, r, "")
}

func (h *Handlers) respond(w http.ResponseWriter, status int, v page.Variant, crumbs []nav.Crumb) {
	graph := seo.MergeSchemas(h.site.GlobalSchema(), h.site.PageSchema(v))
	writeHead(w, status, HeadData{
		Meta:        h.site.PageMetadata(v),
		Breadcrumbs: crumbs,
		JSONLD:      seo.JSON(graph),
	})
}

func (h *Handlers) entityError(w http.ResponseWriter, r *http.Request, entityType string, err error) {
	if errors.Is(err, content.ErrNotFound) || errors.Is(err, slug.ErrInvalidSlug) {
		h.notFound(w, r, entityType)
		return
	}
	h.logger.Error("content fetch failed", zap.String("path", r.URL.Path), zap.Error(err))
	writeHead(w, http.StatusInternalServerError, HeadData{
		Meta:   h.site.ErrorMetadata("error", entityType),
		JSONLD: seo.JSON(h.site.GlobalSchema()),
	})
}

func (h *Handlers) notFound(w http.ResponseWriter, r *http.Request, entityType string) {
	writeHead(w, http.StatusNotFound, HeadData{
		Meta:   h.site.ErrorMetadata("not-found", entityType),
		JSONLD: seo.JSON(h.site.GlobalSchema()),
	})
}

func facetFromSlug(s string) *page.Facet {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		r := []rune(p)
		if r[0] >= 'a' && r[0] <= 'z' {
			r[0] -= 'a' - 'A'
		}
		parts[i] = string(r)
	}
	return &page.Facet{Name: strings.Join(parts, " "), Slug: s}
}

func navFacet(f *page.Facet) *nav.Facet {
	if f == nil {
		return nil
	}
	return &nav.Facet{Name: f.Name, Slug: f.Slug}
}
