package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"truescholar.in/portal-web/internal/content"
	"truescholar.in/portal-web/internal/handlers"
	"truescholar.in/portal-web/internal/page"
	"truescholar.in/portal-web/internal/seo"
)

type fixedSource struct{}

func (fixedSource) College(ctx context.Context, id int64) (page.College, error) {
	return page.College{ID: id, Name: "IIT Delhi", Slug: "iit-delhi", City: "New Delhi", State: "Delhi"}, nil
}

func (fixedSource) Exam(ctx context.Context, id int64) (page.Exam, error) {
	return page.Exam{ID: id, Name: "JEE Main", Slug: "jee-main"}, nil
}

func (fixedSource) Article(ctx context.Context, id int64) (page.Article, error) {
	return page.Article{}, content.ErrNotFound
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	h := handlers.New(seo.DefaultSite, fixedSource{}, zap.NewNop())
	return newRouter(h, zap.NewNop())
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := get(t, newTestRouter(t), "/healthz")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if got := rec.Body.String(); got != "ok" {
		t.Fatalf("body = %q", got)
	}
}

func TestRouteWiring(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		path string
		code int
	}{
		{"/", http.StatusOK},
		{"/colleges", http.StatusOK},
		{"/colleges/iit-delhi-12", http.StatusOK},
		{"/colleges/iit-delhi-12/courses", http.StatusOK},
		{"/colleges/stream-engineering", http.StatusOK},
		{"/exams", http.StatusOK},
		{"/exams/jee-main-7", http.StatusOK},
		{"/exams/jee-main-7/syllabus", http.StatusOK},
		{"/articles/some-post-3", http.StatusNotFound},
		{"/about-us", http.StatusOK},
		{"/privacy-policy", http.StatusOK},
		{"/contact-us", http.StatusOK},
		{"/no/such/route", http.StatusNotFound},
	}
	for _, tc := range cases {
		if rec := get(t, router, tc.path); rec.Code != tc.code {
			t.Errorf("GET %s = %d, want %d", tc.path, rec.Code, tc.code)
		}
	}
}

func TestHeadResponsesAreJSON(t *testing.T) {
	router := newTestRouter(t)

	rec := get(t, router, "/colleges/iit-delhi-12")
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "IIT Delhi") {
		t.Fatal("body missing entity name")
	}
}

func TestContactUsIsNoIndex(t *testing.T) {
	rec := get(t, newTestRouter(t), "/contact-us")
	if !strings.Contains(rec.Body.String(), `"index":false`) {
		t.Fatalf("contact page must be noindex: %s", rec.Body.String())
	}
}

func TestNotFoundCatchAll(t *testing.T) {
	rec := get(t, newTestRouter(t), "/definitely-not-a-page")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"index":false`) {
		t.Fatal("404 head must be noindex")
	}
}
