package main

import (
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"truescholar.in/portal-web/internal/config"
	"truescholar.in/portal-web/internal/content"
	"truescholar.in/portal-web/internal/handlers"
	"truescholar.in/portal-web/internal/observability"
	"truescholar.in/portal-web/internal/seo"
)

func main() {
	cfg := config.Load()

	var (
		addr        string
		fixturesDir string
	)
	flag.StringVar(&addr, "addr", ":"+cfg.Server.Port, "HTTP listen address")
	flag.StringVar(&fixturesDir, "fixtures", cfg.API.FixturesDir, "local fixtures directory (development)")
	flag.Parse()

	logger, err := observability.NewLogger()
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	site := seo.Site{
		BaseURL:        cfg.Site.BaseURL,
		Name:           cfg.Site.Name,
		DefaultOGImage: cfg.Site.DefaultOGImage,
		TwitterHandle:  cfg.Site.TwitterHandle,
	}
	client := content.NewClient(cfg.API.BaseURL, logger)
	client.SetFixturesDir(fixturesDir)
	h := handlers.New(site, client, logger)

	r := newRouter(h, logger)

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	logger.Info("portal-web listening", zap.String("addr", addr), zap.String("api", cfg.API.BaseURL))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("listen", zap.Error(err))
	}
}

func newRouter(h *handlers.Handlers, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	// Behind the load balancer RealIP resolves the client address from
	// X-Forwarded-For; only trusted proxies may set those headers.
	r.Use(middleware.RealIP)
	r.Use(observability.TraceMiddleware())
	r.Use(observability.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/", h.Home)
	r.Get("/colleges", h.Listing("colleges"))
	r.Get("/colleges/{segment}", h.College)
	r.Get("/colleges/{segment}/{tab}", h.College)
	r.Get("/exams", h.Listing("exams"))
	r.Get("/exams/{segment}", h.Exam)
	r.Get("/exams/{segment}/{silo}", h.Exam)
	r.Get("/articles/{segment}", h.Article)

	r.Get("/about-us", h.Static("About Us", "/about-us",
		"About Us", "Who we are and how we gather college and exam data.", false))
	r.Get("/privacy-policy", h.Static("Privacy Policy", "/privacy-policy",
		"Privacy Policy", "How we collect, use and protect your data.", false))
	r.Get("/contact-us", h.Static("Contact Us", "/contact-us",
		"Contact Us", "Get in touch with the team.", true))

	r.NotFound(h.NotFound)
	return r
}
