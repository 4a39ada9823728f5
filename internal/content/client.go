package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"truescholar.in/portal-web/internal/observability"
	"truescholar.in/portal-web/internal/page"
)

// ErrNotFound is returned when the backend has no entity for the given id.
var ErrNotFound = errors.New("content: not found")

// Client provides read-only access to the backend content API. When no base
// URL is configured (local development, tests) it serves from the fixtures
// directory instead.
type Client struct {
	baseURL     string
	http        *retryablehttp.Client
	fixturesDir string
	logger      *zap.Logger
}

// NewClient constructs a Client for the given API base URL. An empty baseURL
// disables remote fetching entirely.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	rc := retryablehttp.NewClient()
	rc.RetryMax = 3
	rc.RetryWaitMin = 200 * time.Millisecond
	rc.RetryWaitMax = 2 * time.Second
	rc.HTTPClient.Timeout = 5 * time.Second
	rc.Logger = printfAdapter{logger.Sugar()}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    rc,
		logger:  logger,
	}
}

// SetFixturesDir configures the local fallback directory.
func (c *Client) SetFixturesDir(dir string) {
	if c != nil {
		c.fixturesDir = strings.TrimSpace(dir)
	}
}

// College fetches a college profile by id.
func (c *Client) College(ctx context.Context, id int64) (page.College, error) {
	raw, err := c.fetch(ctx, "colleges", id)
	if err != nil {
		return page.College{}, err
	}
	return collegeFromJSON(raw), nil
}

// Exam fetches an exam profile by id.
func (c *Client) Exam(ctx context.Context, id int64) (page.Exam, error) {
	raw, err := c.fetch(ctx, "exams", id)
	if err != nil {
		return page.Exam{}, err
	}
	return examFromJSON(raw), nil
}

// Article fetches an article by id.
func (c *Client) Article(ctx context.Context, id int64) (page.Article, error) {
	raw, err := c.fetch(ctx, "articles", id)
	if err != nil {
		return page.Article{}, err
	}
	return articleFromJSON(raw), nil
}

// fetch returns the raw JSON payload for one entity, consulting the cache,
// then the remote API, then local fixtures.
func (c *Client) fetch(ctx context.Context, kind string, id int64) ([]byte, error) {
	key := kind + "|" + strconv.FormatInt(id, 10)
	if raw, ok := cached(key); ok {
		return raw, nil
	}

	raw, err := c.fetchRemote(ctx, kind, id)
	if err != nil && !errors.Is(err, ErrNotFound) && c.fixturesDir != "" {
		c.logger.Warn("content: remote fetch failed, using fixtures",
			zap.String("kind", kind), zap.Int64("id", id), zap.Error(err))
		raw, err = c.fetchFixture(kind, id)
	}
	if err != nil {
		return nil, err
	}
	store(key, raw)
	return raw, nil
}

func (c *Client) fetchRemote(ctx context.Context, kind string, id int64) ([]byte, error) {
	if c.baseURL == "" {
		if c.fixturesDir != "" {
			return c.fetchFixture(kind, id)
		}
		return nil, ErrNotFound
	}
	endpoint, err := url.JoinPath(c.baseURL, kind, strconv.FormatInt(id, 10))
	if err != nil {
		return nil, err
	}
	ctx, span := observability.StartSpan(ctx, "content.fetch",
		attribute.String("content.kind", kind),
		attribute.Int64("content.id", id))
	defer span.End()
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("content: %s/%d status %d", kind, id, resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, 4<<20))
}

// printfAdapter lets retryablehttp log through zap.
type printfAdapter struct {
	sugar *zap.SugaredLogger
}

func (a printfAdapter) Printf(format string, args ...any) {
	a.sugar.Debugf(format, args...)
}
