// Package collyfetcher implements tibia.PageClient using gocolly. It owns
// connection pooling, compression and timeouts; callers only see page text.
package collyfetcher

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/gocolly/colly/v2"

	"tibia-api/internal/tibia"
)

// DefaultBaseURL is the community section every subtopic page hangs off.
const DefaultBaseURL = "https://www.tibia.com/community/"

// defaultUserAgent mimics a desktop browser; the upstream site serves a
// degraded page to unknown agents.
const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:109.0) Gecko/20100101 Firefox/113.0"

// Config controls client behavior.
type Config struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client fetches community pages with a shared base collector that is
// cloned per request.
type Client struct {
	cfg           Config
	baseCollector *colly.Collector
}

// New builds a Client.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}

	// Synchronous collection; colly v2.1.0's Async option ignores its
	// bool argument, so rely on the synchronous default instead.
	c := colly.NewCollector()
	c.IgnoreRobotsTxt = true
	c.WithTransport(newHTTPTransport())

	return &Client{cfg: cfg, baseCollector: c}
}

// TownsPage fetches the houses listing used for the town list.
func (c *Client) TownsPage(ctx context.Context) (string, error) {
	return c.fetch(ctx, url.Values{"subtopic": {"houses"}})
}

// WorldsPage fetches the worlds overview.
func (c *Client) WorldsPage(ctx context.Context) (string, error) {
	return c.fetch(ctx, url.Values{"subtopic": {"worlds"}})
}

// WorldDetailsPage fetches a single world's page.
func (c *Client) WorldDetailsPage(ctx context.Context, world string) (string, error) {
	return c.fetch(ctx, url.Values{"subtopic": {"worlds"}, "world": {world}})
}

// GuildsPage fetches a world's guild listing.
func (c *Client) GuildsPage(ctx context.Context, world string) (string, error) {
	return c.fetch(ctx, url.Values{"subtopic": {"guilds"}, "world": {world}})
}

// KillStatisticsPage fetches a world's kill statistics.
func (c *Client) KillStatisticsPage(ctx context.Context, world string) (string, error) {
	return c.fetch(ctx, url.Values{"subtopic": {"killstatistics"}, "world": {world}})
}

// ResidencesPage fetches a houses/guildhalls listing for one town.
func (c *Client) ResidencesPage(ctx context.Context, world string, residenceType tibia.ResidenceType, town string) (string, error) {
	return c.fetch(ctx, url.Values{
		"subtopic": {"houses"},
		"world":    {world},
		"town":     {town},
		"type":     {residenceType.QueryValue()},
	})
}

// CharacterPage fetches a character page by name.
func (c *Client) CharacterPage(ctx context.Context, name string) (string, error) {
	return c.fetch(ctx, url.Values{"subtopic": {"characters"}, "name": {name}})
}

func (c *Client) fetch(ctx context.Context, params url.Values) (string, error) {
	collector := c.baseCollector.Clone()
	collector.UserAgent = c.cfg.UserAgent
	collector.IgnoreRobotsTxt = true
	collector.SetRequestTimeout(c.cfg.Timeout)

	var (
		body     []byte
		fetchErr error
	)
	collector.OnResponse(func(r *colly.Response) {
		body = append([]byte(nil), r.Body...)
	})
	collector.OnError(func(_ *colly.Response, err error) {
		fetchErr = err
	})

	target := c.cfg.BaseURL + "?" + params.Encode()
	done := make(chan error, 1)
	go func() {
		done <- collector.Visit(target)
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("fetch canceled: %w", ctx.Err())
	case err := <-done:
		if err != nil {
			return "", fmt.Errorf("fetch %s: %w", target, err)
		}
		if fetchErr != nil {
			return "", fmt.Errorf("fetch %s: %w", target, fetchErr)
		}
		return string(body), nil
	}
}

func newHTTPTransport() *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   15 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   10,
		IdleConnTimeout:       90 * time.Second,
	}
}
