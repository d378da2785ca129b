// Package service orchestrates fetching and extraction: one method per
// resource, plus the fan-out residence aggregation.
package service

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"tibia-api/internal/metrics"
	"tibia-api/internal/scrape"
	"tibia-api/internal/tibia"
)

// ColdTownsPolicy decides what an unwarmed towns cache means for an
// unfiltered residence aggregation.
type ColdTownsPolicy string

const (
	// ColdTownsFetch fetches the town list (warming the cache) before
	// aggregating.
	ColdTownsFetch ColdTownsPolicy = "fetch"
	// ColdTownsEmpty treats a cold cache as an empty town set.
	ColdTownsEmpty ColdTownsPolicy = "empty"
)

// Config controls aggregation behavior.
type Config struct {
	// ResidenceConcurrency bounds the number of in-flight upstream
	// fetches during residence aggregation.
	ResidenceConcurrency int
	ColdTownsPolicy      ColdTownsPolicy
}

// Service exposes the typed view over the upstream community pages.
type Service struct {
	client tibia.PageClient
	towns  tibia.TownsCache
	clock  tibia.Clock
	cfg    Config
	logger *zap.Logger
}

// New constructs a Service.
func New(client tibia.PageClient, townsCache tibia.TownsCache, clock tibia.Clock, cfg Config, logger *zap.Logger) *Service {
	if cfg.ResidenceConcurrency <= 0 {
		cfg.ResidenceConcurrency = 10
	}
	if cfg.ColdTownsPolicy == "" {
		cfg.ColdTownsPolicy = ColdTownsFetch
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		towns:  townsCache,
		clock:  clock,
		cfg:    cfg,
		logger: logger,
	}
}

// Towns returns the town list in page order and warms the towns cache.
func (s *Service) Towns(ctx context.Context) ([]string, error) {
	body, err := s.client.TownsPage(ctx)
	if err != nil {
		return nil, s.fail("houses", "fetch towns page", err)
	}
	towns, err := scrape.Towns(body)
	if err != nil {
		return nil, s.fail("houses", "extract towns", err)
	}
	s.towns.Set(towns)
	metrics.ObservePage("houses", "ok")
	return towns, nil
}

// Worlds returns the worlds overview.
func (s *Service) Worlds(ctx context.Context) (*tibia.WorldsOverview, error) {
	body, err := s.client.WorldsPage(ctx)
	if err != nil {
		return nil, s.fail("worlds", "fetch worlds page", err)
	}
	overview, err := scrape.Worlds(body)
	if err != nil {
		return nil, s.fail("worlds", "extract worlds", err)
	}
	metrics.ObservePage("worlds", "ok")
	return overview, nil
}

// WorldDetails returns one world's page. The name is capitalized before
// the fetch, matching the upstream's canonical world names.
func (s *Service) WorldDetails(ctx context.Context, name string) (*tibia.WorldDetails, error) {
	name = capitalize(name)
	body, err := s.client.WorldDetailsPage(ctx, name)
	if err != nil {
		return nil, s.fail("worlds", "fetch world details page", err)
	}
	details, err := scrape.WorldDetails(body, name)
	if err != nil {
		return nil, s.fail("worlds", "extract world details", err)
	}
	metrics.ObservePage("worlds", "ok")
	return details, nil
}

// Guilds returns a world's guild listing.
func (s *Service) Guilds(ctx context.Context, world string) ([]tibia.Guild, error) {
	world = capitalize(world)
	body, err := s.client.GuildsPage(ctx, world)
	if err != nil {
		return nil, s.fail("guilds", "fetch guilds page", err)
	}
	guilds, err := scrape.Guilds(body)
	if err != nil {
		return nil, s.fail("guilds", "extract guilds", err)
	}
	metrics.ObservePage("guilds", "ok")
	return guilds, nil
}

// KillStatistics returns a world's kill statistics.
func (s *Service) KillStatistics(ctx context.Context, world string) (*tibia.KillStatistics, error) {
	world = capitalize(world)
	body, err := s.client.KillStatisticsPage(ctx, world)
	if err != nil {
		return nil, s.fail("killstatistics", "fetch kill statistics page", err)
	}
	stats, err := scrape.KillStatistics(body)
	if err != nil {
		return nil, s.fail("killstatistics", "extract kill statistics", err)
	}
	metrics.ObservePage("killstatistics", "ok")
	return stats, nil
}

// Character returns a character page by name.
func (s *Service) Character(ctx context.Context, name string) (*tibia.CharacterInfo, error) {
	body, err := s.client.CharacterPage(ctx, name)
	if err != nil {
		return nil, s.fail("characters", "fetch character page", err)
	}
	info, err := scrape.Character(body)
	if err != nil {
		return nil, s.fail("characters", "extract character", err)
	}
	metrics.ObservePage("characters", "ok")
	return info, nil
}

func (s *Service) fail(subtopic, stage string, err error) error {
	metrics.ObservePage(subtopic, outcome(err))
	s.logger.Error(stage+" failed", zap.Error(err))
	return err
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, tibia.ErrMaintenance):
		return "maintenance"
	case errors.Is(err, tibia.ErrNotFound):
		return "not_found"
	case errors.Is(err, tibia.ErrUnexpectedContent):
		return "unexpected_content"
	default:
		return "transport"
	}
}

// capitalize upper-cases the first rune and lower-cases the rest,
// producing the upstream's canonical world-name form.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
