package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"tibia-api/internal/metrics"
	"tibia-api/internal/scrape"
	"tibia-api/internal/tibia"
)

type residenceQuery struct {
	town  string
	rtype tibia.ResidenceType
}

// Residences aggregates house and guildhall listings for a world.
//
// An empty town means every known town; a nil rtype means both residence
// types. Each (town, type) pair is one upstream page; the pairs are
// fetched concurrently with a bounded limit and the whole aggregation
// fails with the first error.
func (s *Service) Residences(ctx context.Context, world, town string, rtype *tibia.ResidenceType) ([]tibia.Residence, error) {
	world = capitalize(world)

	towns, err := s.residenceTowns(ctx, town)
	if err != nil {
		return nil, err
	}
	types := []tibia.ResidenceType{tibia.ResidenceHouse, tibia.ResidenceGuildhall}
	if rtype != nil {
		types = []tibia.ResidenceType{*rtype}
	}

	queries := make([]residenceQuery, 0, len(towns)*len(types))
	for _, t := range towns {
		for _, rt := range types {
			queries = append(queries, residenceQuery{town: t, rtype: rt})
		}
	}

	results := make([][]tibia.Residence, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.ResidenceConcurrency)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			residences, err := s.fetchResidences(gctx, world, q)
			if err != nil {
				return err
			}
			results[i] = residences
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make([]tibia.Residence, 0)
	for _, part := range results {
		merged = append(merged, part...)
	}
	return merged, nil
}

func (s *Service) fetchResidences(ctx context.Context, world string, q residenceQuery) ([]tibia.Residence, error) {
	body, err := s.client.ResidencesPage(ctx, world, q.rtype, q.town)
	if err != nil {
		return nil, s.fail("houses", "fetch residences page", err)
	}
	residences, err := scrape.Residences(body, world, q.rtype, q.town, s.clock.Now())
	if err != nil {
		return nil, s.fail("houses", "extract residences", err)
	}
	metrics.ObservePage("houses", "ok")
	return residences, nil
}

// residenceTowns resolves the town set for an aggregation: an explicit
// town wins, then the warm cache, then the configured cold-cache policy.
func (s *Service) residenceTowns(ctx context.Context, town string) ([]string, error) {
	if town != "" {
		return []string{town}, nil
	}
	if cached, warm := s.towns.Get(); warm {
		return cached, nil
	}
	if s.cfg.ColdTownsPolicy == ColdTownsEmpty {
		s.logger.Debug("towns cache cold, aggregating over no towns")
		return nil, nil
	}
	return s.Towns(ctx)
}
