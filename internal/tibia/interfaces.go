package tibia

import (
	"context"
	"time"
)

// PageClient fetches raw community pages from tibia.com. Implementations
// own connection pooling, compression and timeouts; extraction never does
// its own I/O.
type PageClient interface {
	TownsPage(ctx context.Context) (string, error)
	WorldsPage(ctx context.Context) (string, error)
	WorldDetailsPage(ctx context.Context, world string) (string, error)
	GuildsPage(ctx context.Context, world string) (string, error)
	KillStatisticsPage(ctx context.Context, world string) (string, error)
	ResidencesPage(ctx context.Context, world string, residenceType ResidenceType, town string) (string, error)
	CharacterPage(ctx context.Context, name string) (string, error)
}

// Clock supplies the current instant. Injected so auction expiry
// derivation is testable.
type Clock interface {
	Now() time.Time
}

// TownsCache is the process-wide towns cache collaborator. Readers may
// observe a cold cache; what that means is the aggregator's policy choice,
// not the cache's.
type TownsCache interface {
	Get() ([]string, bool)
	Set(towns []string)
}
