package queries

import (
	"context"
	"log/slog"

	"barberbook/internal/domain/catalog"
	"barberbook/internal/pkg/errs"
)

var ErrCatalogUnavailable = errs.New("service catalog unavailable")

type CatalogReadStore interface {
	ListServices(ctx context.Context) ([]catalog.RawService, error)
}

type CatalogQueries interface {
	Services(ctx context.Context) ([]*ServiceView, error)
	// Snapshot returns the parsed catalog for pricing and duration lookups.
	Snapshot(ctx context.Context) (*catalog.Catalog, error)
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
}

func NewCatalogQueries(readStore CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{readStore: readStore}
}

func (q *catalogQueriesImpl) Snapshot(ctx context.Context) (*catalog.Catalog, error) {
	raw, err := q.readStore.ListServices(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogUnavailable)
	}
	loaded, reports := catalog.Load(raw)
	for _, r := range reports {
		slog.Warn("catalog field unparseable, default substituted",
			"service", r.Service, "field", r.Field, "raw", r.Raw, "default", r.Default)
	}
	return loaded, nil
}

func (q *catalogQueriesImpl) Services(ctx context.Context) ([]*ServiceView, error) {
	loaded, err := q.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*ServiceView, 0, loaded.Len())
	for _, name := range loaded.Names() {
		def, lookupErr := loaded.Lookup(name)
		if lookupErr != nil {
			continue
		}
		views = append(views, &ServiceView{
			Name:            def.Name,
			PriceMinor:      def.PriceMinor,
			DurationMinutes: def.DurationMinutes,
			Description:     def.Description,
		})
	}
	return views, nil
}
