package usecase

import (
	"context"

	"clubvenue/internal/domain/catalog"
	"clubvenue/internal/pkg/errs"
)

// CatalogQueries exposes the normalized catalog to the transport layer so
// callers only ever see canonical venue categories.
type CatalogQueries interface {
	ListClubs(ctx context.Context) ([]catalog.Club, error)
	ListVenues(ctx context.Context) ([]catalog.Venue, error)
}

type catalogQueriesImpl struct {
	gateway CatalogGateway
}

func NewCatalogQueries(gateway CatalogGateway) CatalogQueries {
	return &catalogQueriesImpl{gateway: gateway}
}

func (q *catalogQueriesImpl) ListClubs(ctx context.Context) ([]catalog.Club, error) {
	clubs, err := q.gateway.FetchClubs(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogUnavailable)
	}
	return clubs, nil
}

func (q *catalogQueriesImpl) ListVenues(ctx context.Context) ([]catalog.Venue, error) {
	venues, err := q.gateway.FetchVenues(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrCatalogUnavailable)
	}
	return venues, nil
}
