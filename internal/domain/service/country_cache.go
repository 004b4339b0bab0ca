package service

import (
	"context"

	"contacts/internal/domain/entity"
)

// CountryCache keeps the country list close to the API.
// Get returns ok=false on a miss.
type CountryCache interface {
	Get(ctx context.Context) (countries []*entity.Country, ok bool, err error)
	Set(ctx context.Context, countries []*entity.Country) error
	Invalidate(ctx context.Context) error
}
