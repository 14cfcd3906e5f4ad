package booking

import (
	"context"

	"staybook/internal/domain"
)

// CityResolver resolves a city name to its id.
type CityResolver interface {
	IDByName(ctx context.Context, name string) (int64, error)
}

// RequestWriter covers the intake writes.
type RequestWriter interface {
	Create(ctx context.Context, req *domain.Request) error
	InsertTeamMember(ctx context.Context, requestID int64, email string) error
}
