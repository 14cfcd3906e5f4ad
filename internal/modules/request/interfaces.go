package request

import (
	"context"
	"time"

	"staybook/internal/domain"
	"staybook/internal/repository"
)

// RequestStore is the slice of the entity store this module needs.
type RequestStore interface {
	ListHistory(ctx context.Context, f repository.RequestFilter) ([]repository.HistoryRow, error)
	ListFlat(ctx context.Context, status string) ([]repository.FlatRequestRow, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RequestStatus, remarks string, processedAt time.Time) (bool, error)
	OwnerContext(ctx context.Context, id int64) (email string, cityID int64, err error)
	InsertAssignment(ctx context.Context, a *domain.AssignedAccommodation) error
	TeamMembersByRequest(ctx context.Context) (map[int64][]string, error)
}
