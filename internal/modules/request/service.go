package request

import (
	"context"
	"fmt"
	"time"

	"staybook/internal/domain"
	"staybook/internal/repository"
)

type Service struct {
	requests RequestStore
	now      func() time.Time
}

func NewService(requests RequestStore) *Service {
	return &Service{
		requests: requests,
		now:      time.Now,
	}
}

func (q ListQuery) toFilter() (repository.RequestFilter, error) {
	f := repository.RequestFilter{
		City:   q.City,
		Status: q.Status,
		Role:   q.Role,
		Search: q.Search,
	}
	if q.DateFrom != "" {
		t, err := time.Parse("2006-01-02", q.DateFrom)
		if err != nil {
			return f, fmt.Errorf("%w: invalid dateFrom", ErrValidation)
		}
		f.DateFrom = &t
	}
	if q.DateTo != "" {
		t, err := time.Parse("2006-01-02", q.DateTo)
		if err != nil {
			return f, fmt.Errorf("%w: invalid dateTo", ErrValidation)
		}
		f.DateTo = &t
	}
	return f, nil
}

// List returns the filtered history, aggregated per request.
func (s *Service) List(ctx context.Context, q ListQuery) ([]RequestView, error) {
	f, err := q.toFilter()
	if err != nil {
		return nil, err
	}
	rows, err := s.requests.ListHistory(ctx, f)
	if err != nil {
		return nil, err
	}
	return Aggregate(rows), nil
}

// ListFlat is the un-aggregated staff view, optionally narrowed to one
// status.
func (s *Service) ListFlat(ctx context.Context, status string) ([]repository.FlatRequestRow, error) {
	return s.requests.ListFlat(ctx, status)
}

// Approval is the echoed outcome of an approve call.
type Approval struct {
	ID          int64
	Status      domain.RequestStatus
	ApartmentID *int64
	FlatID      *int64
	RoomID      *int64
	CottageID   *int64
	Remarks     string
}

// Approve resolves a pending request and records one accommodation
// assignment for the requester. The three store calls are sequential:
// each depends on the previous result. A request that was already
// resolved is overwritten; there is no double-processing guard.
func (s *Service) Approve(ctx context.Context, id int64, body DecisionBody) (*Approval, error) {
	found, err := s.requests.UpdateStatus(ctx, id, domain.RequestApproved, body.Remarks, s.now())
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}

	email, cityID, err := s.requests.OwnerContext(ctx, id)
	if err != nil {
		return nil, err
	}

	// Bed-level assignment does not happen on this path.
	if err := s.requests.InsertAssignment(ctx, &domain.AssignedAccommodation{
		RequestID:   id,
		UserEmail:   email,
		CityID:      cityID,
		ApartmentID: body.ApartmentID,
		FlatID:      body.FlatID,
		RoomID:      body.RoomID,
	}); err != nil {
		return nil, err
	}

	return &Approval{
		ID:          id,
		Status:      domain.RequestApproved,
		ApartmentID: body.ApartmentID,
		FlatID:      body.FlatID,
		RoomID:      body.RoomID,
		CottageID:   body.CottageID,
		Remarks:     body.Remarks,
	}, nil
}

// Reject resolves a request with no assignment side effect.
func (s *Service) Reject(ctx context.Context, id int64, remarks string) error {
	found, err := s.requests.UpdateStatus(ctx, id, domain.RequestRejected, remarks, s.now())
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

// Export renders the filtered history as CSV, one record per assigned
// email.
func (s *Service) Export(ctx context.Context, q ListQuery) (filename string, data []byte, err error) {
	f, err := q.toFilter()
	if err != nil {
		return "", nil, err
	}
	rows, err := s.requests.ListHistory(ctx, f)
	if err != nil {
		return "", nil, err
	}
	team, err := s.requests.TeamMembersByRequest(ctx)
	if err != nil {
		return "", nil, err
	}

	data, err = renderCSV(rows, team)
	if err != nil {
		return "", nil, err
	}
	filename = fmt.Sprintf("booking_history_%d.csv", s.now().UnixMilli())
	return filename, data, nil
}
