package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"staybook/internal/domain"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type Service struct {
	cities   CityResolver
	requests RequestWriter
	now      func() time.Time
}

func NewService(cities CityResolver, requests RequestWriter) *Service {
	return &Service{
		cities:   cities,
		requests: requests,
		now:      time.Now,
	}
}

// Create validates the intake payload and inserts one pending request,
// fanning out one team-member row per supplied email for team
// bookings. Member inserts run concurrently and are independent: if
// one fails, rows already written stay written and the whole call
// reports the failure.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (int64, error) {
	from, err := time.Parse("2006-01-02", req.Dates.From)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid start date", ErrValidation)
	}
	to, err := time.Parse("2006-01-02", req.Dates.To)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid end date", ErrValidation)
	}
	if to.Before(from) {
		return 0, fmt.Errorf("%w: end date precedes start date", ErrValidation)
	}
	if int(to.Sub(from).Hours()/24) > domain.MaxStayDays {
		return 0, ErrMaxStay
	}

	checkIn, err := s.timeOfDay(req.CheckInTime)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid check-in time", ErrValidation)
	}
	checkOut, err := s.timeOfDay(req.CheckOutTime)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid check-out time", ErrValidation)
	}

	cityID, err := s.cities.IDByName(ctx, req.City)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrCityNotFound
		}
		return 0, err
	}

	r := &domain.Request{
		UserID:      req.User.ID,
		CityID:      cityID,
		BookingType: domain.BookingType(req.BookingType),
		DateFrom:    from,
		DateTo:      to,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Remarks:     req.Remarks,
		Status:      domain.RequestPending,
		Timestamp:   s.now(),
	}
	if err := s.requests.Create(ctx, r); err != nil {
		return 0, err
	}

	if r.BookingType == domain.BookingTeam && len(req.TeamMembers) > 0 {
		g, gctx := errgroup.WithContext(ctx)
		for _, email := range req.TeamMembers {
			email := email
			g.Go(func() error {
				return s.requests.InsertTeamMember(gctx, r.ID, email)
			})
		}
		if err := g.Wait(); err != nil {
			return 0, err
		}
	}

	return r.ID, nil
}

// timeOfDay anchors an HH:mm wall-clock value on today's date, which
// is how check-in and check-out are stored.
func (s *Service) timeOfDay(hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	now := s.now()
	return time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location()), nil
}
