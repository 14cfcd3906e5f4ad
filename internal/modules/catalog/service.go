package catalog

import (
	"context"

	"staybook/internal/domain"

	"golang.org/x/sync/errgroup"
)

type Service struct {
	cities CityStore
	accom  AccommodationStore
}

func NewService(cities CityStore, accom AccommodationStore) *Service {
	return &Service{cities: cities, accom: accom}
}

// Hierarchy fetches all five levels concurrently and returns them as
// one flat-per-level tree.
func (s *Service) Hierarchy(ctx context.Context) (*Hierarchy, error) {
	var h Hierarchy
	var beds []domain.Bed

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		h.Cities, err = s.cities.List(gctx)
		return err
	})
	g.Go(func() (err error) {
		h.Apartments, err = s.accom.ListApartments(gctx)
		return err
	})
	g.Go(func() (err error) {
		h.Flats, err = s.accom.ListFlats(gctx)
		return err
	})
	g.Go(func() (err error) {
		h.Rooms, err = s.accom.ListRooms(gctx)
		return err
	})
	g.Go(func() (err error) {
		beds, err = s.accom.ListBeds(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	h.Beds = make([]BedView, 0, len(beds))
	for _, b := range beds {
		h.Beds = append(h.Beds, BedView{
			ID:        b.ID,
			Name:      b.Name,
			RoomID:    b.RoomID,
			Status:    b.IsBooked,
			BlockedBy: b.BlockedBy,
		})
	}
	return &h, nil
}
