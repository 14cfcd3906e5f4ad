package catalog

import (
	"context"

	"staybook/internal/domain"
)

type CityStore interface {
	List(ctx context.Context) ([]domain.City, error)
	Create(ctx context.Context, c *domain.City) error
	Delete(ctx context.Context, id int64) error
}

type AccommodationStore interface {
	ListApartments(ctx context.Context) ([]domain.Apartment, error)
	ListFlats(ctx context.Context) ([]domain.Flat, error)
	ListRooms(ctx context.Context) ([]domain.Room, error)
	ListBeds(ctx context.Context) ([]domain.Bed, error)

	CreateApartment(ctx context.Context, a *domain.Apartment) error
	CreateFlat(ctx context.Context, f *domain.Flat) error
	CreateRoom(ctx context.Context, r *domain.Room) error
	CreateBed(ctx context.Context, b *domain.Bed) error

	DeleteApartment(ctx context.Context, id int64) error
	DeleteFlat(ctx context.Context, id int64) error
	DeleteRoom(ctx context.Context, id int64) error
	DeleteBed(ctx context.Context, id int64) error
}
