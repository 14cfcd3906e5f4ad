package repository

import (
	"context"

	"staybook/internal/domain"

	"gorm.io/gorm"
)

// AccommodationRepository covers the apartment/flat/room/bed levels of
// the containment hierarchy.
type AccommodationRepository struct {
	db *gorm.DB
}

func NewAccommodationRepository(db *gorm.DB) *AccommodationRepository {
	return &AccommodationRepository{db: db}
}

func (r *AccommodationRepository) ListApartments(ctx context.Context) ([]domain.Apartment, error) {
	var out []domain.Apartment
	tx := r.db.WithContext(ctx).Order("id").Find(&out)
	return out, tx.Error
}

func (r *AccommodationRepository) ListFlats(ctx context.Context) ([]domain.Flat, error) {
	var out []domain.Flat
	tx := r.db.WithContext(ctx).Order("id").Find(&out)
	return out, tx.Error
}

func (r *AccommodationRepository) ListRooms(ctx context.Context) ([]domain.Room, error) {
	var out []domain.Room
	tx := r.db.WithContext(ctx).Order("id").Find(&out)
	return out, tx.Error
}

func (r *AccommodationRepository) ListBeds(ctx context.Context) ([]domain.Bed, error) {
	var out []domain.Bed
	tx := r.db.WithContext(ctx).Order("id").Find(&out)
	return out, tx.Error
}

func (r *AccommodationRepository) CreateApartment(ctx context.Context, a *domain.Apartment) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *AccommodationRepository) CreateFlat(ctx context.Context, f *domain.Flat) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *AccommodationRepository) CreateRoom(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *AccommodationRepository) CreateBed(ctx context.Context, b *domain.Bed) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *AccommodationRepository) DeleteApartment(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Apartment{}, id).Error
}

func (r *AccommodationRepository) DeleteFlat(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Flat{}, id).Error
}

func (r *AccommodationRepository) DeleteRoom(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Room{}, id).Error
}

func (r *AccommodationRepository) DeleteBed(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Bed{}, id).Error
}
