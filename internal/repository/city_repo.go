package repository

import (
	"context"

	"staybook/internal/domain"

	"gorm.io/gorm"
)

type CityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) *CityRepository {
	return &CityRepository{db: db}
}

// IDByName resolves a city case-insensitively. Returns
// gorm.ErrRecordNotFound when the name is unknown.
func (r *CityRepository) IDByName(ctx context.Context, name string) (int64, error) {
	var row struct{ ID int64 }
	tx := r.db.WithContext(ctx).Raw(
		`SELECT id FROM cities WHERE LOWER(name) = LOWER(?)`, name,
	).Scan(&row)
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return row.ID, nil
}

func (r *CityRepository) List(ctx context.Context) ([]domain.City, error) {
	var cities []domain.City
	tx := r.db.WithContext(ctx).Order("name").Find(&cities)
	return cities, tx.Error
}

func (r *CityRepository) Create(ctx context.Context, c *domain.City) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CityRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.City{}, id).Error
}
