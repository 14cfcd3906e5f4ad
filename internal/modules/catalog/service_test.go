package catalog

import (
	"context"
	"testing"

	"staybook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCityStore struct {
	cities []domain.City
}

func (m *mockCityStore) List(ctx context.Context) ([]domain.City, error) { return m.cities, nil }
func (m *mockCityStore) Create(ctx context.Context, c *domain.City) error {
	m.cities = append(m.cities, *c)
	return nil
}
func (m *mockCityStore) Delete(ctx context.Context, id int64) error { return nil }

type mockAccomStore struct {
	apartments []domain.Apartment
	flats      []domain.Flat
	rooms      []domain.Room
	beds       []domain.Bed
}

func (m *mockAccomStore) ListApartments(ctx context.Context) ([]domain.Apartment, error) {
	return m.apartments, nil
}
func (m *mockAccomStore) ListFlats(ctx context.Context) ([]domain.Flat, error) { return m.flats, nil }
func (m *mockAccomStore) ListRooms(ctx context.Context) ([]domain.Room, error) { return m.rooms, nil }
func (m *mockAccomStore) ListBeds(ctx context.Context) ([]domain.Bed, error)   { return m.beds, nil }

func (m *mockAccomStore) CreateApartment(ctx context.Context, a *domain.Apartment) error { return nil }
func (m *mockAccomStore) CreateFlat(ctx context.Context, f *domain.Flat) error           { return nil }
func (m *mockAccomStore) CreateRoom(ctx context.Context, r *domain.Room) error           { return nil }
func (m *mockAccomStore) CreateBed(ctx context.Context, b *domain.Bed) error             { return nil }

func (m *mockAccomStore) DeleteApartment(ctx context.Context, id int64) error { return nil }
func (m *mockAccomStore) DeleteFlat(ctx context.Context, id int64) error      { return nil }
func (m *mockAccomStore) DeleteRoom(ctx context.Context, id int64) error      { return nil }
func (m *mockAccomStore) DeleteBed(ctx context.Context, id int64) error       { return nil }

func TestHierarchyCollectsEveryLevel(t *testing.T) {
	blockedBy := int64(4)
	svc := NewService(
		&mockCityStore{cities: []domain.City{{ID: 1, Name: "Berlin"}}},
		&mockAccomStore{
			apartments: []domain.Apartment{{ID: 2, Name: "Tower A", CityID: 1}},
			flats:      []domain.Flat{{ID: 3, Name: "Flat 3", ApartmentID: 2}},
			rooms:      []domain.Room{{ID: 4, Name: "Room 12", FlatID: 3, Beds: 2}},
			beds: []domain.Bed{
				{ID: 5, Name: "Bed 1", RoomID: 4},
				{ID: 6, Name: "Bed 2", RoomID: 4, IsBooked: true, BlockedBy: &blockedBy},
			},
		},
	)

	h, err := svc.Hierarchy(context.Background())
	require.NoError(t, err)

	assert.Len(t, h.Cities, 1)
	assert.Len(t, h.Apartments, 1)
	assert.Len(t, h.Flats, 1)
	assert.Len(t, h.Rooms, 1)
	require.Len(t, h.Beds, 2)

	// occupancy flag is exposed as "status"
	assert.False(t, h.Beds[0].Status)
	assert.True(t, h.Beds[1].Status)
	require.NotNil(t, h.Beds[1].BlockedBy)
	assert.Equal(t, int64(4), *h.Beds[1].BlockedBy)
}
