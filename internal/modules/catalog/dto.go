package catalog

import "staybook/internal/domain"

// BedView exposes the occupancy flag under the name the frontend
// expects.
type BedView struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	RoomID    int64  `json:"room_id"`
	Status    bool   `json:"status"`
	BlockedBy *int64 `json:"blocked_by"`
}

// Hierarchy is the full containment tree, flat per level.
type Hierarchy struct {
	Cities     []domain.City      `json:"cities"`
	Apartments []domain.Apartment `json:"apartments"`
	Flats      []domain.Flat      `json:"flats"`
	Rooms      []domain.Room      `json:"rooms"`
	Beds       []BedView          `json:"beds"`
}
