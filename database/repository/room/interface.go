package roomRepo

import (
	"context"

	"multisport/models"
)

// RoomRepository provides read access to the room directory.
type RoomRepository interface {
	// GetByName performs a case-insensitive exact-name lookup.
	// Returns (nil, nil) when no room carries that name.
	GetByName(ctx context.Context, name string) (*models.Room, error)
	// FindByActivity returns rooms whose supported-activity list contains
	// the given activity as a case-insensitive substring.
	FindByActivity(ctx context.Context, activity string) ([]models.Room, error)
	// ListAll returns every room of the facility.
	ListAll(ctx context.Context) ([]models.Room, error)
}
