package booking

import (
	"context"

	"multisport/models"
)

// AvailabilityResolver finds candidate rooms for an activity and decides
// whether a room/day/time interval collides with existing bookings or the
// recurring activity planning.
type AvailabilityResolver interface {
	FindRoomsForActivity(ctx context.Context, activite string) ([]models.Room, error)
	HasConflict(ctx context.Context, room models.Room, jour, heureDebut, heureFin string) (bool, error)
}

// RoomResolver maps an informal room key ("salle_a") to the canonical room
// record. Returns ErrSalleNotFound when no room matches.
type RoomResolver interface {
	Resolve(ctx context.Context, key string) (*models.Room, error)
}
