package booking

import (
	"context"
	"fmt"
	"strings"

	roomRepo "multisport/database/repository/room"
	"multisport/models"
)

// DefaultRoomResolver implements RoomResolver over the room directory.
type DefaultRoomResolver struct {
	RoomRepo roomRepo.RoomRepository
}

// Resolve normalizes underscores to spaces and tries a case-insensitive
// exact match of the normalized string, then of the raw key, against
// canonical room names. First match wins.
func (r *DefaultRoomResolver) Resolve(ctx context.Context, key string) (*models.Room, error) {
	normalized := strings.ReplaceAll(key, "_", " ")

	room, err := r.RoomRepo.GetByName(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to look up room %q: %w", normalized, err)
	}
	if room == nil && normalized != key {
		room, err = r.RoomRepo.GetByName(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to look up room %q: %w", key, err)
		}
	}
	if room == nil {
		return nil, fmt.Errorf("room %q: %w", key, ErrSalleNotFound)
	}
	return room, nil
}
