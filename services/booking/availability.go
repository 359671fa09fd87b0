package booking

import (
	"context"
	"fmt"
	"strings"

	activityRepo "multisport/database/repository/activity"
	reservationRepo "multisport/database/repository/reservation"
	roomRepo "multisport/database/repository/room"
	"multisport/models"
	"multisport/utils"

	"go.uber.org/zap"
)

// DefaultAvailabilityResolver implements AvailabilityResolver over the room,
// activity-planning and reservation repositories.
type DefaultAvailabilityResolver struct {
	RoomRepo        roomRepo.RoomRepository
	ActivityRepo    activityRepo.ActivityRepository
	ReservationRepo reservationRepo.ReservationRepository
}

// FindRoomsForActivity returns the rooms supporting the activity. When no
// room declares it, the complete room list is returned instead: the data
// cannot distinguish an unknown activity from a valid one with no dedicated
// room, so the flow falls back to offering everything.
func (r *DefaultAvailabilityResolver) FindRoomsForActivity(ctx context.Context, activite string) ([]models.Room, error) {
	rooms, err := r.RoomRepo.FindByActivity(ctx, activite)
	if err != nil {
		return nil, fmt.Errorf("failed to query rooms for activity %q: %w", activite, err)
	}
	if len(rooms) > 0 {
		return rooms, nil
	}

	utils.GetLogger().Debug("no room supports activity, falling back to all rooms",
		zap.String("activite", activite))
	rooms, err = r.RoomRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

// HasConflict reports whether the [heureDebut, heureFin) interval collides,
// for the given room and day, with any recurring planning entry or any
// existing reservation.
func (r *DefaultAvailabilityResolver) HasConflict(ctx context.Context, room models.Room, jour, heureDebut, heureFin string) (bool, error) {
	planning, err := r.ActivityRepo.PlanningForRoomDay(ctx, room.ID, jour)
	if err != nil {
		return false, fmt.Errorf("failed to query planning for room %s: %w", room.Nom, err)
	}
	for _, entry := range planning {
		if IntervalsConflict(heureDebut, heureFin, entry.HeureDebut, entry.HeureFin) {
			return true, nil
		}
	}

	reservations, err := r.ReservationRepo.ListByRoomDay(ctx, room.ID, jour)
	if err != nil {
		return false, fmt.Errorf("failed to query reservations for room %s: %w", room.Nom, err)
	}
	for _, res := range reservations {
		if IntervalsConflict(heureDebut, heureFin, res.HeureDebut, res.HeureFin) {
			return true, nil
		}
	}
	return false, nil
}

// IntervalsConflict evaluates half-open [start, end) overlap between the
// requested interval and another one. Any of the four clauses makes a
// conflict:
//   - the other interval starts within [start, end)
//   - the other interval ends within (start, end]
//   - the other interval fully contains [start, end)
//   - the other interval exactly equals [start, end)
//
// The equality clause is redundant with the others except at boundary
// equality and is kept deliberately. Back-to-back intervals do not conflict.
func IntervalsConflict(start, end, otherStart, otherEnd string) bool {
	switch {
	case compareHeure(otherStart, end) < 0 && compareHeure(otherStart, start) >= 0:
		return true
	case compareHeure(otherEnd, start) > 0 && compareHeure(otherEnd, end) <= 0:
		return true
	case compareHeure(otherStart, start) <= 0 && compareHeure(otherEnd, end) >= 0:
		return true
	case otherStart == start && otherEnd == end:
		return true
	}
	return false
}

// compareHeure orders two time-of-day strings, by minutes when both parse
// and lexically otherwise. Unparseable values went through the verbatim
// fallback and get best-effort treatment.
func compareHeure(a, b string) int {
	am, bm := utils.HeureToMinutes(a), utils.HeureToMinutes(b)
	if am >= 0 && bm >= 0 {
		switch {
		case am < bm:
			return -1
		case am > bm:
			return 1
		}
		return 0
	}
	return strings.Compare(a, b)
}
