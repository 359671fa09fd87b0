package reservationRepo

import (
	"context"

	"multisport/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReservationRepository provides read/insert access to ad hoc reservations.
type ReservationRepository interface {
	// ListByRoomDay returns all reservations of a room on a given day.
	ListByRoomDay(ctx context.Context, salle primitive.ObjectID, jour string) ([]models.Reservation, error)
	// Create inserts a new reservation. The insert must be acknowledged
	// before a booking confirmation may be reported to the user.
	Create(ctx context.Context, reservation *models.Reservation) error
}
