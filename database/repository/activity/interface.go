package activityRepo

import (
	"context"

	"multisport/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ActivityRepository provides read access to activities and their weekly
// planning.
type ActivityRepository interface {
	// ListAll returns every activity offered by the facility.
	ListAll(ctx context.Context) ([]models.Activity, error)
	// GetByName performs a case-insensitive exact-name lookup.
	// Returns (nil, nil) when the activity is unknown.
	GetByName(ctx context.Context, nom string) (*models.Activity, error)
	// PlanningForRoomDay returns the recurring planning entries of all
	// activities for the given room and day.
	PlanningForRoomDay(ctx context.Context, salle primitive.ObjectID, jour string) ([]models.PlanningEntry, error)
}
