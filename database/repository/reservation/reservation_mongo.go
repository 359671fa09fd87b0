package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"multisport/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoReservationRepo implements ReservationRepository against the
// "reservations" collection.
type MongoReservationRepo struct {
	coll *mongo.Collection
}

func NewMongoReservationRepo(db *mongo.Database) *MongoReservationRepo {
	return &MongoReservationRepo{coll: db.Collection("reservations")}
}

func (repo *MongoReservationRepo) ListByRoomDay(ctx context.Context, salle primitive.ObjectID, jour string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"salle": salle, "jour": jour})
	if err != nil {
		return nil, fmt.Errorf("error querying reservations for room %s on %s: %w", salle.Hex(), jour, err)
	}
	defer cursor.Close(ctx)

	var reservations []models.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, fmt.Errorf("error decoding reservations: %w", err)
	}
	return reservations, nil
}

func (repo *MongoReservationRepo) Create(ctx context.Context, reservation *models.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// The application-level conflict check and this insert are two separate
	// operations; true serialization belongs to the storage layer.
	if _, err := repo.coll.InsertOne(ctx, reservation); err != nil {
		return fmt.Errorf("error creating reservation: %w", err)
	}
	return nil
}
