package roomRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"multisport/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoRoomRepo implements RoomRepository against the "salle" collection.
type MongoRoomRepo struct {
	coll *mongo.Collection
}

func NewMongoRoomRepo(db *mongo.Database) *MongoRoomRepo {
	return &MongoRoomRepo{coll: db.Collection("salle")}
}

func (repo *MongoRoomRepo) GetByName(ctx context.Context, name string) (*models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"nom": bson.M{
		"$regex":   "^" + regexp.QuoteMeta(name) + "$",
		"$options": "i",
	}}
	var room models.Room
	err := repo.coll.FindOne(ctx, filter).Decode(&room)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching room %q: %w", name, err)
	}
	return &room, nil
}

func (repo *MongoRoomRepo) FindByActivity(ctx context.Context, activity string) ([]models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"activites_supportees": bson.M{
		"$regex":   regexp.QuoteMeta(activity),
		"$options": "i",
	}}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error querying rooms for activity %q: %w", activity, err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("error decoding rooms: %w", err)
	}
	return rooms, nil
}

func (repo *MongoRoomRepo) ListAll(ctx context.Context) ([]models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("error decoding rooms: %w", err)
	}
	return rooms, nil
}
