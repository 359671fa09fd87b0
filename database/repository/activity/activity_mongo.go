package activityRepo

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"multisport/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoActivityRepo implements ActivityRepository against the "activite"
// collection.
type MongoActivityRepo struct {
	coll *mongo.Collection
}

func NewMongoActivityRepo(db *mongo.Database) *MongoActivityRepo {
	return &MongoActivityRepo{coll: db.Collection("activite")}
}

func (repo *MongoActivityRepo) ListAll(ctx context.Context) ([]models.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing activities: %w", err)
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("error decoding activities: %w", err)
	}
	return activities, nil
}

func (repo *MongoActivityRepo) GetByName(ctx context.Context, nom string) (*models.Activity, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"nom": bson.M{
		"$regex":   "^" + regexp.QuoteMeta(nom) + "$",
		"$options": "i",
	}}
	var activity models.Activity
	err := repo.coll.FindOne(ctx, filter).Decode(&activity)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error fetching activity %q: %w", nom, err)
	}
	return &activity, nil
}

func (repo *MongoActivityRepo) PlanningForRoomDay(ctx context.Context, salle primitive.ObjectID, jour string) ([]models.PlanningEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"planning": bson.M{"$elemMatch": bson.M{"salle": salle, "jour": jour}}}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error querying planning for room %s: %w", salle.Hex(), err)
	}
	defer cursor.Close(ctx)

	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("error decoding planning: %w", err)
	}

	var entries []models.PlanningEntry
	for _, a := range activities {
		for _, e := range a.Planning {
			if e.Salle == salle && e.Jour == jour {
				entries = append(entries, e)
			}
		}
	}
	return entries, nil
}
