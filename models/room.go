package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Room is a bookable room of the facility.
type Room struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Nom                 string             `bson:"nom" json:"nom"`
	ActivitesSupportees []string           `bson:"activites_supportees" json:"activites_supportees"`
}
