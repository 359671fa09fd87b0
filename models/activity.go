package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// PlanningEntry is one recurring weekly room/time assignment of an activity,
// distinct from one-off reservations.
type PlanningEntry struct {
	Salle      primitive.ObjectID `bson:"salle" json:"salle"`
	Jour       string             `bson:"jour" json:"jour"`
	HeureDebut string             `bson:"heure_debut" json:"heure_debut"`
	HeureFin   string             `bson:"heure_fin" json:"heure_fin"`
}

// Activity describes a sport offered by the facility and its weekly planning.
type Activity struct {
	Nom         string          `bson:"nom" json:"nom"`
	Description string          `bson:"description,omitempty" json:"description,omitempty"`
	Planning    []PlanningEntry `bson:"planning,omitempty" json:"planning,omitempty"`
}
