package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Reservation statuses.
const StatutConfirmee = "confirmee"

// Reservation is an ad hoc one-hour booking of a room. Created only on a
// confirmed, conflict-free completion; never mutated afterwards.
type Reservation struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Salle      primitive.ObjectID `bson:"salle" json:"salle"`
	Activite   string             `bson:"activite,omitempty" json:"activite,omitempty"`
	Jour       string             `bson:"jour" json:"jour"`
	HeureDebut string             `bson:"heure_debut" json:"heure_debut"`
	HeureFin   string             `bson:"heure_fin" json:"heure_fin"`
	Statut     string             `bson:"statut" json:"statut"`
}
