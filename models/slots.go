package models

// Slot names used in prompting and slot-filling actions.
const (
	SlotSalleOrActivite = "salle_or_activite"
	SlotJour            = "jour"
	SlotHeure           = "heure"
)

// SlotSet holds the booking parameters collected so far across turns.
// Empty strings mean "not yet provided".
type SlotSet struct {
	Salle    string `json:"salle,omitempty"`
	Activite string `json:"activite,omitempty"`
	Jour     string `json:"jour,omitempty"`
	Heure    string `json:"heure,omitempty"`

	// Set while the user is being asked to pick one of several rooms.
	AwaitingSalleChoice bool     `json:"awaiting_salle_choice,omitempty"`
	SallesProposees     []string `json:"salles_proposees,omitempty"`
}

// Merge overwrites slots mentioned in found; slots absent from found are
// retained (last mention wins).
func (s *SlotSet) Merge(found SlotSet) {
	if found.Salle != "" {
		s.Salle = found.Salle
	}
	if found.Activite != "" {
		s.Activite = found.Activite
	}
	if found.Jour != "" {
		s.Jour = found.Jour
	}
	if found.Heure != "" {
		s.Heure = found.Heure
	}
}

// Complete reports whether the set carries enough to attempt a booking:
// a salle or an activite, plus jour and heure.
func (s *SlotSet) Complete() bool {
	return (s.Salle != "" || s.Activite != "") && s.Jour != "" && s.Heure != ""
}

// NextMissing returns the highest-priority missing slot name, or "" when
// the set is complete. Priority: salle/activite, then jour, then heure.
func (s *SlotSet) NextMissing() string {
	if s.Salle == "" && s.Activite == "" {
		return SlotSalleOrActivite
	}
	if s.Jour == "" {
		return SlotJour
	}
	if s.Heure == "" {
		return SlotHeure
	}
	return ""
}
