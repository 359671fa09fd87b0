package models

import "testing"

func TestSlotSetMerge(t *testing.T) {
	slots := SlotSet{Salle: "Salle A", Jour: "02/09/2026"}

	slots.Merge(SlotSet{Jour: "03/09/2026", Heure: "18:00"})

	if slots.Salle != "Salle A" {
		t.Errorf("absent slot overwritten: %q", slots.Salle)
	}
	if slots.Jour != "03/09/2026" {
		t.Errorf("last mention must win, got %q", slots.Jour)
	}
	if slots.Heure != "18:00" {
		t.Errorf("new slot not merged, got %q", slots.Heure)
	}
}

func TestSlotSetNextMissingPriority(t *testing.T) {
	tests := []struct {
		name  string
		slots SlotSet
		want  string
	}{
		{"empty", SlotSet{}, SlotSalleOrActivite},
		{"activity satisfies the room slot", SlotSet{Activite: "yoga"}, SlotJour},
		{"room satisfies the room slot", SlotSet{Salle: "Salle A"}, SlotJour},
		{"jour before heure", SlotSet{Salle: "Salle A", Heure: "18:00"}, SlotJour},
		{"only heure missing", SlotSet{Salle: "Salle A", Jour: "02/09/2026"}, SlotHeure},
		{"complete", SlotSet{Activite: "yoga", Jour: "02/09/2026", Heure: "18:00"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.slots.NextMissing(); got != tt.want {
				t.Errorf("NextMissing() = %q, want %q", got, tt.want)
			}
			if wantComplete := tt.want == ""; tt.slots.Complete() != wantComplete {
				t.Errorf("Complete() = %v, want %v", tt.slots.Complete(), wantComplete)
			}
		})
	}
}
