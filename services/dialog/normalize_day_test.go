package dialog

import (
	"testing"
	"time"
)

// Tuesday.
var fixedNow = time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)

func TestNormalizeDayRelative(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"aujourd'hui", "01/09/2026"},
		{"c'est pour aujourd hui", "01/09/2026"},
		{"demain", "02/09/2026"},
		{"après-demain", "03/09/2026"},
		{"apres demain", "03/09/2026"},
	}
	for _, tt := range tests {
		if got := NormalizeDay(fixedNow, tt.in); got != tt.want {
			t.Errorf("NormalizeDay(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeDayWeekday(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		// Next occurrence, strictly after today.
		{"mercredi", "02/09/2026"},
		{"lundi", "07/09/2026"},
		// Same weekday as today jumps a full week.
		{"mardi", "08/09/2026"},
		// "prochain" forces the following week.
		{"mercredi prochain", "09/09/2026"},
		{"samedi prochaine", "12/09/2026"},
	}
	for _, tt := range tests {
		if got := NormalizeDay(fixedNow, tt.in); got != tt.want {
			t.Errorf("NormalizeDay(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeDayExplicitDates(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"le 3 octobre", "03/10/2026"},
		{"le 3 octobre 2026", "03/10/2026"},
		// A past day-month rolls into the next year.
		{"15 janvier", "15/01/2027"},
		{"12/10", "12/10/2026"},
		{"05/03", "05/03/2027"},
		{"12/10/2026", "12/10/2026"},
		{"12-10-26", "12/10/2026"},
		{"1 aout", "01/08/2027"},
	}
	for _, tt := range tests {
		if got := NormalizeDay(fixedNow, tt.in); got != tt.want {
			t.Errorf("NormalizeDay(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeDayVerbatimFallback(t *testing.T) {
	in := "  un de ces jours  "
	if got := NormalizeDay(fixedNow, in); got != "un de ces jours" {
		t.Errorf("NormalizeDay(%q) = %q, want trimmed verbatim input", in, got)
	}
}
