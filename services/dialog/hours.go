package dialog

import (
	"fmt"
	"time"

	"multisport/utils"
)

// OpeningHours holds the facility schedule as "HH:MM" bounds, one window
// for weekdays and one for weekends.
type OpeningHours struct {
	WeekdayOpen  string
	WeekdayClose string
	WeekendOpen  string
	WeekendClose string
}

// Allows reports whether a one-hour booking starting at heure fits within
// the opening window of jour. A time that cannot be parsed is allowed
// through so the availability check decides. A day that cannot be parsed is
// held to the narrower weekend window.
func (o OpeningHours) Allows(jour, heure string) bool {
	mins := utils.HeureToMinutes(heure)
	if mins < 0 {
		return true
	}
	open, close := o.windowFor(jour)
	openMins := utils.HeureToMinutes(open)
	closeMins := utils.HeureToMinutes(close)
	if openMins < 0 || closeMins < 0 {
		return true
	}
	return mins >= openMins && mins <= closeMins-60
}

func (o OpeningHours) windowFor(jour string) (string, string) {
	t, err := time.Parse(dayFormat, jour)
	if err != nil || t.Weekday() == time.Saturday || t.Weekday() == time.Sunday {
		return o.WeekendOpen, o.WeekendClose
	}
	return o.WeekdayOpen, o.WeekdayClose
}

// Sentence renders the schedule for the opening-hours intent.
func (o OpeningHours) Sentence() string {
	return fmt.Sprintf(
		"Le complexe est ouvert du lundi au vendredi de %s à %s, et le week-end de %s à %s.",
		o.WeekdayOpen, o.WeekdayClose, o.WeekendOpen, o.WeekendClose)
}
