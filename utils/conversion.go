package utils

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	colonRe = regexp.MustCompile(`(\d{1,2}):(\d{1,2})`)
	hRe     = regexp.MustCompile(`(\d{1,2})\s*[hH]\s*(\d{1,2})?`)
	digitRe = regexp.MustCompile(`(\d{1,2})`)
)

// HeureToMinutes converts a time-of-day string to minutes from midnight.
// Accepted forms: "18:00", "19h30", "19h", "19H00", "à 19", "19".
// Returns -1 when the string cannot be parsed.
func HeureToMinutes(heure string) int {
	if heure == "" {
		return -1
	}
	if m := colonRe.FindStringSubmatch(heure); m != nil {
		h, _ := strconv.Atoi(m[1])
		mins, _ := strconv.Atoi(m[2])
		return h*60 + mins
	}
	if m := hRe.FindStringSubmatch(heure); m != nil {
		h, _ := strconv.Atoi(m[1])
		mins := 0
		if m[2] != "" {
			mins, _ = strconv.Atoi(m[2])
		}
		return h*60 + mins
	}
	if m := digitRe.FindStringSubmatch(heure); m != nil {
		h, _ := strconv.Atoi(m[1])
		return h * 60
	}
	return -1
}

// MinutesToHeure renders minutes from midnight as "HH:MM" (1140 -> "19:00").
func MinutesToHeure(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
