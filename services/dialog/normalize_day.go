package dialog

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// dayFormat is the canonical day representation stored in booking slots.
const dayFormat = "02/01/2006"

// dayRecognizer tries to read a date out of free-form text relative to now.
type dayRecognizer func(now time.Time, text string) (time.Time, bool)

// Recognizers are tried in this fixed order; the first success wins.
var dayRecognizers = []dayRecognizer{
	recognizeToday,
	recognizeTomorrow,
	recognizeAfterTomorrow,
	recognizeWeekday,
	recognizeDayMonth,
	recognizeNumericDate,
}

// NormalizeDay converts a free-form day expression to "DD/MM/YYYY". When no
// recognizer applies, the trimmed input is returned verbatim as a
// best-effort fallback rather than rejected.
func NormalizeDay(now time.Time, text string) string {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)
	for _, recognize := range dayRecognizers {
		if t, ok := recognize(now, lower); ok {
			return t.Format(dayFormat)
		}
	}
	return trimmed
}

var (
	todayRe         = regexp.MustCompile(`aujourd[' ]?hui`)
	afterTomorrowRe = regexp.MustCompile(`apr[èe]s[- ]demain`)
	tomorrowRe      = regexp.MustCompile(`demain`)
	weekdayRe       = regexp.MustCompile(`(lundi|mardi|mercredi|jeudi|vendredi|samedi|dimanche)(\s+prochaine?)?`)
	dayMonthRe      = regexp.MustCompile(`(\d{1,2})\s+(janvier|f[ée]vrier|mars|avril|mai|juin|juillet|ao[ûu]t|septembre|octobre|novembre|d[ée]cembre)(?:\s+(\d{4}))?`)
	numericDateRe   = regexp.MustCompile(`(\d{1,2})[/\-](\d{1,2})(?:[/\-](\d{2,4}))?`)
)

var weekdays = map[string]time.Weekday{
	"lundi":    time.Monday,
	"mardi":    time.Tuesday,
	"mercredi": time.Wednesday,
	"jeudi":    time.Thursday,
	"vendredi": time.Friday,
	"samedi":   time.Saturday,
	"dimanche": time.Sunday,
}

var months = map[string]time.Month{
	"janvier":   time.January,
	"février":   time.February,
	"fevrier":   time.February,
	"mars":      time.March,
	"avril":     time.April,
	"mai":       time.May,
	"juin":      time.June,
	"juillet":   time.July,
	"août":      time.August,
	"aout":      time.August,
	"septembre": time.September,
	"octobre":   time.October,
	"novembre":  time.November,
	"décembre":  time.December,
	"decembre":  time.December,
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func recognizeToday(now time.Time, text string) (time.Time, bool) {
	if todayRe.MatchString(text) {
		return midnight(now), true
	}
	return time.Time{}, false
}

func recognizeTomorrow(now time.Time, text string) (time.Time, bool) {
	// "après-demain" also contains "demain"; it belongs to the next
	// recognizer.
	if tomorrowRe.MatchString(text) && !afterTomorrowRe.MatchString(text) {
		return midnight(now).AddDate(0, 0, 1), true
	}
	return time.Time{}, false
}

func recognizeAfterTomorrow(now time.Time, text string) (time.Time, bool) {
	if afterTomorrowRe.MatchString(text) {
		return midnight(now).AddDate(0, 0, 2), true
	}
	return time.Time{}, false
}

// recognizeWeekday resolves a weekday name to the next matching date,
// strictly after today. "prochain" forces the following week even when the
// plain form would already land within this one.
func recognizeWeekday(now time.Time, text string) (time.Time, bool) {
	m := weekdayRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	target := weekdays[m[1]]
	ahead := (int(target) - int(now.Weekday())) % 7
	if ahead <= 0 {
		ahead += 7
	}
	if m[2] != "" && ahead < 7 {
		ahead += 7
	}
	return midnight(now).AddDate(0, 0, ahead), true
}

func recognizeDayMonth(now time.Time, text string) (time.Time, bool) {
	m := dayMonthRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month, ok := months[m[2]]
	if !ok {
		return time.Time{}, false
	}
	if m[3] != "" {
		year, _ := strconv.Atoi(m[3])
		return time.Date(year, month, day, 0, 0, 0, 0, now.Location()), true
	}
	return rollForward(now, month, day), true
}

func recognizeNumericDate(now time.Time, text string) (time.Time, bool) {
	m := numericDateRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return time.Time{}, false
	}
	if m[3] != "" {
		year, _ := strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location()), true
	}
	return rollForward(now, time.Month(month), day), true
}

// rollForward assumes the current year, moving to the next one when the
// resulting date is already in the past.
func rollForward(now time.Time, month time.Month, day int) time.Time {
	candidate := time.Date(now.Year(), month, day, 0, 0, 0, 0, now.Location())
	if candidate.Before(midnight(now)) {
		candidate = candidate.AddDate(1, 0, 0)
	}
	return candidate
}
