package dialog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// timeRecognizer tries to read an "HH:MM" time out of free-form text.
type timeRecognizer func(text string) (string, bool)

// Recognizers are tried in this fixed order; the first success wins. The
// NLU time-entity fallback is applied separately in ExtractTime.
var timeRecognizers = []timeRecognizer{
	recognizeDigitTime,
	recognizeSpelledTime,
	recognizeBareSpelledHour,
}

// ExtractTime finds a booking time in the raw utterance, falling back to
// the NLU time entities. Returns "" when nothing usable was said.
func ExtractTime(rawText string, timeEntities []string) string {
	lower := strings.ToLower(rawText)
	for _, recognize := range timeRecognizers {
		if heure, ok := recognize(lower); ok {
			return heure
		}
	}
	return timeFromEntities(timeEntities)
}

// Digit forms: "10:00", "19h30", "19h", "à 19".
var hourDigitPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2})\s*:\s*(\d{2})`),
	regexp.MustCompile(`(\d{1,2})\s*h\s*(\d{1,2})`),
	regexp.MustCompile(`(\d{1,2})\s*h`),
	regexp.MustCompile(`(?:^|\s)à\s+(\d{1,2})\b`),
}

func recognizeDigitTime(text string) (string, bool) {
	for _, re := range hourDigitPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		h, _ := strconv.Atoi(m[1])
		mins := 0
		if len(m) > 2 && strings.TrimSpace(m[2]) != "" {
			mins, _ = strconv.Atoi(m[2])
		}
		return fmt.Sprintf("%02d:%02d", h, mins), true
	}
	return "", false
}

// Spelled-out hours, longest alternatives first so compounds win.
const hourWordAlt = `vingt et une|vingt et un|vingt-trois|vingt-deux|dix-sept|dix-huit|dix-neuf|quatorze|quinze|treize|seize|douze|onze|quatre|trois|cinq|deux|sept|huit|neuf|une|dix|six|un`

const minuteWordAlt = `cinquante-cinq|cinquante|quarante-cinq|quarante|trente-cinq|trente|vingt-cinq|vingt|quinze|dix|cinq`

const periodAlt = `matin|apr[èe]s[- ]midi|soir`

var (
	spelledHourRe = regexp.MustCompile(
		`\b(` + hourWordAlt + `)\s+heures?(?:\s+(` + minuteWordAlt + `))?` +
			`(?:\s+(?:du\s+|de\s+l['’]?\s*)?(` + periodAlt + `))?`)
	middayRe = regexp.MustCompile(
		`\b(midi|minuit)\b(?:\s+(` + minuteWordAlt + `))?`)
	bareSpelledRe = regexp.MustCompile(
		`(?:^|\s)à\s+(` + hourWordAlt + `|midi|minuit)\b` +
			`(?:\s+(?:du\s+|de\s+l['’]?\s*)?(` + periodAlt + `))?`)
)

var hourWords = map[string]int{
	"un": 1, "une": 1, "deux": 2, "trois": 3, "quatre": 4, "cinq": 5,
	"six": 6, "sept": 7, "huit": 8, "neuf": 9, "dix": 10, "onze": 11,
	"douze": 12, "treize": 13, "quatorze": 14, "quinze": 15, "seize": 16,
	"dix-sept": 17, "dix-huit": 18, "dix-neuf": 19, "vingt": 20,
	"vingt et un": 21, "vingt et une": 21, "vingt-deux": 22,
	"vingt-trois": 23, "midi": 12, "minuit": 0,
}

var minuteWords = map[string]int{
	"cinq": 5, "dix": 10, "quinze": 15, "vingt": 20, "vingt-cinq": 25,
	"trente": 30, "trente-cinq": 35, "quarante": 40, "quarante-cinq": 45,
	"cinquante": 50, "cinquante-cinq": 55,
}

// recognizeSpelledTime handles "dix-huit heures trente", "huit heures du
// soir", "midi". A period qualifier implying the afternoon or evening lifts
// an hour below twelve by twelve.
func recognizeSpelledTime(text string) (string, bool) {
	if m := spelledHourRe.FindStringSubmatch(text); m != nil {
		return formatSpelled(m[1], m[2], m[3]), true
	}
	if m := middayRe.FindStringSubmatch(text); m != nil {
		return formatSpelled(m[1], m[2], ""), true
	}
	return "", false
}

// recognizeBareSpelledHour handles "à huit" without the word "heure".
func recognizeBareSpelledHour(text string) (string, bool) {
	if m := bareSpelledRe.FindStringSubmatch(text); m != nil {
		return formatSpelled(m[1], "", m[2]), true
	}
	return "", false
}

func formatSpelled(hourWord, minuteWord, period string) string {
	h := hourWords[hourWord]
	mins := 0
	if minuteWord != "" {
		mins = minuteWords[minuteWord]
	}
	if isAfternoon(period) && h < 12 {
		h += 12
	}
	return fmt.Sprintf("%02d:%02d", h, mins)
}

func isAfternoon(period string) bool {
	return period == "soir" || strings.HasPrefix(period, "apr")
}

var (
	hourMarkerRe     = regexp.MustCompile(`(\d{1,2})\s*[h:]\s*(\d{1,2})?`)
	hourMarkerTestRe = regexp.MustCompile(`\d{1,2}\s*[h:]`)
)

// timeFromEntities falls back to the time spans the NLU extracted:
// normalized to "HH:MM" when a span carries an hour marker, verbatim
// otherwise. Spans that look like dates are left to day extraction.
func timeFromEntities(timeEntities []string) string {
	verbatim := ""
	for _, t := range timeEntities {
		lower := strings.ToLower(t)
		if dayHintRe.MatchString(lower) {
			continue
		}
		if hourMarkerTestRe.MatchString(lower) {
			m := hourMarkerRe.FindStringSubmatch(lower)
			h, _ := strconv.Atoi(m[1])
			mins := 0
			if m[2] != "" {
				mins, _ = strconv.Atoi(m[2])
			}
			return fmt.Sprintf("%02d:%02d", h, mins)
		}
		if verbatim == "" {
			verbatim = t
		}
	}
	return verbatim
}
