package dialog

import (
	"regexp"
	"strings"
	"time"

	"multisport/models"
)

// datePatterns gate day extraction on the raw utterance: a match means the
// text carries a day expression that NormalizeDay knows how to resolve.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,2})\s+(janvier|f[ée]vrier|mars|avril|mai|juin|juillet|ao[ûu]t|septembre|octobre|novembre|d[ée]cembre)(?:\s+(\d{4}))?`),
	regexp.MustCompile(`(\d{1,2})[/\-](\d{1,2})(?:[/\-](\d{2,4}))?`),
	regexp.MustCompile(`(lundi|mardi|mercredi|jeudi|vendredi|samedi|dimanche)(\s+prochaine?)?`),
	regexp.MustCompile(`apr[èe]s[- ]demain|demain|aujourd[' ]?hui`),
}

// dayHintRe marks NLU time entities that denote a date rather than a
// time of day.
var dayHintRe = regexp.MustCompile(`janvier|f[ée]vrier|mars|avril|mai|juin|juillet|ao[ûu]t|septembre|octobre|novembre|d[ée]cembre|lundi|mardi|mercredi|jeudi|vendredi|samedi|dimanche|demain|aujourd`)

// extractSlots pulls booking slot values out of the NLU entities and the
// raw utterance. Only the slots actually found are set; merging into the
// session state is the caller's concern.
func extractSlots(now time.Time, entities models.Entities, rawText string) models.SlotSet {
	var found models.SlotSet

	if len(entities.Location) > 0 {
		found.Salle = entities.Location[0]
	}
	if len(entities.Activity) > 0 {
		found.Activite = entities.Activity[0]
	}

	lower := strings.ToLower(rawText)
	for _, re := range datePatterns {
		if m := re.FindString(lower); m != "" {
			found.Jour = NormalizeDay(now, m)
			break
		}
	}
	if found.Jour == "" {
		for _, t := range entities.Time {
			if dayHintRe.MatchString(strings.ToLower(t)) {
				found.Jour = NormalizeDay(now, t)
				break
			}
		}
	}

	found.Heure = ExtractTime(rawText, entities.Time)
	return found
}
