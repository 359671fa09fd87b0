package nlu

import (
	"regexp"
	"strings"

	"multisport/models"
)

// KeywordMatcher implements Service with keyword scoring for intents and
// gazetteer lookups for entities. It needs no trained model and answers in
// constant time, which suits the robot's offline operation.
type KeywordMatcher struct{}

func NewKeywordMatcher() *KeywordMatcher {
	return &KeywordMatcher{}
}

// intentKeywords are scanned in order; the first strictly-best score wins,
// so booking outranks the informational intents on ties ("réserver un
// cours" is a booking, not an activity question).
var intentKeywords = []struct {
	intent   string
	keywords []string
}{
	{models.IntentBookActivity, []string{
		"réserver", "reserver", "réservation", "reservation",
		"inscrire", "inscription", "je veux faire", "je voudrais faire",
	}},
	{models.IntentNavigate, []string{
		"où est", "ou est", "où se trouve", "ou se trouve",
		"comment aller", "je cherche", "orienter", "guider", "direction",
	}},
	{models.IntentAskHours, []string{
		"horaire", "ouverture", "ouvert", "ouvrez", "fermez", "vous fermez",
	}},
	{models.IntentAskActivities, []string{
		"activité", "activite", "sports", "programme", "cours", "proposez",
	}},
	{models.IntentWhoAreYou, []string{
		"qui es-tu", "tu es qui", "ton rôle", "ton role", "tu sers à quoi",
	}},
	{models.IntentGreeting, []string{
		"bonjour", "salut", "bonsoir", "hello", "coucou",
	}},
}

// locationGazetteer is ordered longest-first so "salle de natation" is not
// shadowed by "natation".
var locationGazetteer = []string{
	"salle de natation",
	"salle natation",
	"salle de sport",
	"salle a", "salle b", "salle c", "salle d",
	"secrétariat", "secretariat",
	"vestiaires", "vestiaire",
	"natation",
	"accueil",
	"terrain",
	"entrée", "entree",
}

// activityGazetteer, longest-first so "basketball" beats "basket".
var activityGazetteer = []string{
	"basketball", "football", "natation", "fitness",
	"basket", "tennis", "futsal", "yoga",
}

var (
	timeEntityRe = regexp.MustCompile(`\d{1,2}\s*[h:]\s*\d{0,2}|apr[èe]s[- ]demain|demain|aujourd[' ]?hui|lundi|mardi|mercredi|jeudi|vendredi|samedi|dimanche|midi|minuit`)
	numberRe     = regexp.MustCompile(`\d+`)
)

// Parse implements Service.
func (k *KeywordMatcher) Parse(text string) models.ParseResult {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return models.ParseResult{Intent: models.IntentUnknown, RawText: text}
	}

	intent, confidence := classify(lower)
	return models.ParseResult{
		Intent:     intent,
		Confidence: confidence,
		Entities: models.Entities{
			Location: extractLocations(lower),
			Activity: scanGazetteer(lower, activityGazetteer),
			Time:     timeEntityRe.FindAllString(lower, -1),
			Number:   numberRe.FindAllString(lower, -1),
		},
		RawText: text,
	}
}

func classify(lower string) (string, float64) {
	best, bestScore := models.IntentUnknown, 0
	for _, ik := range intentKeywords {
		score := 0
		for _, kw := range ik.keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = ik.intent, score
		}
	}
	if bestScore == 0 {
		return models.IntentUnknown, 0
	}
	confidence := 0.55 + 0.15*float64(bestScore)
	if confidence > 0.95 {
		confidence = 0.95
	}
	return best, confidence
}

func extractLocations(lower string) []string {
	var out []string
	for _, raw := range scanGazetteer(lower, locationGazetteer) {
		if key := NormalizeDestinationKey(raw); key != "" {
			out = append(out, key)
		}
	}
	return out
}

// scanGazetteer returns the gazetteer terms present in the text,
// suppressing terms fully covered by an earlier (longer) match.
func scanGazetteer(lower string, gazetteer []string) []string {
	var (
		out   []string
		spans [][2]int
	)
	for _, term := range gazetteer {
		idx := strings.Index(lower, term)
		if idx < 0 {
			continue
		}
		span := [2]int{idx, idx + len(term)}
		covered := false
		for _, s := range spans {
			if span[0] >= s[0] && span[1] <= s[1] {
				covered = true
				break
			}
		}
		if covered {
			continue
		}
		spans = append(spans, span)
		out = append(out, term)
	}
	return out
}

// directDestinations short-circuits key normalization for the room names
// the tablet map knows.
var directDestinations = map[string]string{
	"salle a":           "salle_a",
	"salle b":           "salle_b",
	"salle c":           "salle_c",
	"salle d":           "salle_d",
	"salle natation":    "natation",
	"salle de natation": "natation",
}

// NormalizeDestinationKey folds a free-form place mention into the key
// space used by the indoor map: trimmed, lowercased, single-spaced, then
// snake_cased unless a direct mapping applies.
func NormalizeDestinationKey(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			s = strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	if direct, ok := directDestinations[s]; ok {
		return direct
	}
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
