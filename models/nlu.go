package models

// Entities is the entity payload produced by the NLU collaborator.
type Entities struct {
	Location []string `json:"location,omitempty"`
	Activity []string `json:"activity,omitempty"`
	Time     []string `json:"time,omitempty"`
	Number   []string `json:"number,omitempty"`
}

// ParseResult is the NLU output for one utterance.
type ParseResult struct {
	Intent     string   `json:"intent"`
	Confidence float64  `json:"confidence"`
	Entities   Entities `json:"entities"`
	RawText    string   `json:"raw_text"`
}

// Intents the dialog manager routes on.
const (
	IntentGreeting      = "greeting"
	IntentAskHours      = "ask_hours"
	IntentAskActivities = "ask_activities"
	IntentNavigate      = "navigate"
	IntentBookActivity  = "book_activity"
	IntentWhoAreYou     = "who_are_you"
	IntentUnknown       = "unknown"
)
