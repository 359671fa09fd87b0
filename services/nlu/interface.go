package nlu

import "multisport/models"

// Service turns a raw utterance into an intent plus extracted entities.
// Parsing is purely lexical and never fails; unknown input yields the
// unknown intent with zero confidence.
type Service interface {
	Parse(text string) models.ParseResult
}
