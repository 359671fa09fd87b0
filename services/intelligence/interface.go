package intelligence

import (
	"context"
	"errors"

	"multisport/models"
)

// ErrEmptyResponse is returned when the model answers with no usable text;
// callers fall back to rule-based replies.
var ErrEmptyResponse = errors.New("empty response from model")

// ChatService generates an assistant reply from the system prompt and the
// conversation so far. The last history entry is the pending user message.
type ChatService interface {
	GenerateChat(ctx context.Context, systemPrompt string, history []models.Message) (string, error)
}

// DefaultSystemPrompt steers the model: French only, reception-robot
// persona, and a push to collect activity and time slot before booking.
const DefaultSystemPrompt = "Tu es l'assistant conversationnel d'un robot d'accueil dans une salle multisports. " +
	"Tu dois TOUJOURS répondre en français, de façon polie, chaleureuse, concise et utile. " +
	"Tu peux aider pour : informations (horaires, tarifs, activités), orientation dans le bâtiment " +
	"(vestiaires, terrains, salle de musculation, piscine, etc.), inscriptions et réservations. " +
	"Si l'utilisateur demande une réservation, demande toujours l'activité précise et le créneau " +
	"si ces informations sont manquantes. " +
	"Si la question est très simple (par exemple juste 'bonjour'), réponds par un message de bienvenue " +
	"en expliquant clairement ce que tu peux faire pour l'utilisateur. " +
	"Ne donne jamais d'informations personnelles sur d'autres personnes. " +
	"Si tu ne comprends pas, demande une clarification courte."
