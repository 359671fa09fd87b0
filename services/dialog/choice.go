package dialog

import (
	"context"
	"fmt"
	"strings"

	"multisport/models"
)

// handleSalleChoice resolves a pending room choice. An unrecognized answer
// re-asks with the same candidates; the flow never aborts here.
func (m *DefaultManager) handleSalleChoice(ctx context.Context, session *models.Session, parse models.ParseResult) (string, models.Action, error) {
	slots := session.BookingSlots

	chosen := matchChoice(parse.RawText, parse.Entities.Location, slots.SallesProposees)
	if chosen == "" {
		text := fmt.Sprintf(msgChoiceNotUnderstood, strings.Join(slots.SallesProposees, ", "))
		return m.reply(ctx, session, text, models.NewChooseSalleAction(nil, *slots))
	}

	slots.Salle = chosen
	slots.AwaitingSalleChoice = false
	slots.SallesProposees = nil
	return m.confirmBooking(ctx, session)
}

// matchChoice looks for a proposed room name inside the raw answer, then
// falls back to matching the NLU locations against the candidates in both
// containment directions.
func matchChoice(rawText string, locations, proposed []string) string {
	textLower := strings.ToLower(rawText)
	for _, nom := range proposed {
		if strings.Contains(textLower, strings.ToLower(nom)) {
			return nom
		}
	}
	for _, loc := range locations {
		locLower := strings.ReplaceAll(strings.ToLower(loc), "_", " ")
		for _, nom := range proposed {
			nomLower := strings.ToLower(nom)
			if strings.Contains(nomLower, locLower) || strings.Contains(locLower, nomLower) {
				return nom
			}
		}
	}
	return ""
}
