package dialog

import (
	"context"
	"fmt"
	"strings"

	"multisport/models"
)

// handleBookingFlow runs one slot-filling step: merge what the turn
// contributed, ask for the next missing slot, or move on to room inference
// and confirmation once the set is complete.
func (m *DefaultManager) handleBookingFlow(ctx context.Context, session *models.Session, parse models.ParseResult) (string, models.Action, error) {
	slots := session.BookingSlots

	found := extractSlots(m.now(), parse.Entities, parse.RawText)
	slots.Merge(found)
	if err := m.Sessions.Update(ctx, session); err != nil {
		return "", nil, fmt.Errorf("failed to persist session %s: %w", session.ID, err)
	}

	if missing := slots.NextMissing(); missing != "" {
		return m.reply(ctx, session, promptFor(missing), models.NewSlotFillingAction(missing, *slots))
	}

	// Opening-hours gate: reject the time but keep the other slots, so the
	// user only has to restate the hour.
	if !m.Hours.Allows(slots.Jour, slots.Heure) {
		slots.Heure = ""
		text := fmt.Sprintf(msgOutsideHours, m.Hours.Sentence())
		return m.reply(ctx, session, text, models.NewSlotFillingAction(models.SlotHeure, *slots))
	}

	// Activity without a room: infer candidate rooms.
	if slots.Activite != "" && slots.Salle == "" {
		rooms, err := m.Availability.FindRoomsForActivity(ctx, slots.Activite)
		if err != nil {
			return "", nil, fmt.Errorf("failed to find rooms for %q: %w", slots.Activite, err)
		}
		switch len(rooms) {
		case 0:
			text := fmt.Sprintf(msgNoAvailabilityActivity, slots.Activite, slots.Jour, slots.Heure)
			session.BookingSlots = nil
			return m.reply(ctx, session, text, models.NewNoAvailabilityAction())
		case 1:
			slots.Salle = rooms[0].Nom
			return m.confirmBooking(ctx, session)
		}

		names := make([]string, len(rooms))
		for i, r := range rooms {
			names[i] = r.Nom
		}
		slots.AwaitingSalleChoice = true
		slots.SallesProposees = names
		text := fmt.Sprintf(msgChooseSalle,
			len(rooms), slots.Activite, slots.Jour, slots.Heure, strings.Join(names, ", "))
		return m.reply(ctx, session, text, models.NewChooseSalleAction(rooms, *slots))
	}

	return m.confirmBooking(ctx, session)
}

func promptFor(slot string) string {
	switch slot {
	case models.SlotSalleOrActivite:
		return promptSalleOrActivite
	case models.SlotJour:
		return promptJour
	default:
		return promptHeure
	}
}
