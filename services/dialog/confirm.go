package dialog

import (
	"context"
	"errors"
	"fmt"

	"multisport/models"
	"multisport/services/booking"
	"multisport/utils"

	"go.uber.org/zap"
)

// confirmBooking resolves the room, checks the slot for conflicts, persists
// the reservation and reports the outcome. The booking flow always ends
// here, successfully or not, and the slots are cleared either way.
func (m *DefaultManager) confirmBooking(ctx context.Context, session *models.Session) (string, models.Action, error) {
	slots := session.BookingSlots

	// Bookings last one hour. A time that survived the verbatim fallback
	// keeps an identical end bound.
	heureFin := slots.Heure
	if mins := utils.HeureToMinutes(slots.Heure); mins >= 0 {
		heureFin = utils.MinutesToHeure(mins + 60)
	}

	room, err := m.Rooms.Resolve(ctx, slots.Salle)
	if err != nil {
		if errors.Is(err, booking.ErrSalleNotFound) {
			text := fmt.Sprintf(msgSalleNotFound, slots.Salle)
			session.BookingSlots = nil
			return m.reply(ctx, session, text, models.NewErrorAction(models.ReasonSalleNotFound))
		}
		return "", nil, err
	}

	conflict, err := m.Availability.HasConflict(ctx, *room, slots.Jour, slots.Heure, heureFin)
	if err != nil {
		return "", nil, err
	}
	if conflict {
		text := fmt.Sprintf(msgRoomBooked, room.Nom, slots.Jour, slots.Heure, heureFin)
		session.BookingSlots = nil
		return m.reply(ctx, session, text, models.NewNoAvailabilityAction())
	}

	reservation := &models.Reservation{
		Salle:      room.ID,
		Activite:   slots.Activite,
		Jour:       slots.Jour,
		HeureDebut: slots.Heure,
		HeureFin:   heureFin,
		Statut:     models.StatutConfirmee,
	}
	if err := m.Reservations.Create(ctx, reservation); err != nil {
		// A confirmation must never be announced for a write that was not
		// acknowledged.
		utils.GetLogger().Error("failed to persist reservation",
			zap.String("salle", room.Nom), zap.String("jour", slots.Jour), zap.Error(err))
		session.BookingSlots = nil
		return m.reply(ctx, session, msgBookingFailed, models.NewErrorAction(models.ReasonReservationWriteFailed))
	}

	activiteStr := ""
	if slots.Activite != "" {
		activiteStr = fmt.Sprintf(" pour l'activité %s", slots.Activite)
	}
	text := fmt.Sprintf(msgConfirmed, room.Nom, activiteStr, slots.Jour, slots.Heure, heureFin)
	summary := models.BookingSummary{
		SalleID:    room.ID.Hex(),
		SalleNom:   room.Nom,
		Activite:   slots.Activite,
		Jour:       slots.Jour,
		HeureDebut: slots.Heure,
		HeureFin:   heureFin,
	}
	session.BookingSlots = nil
	return m.reply(ctx, session, text, models.NewConfirmedAction(summary))
}
