package dialog

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	activityRepo "multisport/database/repository/activity"
	reservationRepo "multisport/database/repository/reservation"
	sessionRepo "multisport/database/repository/session"
	"multisport/models"
	"multisport/services/booking"
	"multisport/services/intelligence"
	"multisport/services/navigation"
	"multisport/utils"

	"go.uber.org/zap"
)

// DefaultManager implements Manager. A turn in an active booking flow is
// routed into slot filling regardless of the recognized intent; otherwise
// the intent decides, with chit-chat as the final fallback.
type DefaultManager struct {
	Sessions     sessionRepo.SessionStore
	Availability booking.AvailabilityResolver
	Rooms        booking.RoomResolver
	Reservations reservationRepo.ReservationRepository
	Activities   activityRepo.ActivityRepository
	Nav          navigation.Service

	// Chat may be nil, in which case rule-based fallbacks answer directly.
	Chat         intelligence.ChatService
	SystemPrompt string

	Hours      OpeningHours
	HistoryMax int

	// Now is overridable for deterministic date resolution.
	Now func() time.Time
}

func (m *DefaultManager) now() time.Time {
	if m.Now != nil {
		return m.Now()
	}
	return time.Now()
}

// Handle processes one dialog turn for the given session.
func (m *DefaultManager) Handle(ctx context.Context, sessionID string, parse models.ParseResult) (string, models.Action, error) {
	session, err := m.Sessions.Get(ctx, sessionID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}
	if parse.RawText != "" {
		session.Append("user", parse.RawText, m.HistoryMax)
	}

	// An active booking flow captures every turn until it terminates.
	if session.BookingSlots != nil {
		if session.BookingSlots.AwaitingSalleChoice {
			return m.handleSalleChoice(ctx, session, parse)
		}
		return m.handleBookingFlow(ctx, session, parse)
	}

	switch parse.Intent {
	case models.IntentBookActivity:
		session.BookingSlots = &models.SlotSet{}
		return m.handleBookingFlow(ctx, session, parse)
	case models.IntentNavigate:
		return m.handleNavigate(ctx, session, parse)
	case models.IntentAskActivities:
		return m.handleAskActivities(ctx, session, parse)
	case models.IntentAskHours:
		return m.reply(ctx, session, m.Hours.Sentence(), nil)
	}
	return m.chitChat(ctx, session, parse)
}

// reply appends the assistant message, persists the session and returns the
// turn result. Every terminal path of a turn goes through here.
func (m *DefaultManager) reply(ctx context.Context, session *models.Session, text string, action models.Action) (string, models.Action, error) {
	session.Append("assistant", text, m.HistoryMax)
	if err := m.Sessions.Update(ctx, session); err != nil {
		return "", nil, fmt.Errorf("failed to persist session %s: %w", session.ID, err)
	}
	return text, action, nil
}

func (m *DefaultManager) handleNavigate(ctx context.Context, session *models.Session, parse models.ParseResult) (string, models.Action, error) {
	if len(parse.Entities.Location) == 0 {
		return m.reply(ctx, session, msgWhereTo, nil)
	}
	route, ok := m.Nav.Route(parse.Entities.Location[0])
	if !ok {
		return m.reply(ctx, session, msgUnknownPlace, nil)
	}
	text := fmt.Sprintf(msgNavigateIntro, route.Destination) + strings.Join(route.Instructions, " ")
	action := models.NewNavigateAction(route.Destination, route.DestinationKey, route.Path, route.Instructions)
	return m.reply(ctx, session, text, action)
}

func (m *DefaultManager) handleAskActivities(ctx context.Context, session *models.Session, parse models.ParseResult) (string, models.Action, error) {
	name := ""
	if len(parse.Entities.Activity) > 0 {
		name = parse.Entities.Activity[0]
	}

	if name == "" {
		activities, err := m.Activities.ListAll(ctx)
		if err != nil {
			return "", nil, fmt.Errorf("failed to list activities: %w", err)
		}
		if len(activities) == 0 {
			return m.reply(ctx, session, msgActivityListEmpty, models.NewAskActivityAction())
		}
		names := make([]string, len(activities))
		for i, a := range activities {
			names[i] = a.Nom
		}
		text := fmt.Sprintf(msgActivityList, strings.Join(names, ", "))
		return m.reply(ctx, session, text, models.NewAskActivityAction())
	}

	name = capitalize(name)
	info, err := m.Activities.GetByName(ctx, name)
	if err != nil {
		return "", nil, fmt.Errorf("failed to look up activity %q: %w", name, err)
	}
	if info == nil {
		return m.reply(ctx, session, fmt.Sprintf(msgActivityNotFound, name), nil)
	}
	text := fmt.Sprintf(msgActivityInfo, name, info.Description)
	return m.reply(ctx, session, text, models.NewActivityInfoAction(name, *info))
}

// chitChat delegates to the language model, falling back to the per-intent
// rule templates when it is absent or fails.
func (m *DefaultManager) chitChat(ctx context.Context, session *models.Session, parse models.ParseResult) (string, models.Action, error) {
	if m.Chat != nil {
		prompt := m.SystemPrompt
		if prompt == "" {
			prompt = intelligence.DefaultSystemPrompt
		}
		text, err := m.Chat.GenerateChat(ctx, prompt, session.History)
		if err == nil {
			return m.reply(ctx, session, text, nil)
		}
		utils.GetLogger().Warn("chat generation failed, using rule fallback",
			zap.String("session_id", session.ID), zap.Error(err))
	}
	if templates, ok := fallbackRules[parse.Intent]; ok {
		return m.reply(ctx, session, templates[rand.Intn(len(templates))], nil)
	}
	return m.reply(ctx, session, msgDialogueDown, nil)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
