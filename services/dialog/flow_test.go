package dialog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"multisport/models"
	"multisport/services/booking"
	"multisport/services/navigation"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeSessions struct {
	sessions map[string]*models.Session
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: make(map[string]*models.Session)}
}

func (f *fakeSessions) Create(ctx context.Context) (*models.Session, error) {
	s := &models.Session{ID: fmt.Sprintf("session-%d", len(f.sessions)+1)}
	f.sessions[s.ID] = s
	return s, nil
}

func (f *fakeSessions) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	if s, ok := f.sessions[sessionID]; ok {
		return s, nil
	}
	s := &models.Session{ID: sessionID}
	f.sessions[sessionID] = s
	return s, nil
}

func (f *fakeSessions) Update(ctx context.Context, session *models.Session) error {
	f.sessions[session.ID] = session
	return nil
}

type fakeAvailability struct {
	rooms    []models.Room
	conflict bool
}

func (f *fakeAvailability) FindRoomsForActivity(ctx context.Context, activite string) ([]models.Room, error) {
	return f.rooms, nil
}

func (f *fakeAvailability) HasConflict(ctx context.Context, room models.Room, jour, heureDebut, heureFin string) (bool, error) {
	return f.conflict, nil
}

type fakeRoomResolver struct {
	rooms []models.Room
}

func (f *fakeRoomResolver) Resolve(ctx context.Context, key string) (*models.Room, error) {
	name := strings.ReplaceAll(key, "_", " ")
	for i := range f.rooms {
		if strings.EqualFold(f.rooms[i].Nom, name) || strings.EqualFold(f.rooms[i].Nom, key) {
			return &f.rooms[i], nil
		}
	}
	return nil, fmt.Errorf("room %q: %w", key, booking.ErrSalleNotFound)
}

type fakeReservations struct {
	created []models.Reservation
	failErr error
}

func (f *fakeReservations) ListByRoomDay(ctx context.Context, salle primitive.ObjectID, jour string) ([]models.Reservation, error) {
	return nil, nil
}

func (f *fakeReservations) Create(ctx context.Context, reservation *models.Reservation) error {
	if f.failErr != nil {
		return f.failErr
	}
	f.created = append(f.created, *reservation)
	return nil
}

type fakeActivities struct {
	list []models.Activity
}

func (f *fakeActivities) ListAll(ctx context.Context) ([]models.Activity, error) {
	return f.list, nil
}

func (f *fakeActivities) GetByName(ctx context.Context, nom string) (*models.Activity, error) {
	for i := range f.list {
		if strings.EqualFold(f.list[i].Nom, nom) {
			return &f.list[i], nil
		}
	}
	return nil, nil
}

func (f *fakeActivities) PlanningForRoomDay(ctx context.Context, salle primitive.ObjectID, jour string) ([]models.PlanningEntry, error) {
	return nil, nil
}

type fixture struct {
	sessions     *fakeSessions
	availability *fakeAvailability
	rooms        *fakeRoomResolver
	reservations *fakeReservations
	manager      *DefaultManager
}

func newFixture(t *testing.T, rooms ...models.Room) *fixture {
	t.Helper()
	f := &fixture{
		sessions:     newFakeSessions(),
		availability: &fakeAvailability{rooms: rooms},
		rooms:        &fakeRoomResolver{rooms: rooms},
		reservations: &fakeReservations{},
	}
	f.manager = &DefaultManager{
		Sessions:     f.sessions,
		Availability: f.availability,
		Rooms:        f.rooms,
		Reservations: f.reservations,
		Activities:   &fakeActivities{},
		Nav:          navigation.NewIndoorMap(),
		Hours: OpeningHours{
			WeekdayOpen:  "08:00",
			WeekdayClose: "22:00",
			WeekendOpen:  "09:00",
			WeekendClose: "18:00",
		},
		HistoryMax: 20,
		Now:        func() time.Time { return fixedNow },
	}
	return f
}

func room(nom string) models.Room {
	return models.Room{ID: primitive.NewObjectID(), Nom: nom}
}

func handle(t *testing.T, f *fixture, parse models.ParseResult) (string, models.Action) {
	t.Helper()
	text, action, err := f.manager.Handle(context.Background(), "s1", parse)
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	return text, action
}

func bookTurn(rawText string, entities models.Entities) models.ParseResult {
	return models.ParseResult{Intent: models.IntentBookActivity, Entities: entities, RawText: rawText}
}

func turn(rawText string, entities models.Entities) models.ParseResult {
	return models.ParseResult{Intent: models.IntentUnknown, Entities: entities, RawText: rawText}
}

func TestBookingFlowAsksForSlotsInOrder(t *testing.T) {
	f := newFixture(t, room("Salle A"), room("Salle B"))

	text, action := handle(t, f, bookTurn("je veux réserver", models.Entities{}))
	sf, ok := action.(models.SlotFillingAction)
	if !ok {
		t.Fatalf("expected SlotFillingAction, got %T", action)
	}
	if sf.MissingSlot != models.SlotSalleOrActivite || text != promptSalleOrActivite {
		t.Fatalf("expected salle/activite prompt, got slot %q text %q", sf.MissingSlot, text)
	}

	_, action = handle(t, f, turn("du yoga", models.Entities{Activity: []string{"yoga"}}))
	if sf = action.(models.SlotFillingAction); sf.MissingSlot != models.SlotJour {
		t.Fatalf("expected jour prompt, got %q", sf.MissingSlot)
	}

	_, action = handle(t, f, turn("demain", models.Entities{}))
	sf = action.(models.SlotFillingAction)
	if sf.MissingSlot != models.SlotHeure {
		t.Fatalf("expected heure prompt, got %q", sf.MissingSlot)
	}
	if sf.CurrentSlots.Jour != "02/09/2026" {
		t.Fatalf("expected normalized jour, got %q", sf.CurrentSlots.Jour)
	}

	text, action = handle(t, f, turn("à 18h", models.Entities{}))
	choose, ok := action.(models.ChooseSalleAction)
	if !ok {
		t.Fatalf("expected ChooseSalleAction, got %T (%s)", action, text)
	}
	if len(choose.SallesDisponibles) != 2 || !choose.CurrentSlots.AwaitingSalleChoice {
		t.Fatalf("expected two candidates awaiting choice, got %+v", choose)
	}

	text, action = handle(t, f, turn("la salle A", models.Entities{}))
	confirmed, ok := action.(models.ConfirmedAction)
	if !ok {
		t.Fatalf("expected ConfirmedAction, got %T (%s)", action, text)
	}
	if confirmed.Booking.SalleNom != "Salle A" ||
		confirmed.Booking.Jour != "02/09/2026" ||
		confirmed.Booking.HeureDebut != "18:00" ||
		confirmed.Booking.HeureFin != "19:00" {
		t.Fatalf("unexpected booking summary: %+v", confirmed.Booking)
	}
	if len(f.reservations.created) != 1 {
		t.Fatalf("expected one stored reservation, got %d", len(f.reservations.created))
	}
	if got := f.reservations.created[0]; got.Statut != models.StatutConfirmee || got.HeureFin != "19:00" {
		t.Fatalf("unexpected stored reservation: %+v", got)
	}
	if f.sessions.sessions["s1"].BookingSlots != nil {
		t.Fatal("expected booking slots cleared after confirmation")
	}
}

func TestBookingSingleRoomConfirmsDirectly(t *testing.T) {
	f := newFixture(t, room("Salle C"))

	_, action := handle(t, f, bookTurn("je veux faire du yoga demain à 18h",
		models.Entities{Activity: []string{"yoga"}}))
	confirmed, ok := action.(models.ConfirmedAction)
	if !ok {
		t.Fatalf("expected ConfirmedAction, got %T", action)
	}
	if confirmed.Booking.SalleNom != "Salle C" || confirmed.Booking.Activite != "yoga" {
		t.Fatalf("unexpected booking summary: %+v", confirmed.Booking)
	}
}

func TestBookingNoCandidateRooms(t *testing.T) {
	f := newFixture(t)

	text, action := handle(t, f, bookTurn("je veux faire du yoga demain à 18h",
		models.Entities{Activity: []string{"yoga"}}))
	if _, ok := action.(models.NoAvailabilityAction); !ok {
		t.Fatalf("expected NoAvailabilityAction, got %T (%s)", action, text)
	}
	if f.sessions.sessions["s1"].BookingSlots != nil {
		t.Fatal("expected booking slots cleared")
	}
}

func TestBookingConflictEndsFlow(t *testing.T) {
	f := newFixture(t, room("Salle A"))
	f.availability.conflict = true

	text, action := handle(t, f, bookTurn("réserver la salle A demain à 18h",
		models.Entities{Location: []string{"salle_a"}}))
	if _, ok := action.(models.NoAvailabilityAction); !ok {
		t.Fatalf("expected NoAvailabilityAction, got %T (%s)", action, text)
	}
	if !strings.Contains(text, "déjà réservée") {
		t.Fatalf("expected conflict message, got %q", text)
	}
	if len(f.reservations.created) != 0 {
		t.Fatal("no reservation should be stored on conflict")
	}
	if f.sessions.sessions["s1"].BookingSlots != nil {
		t.Fatal("expected booking slots cleared")
	}
}

func TestBookingOutsideOpeningHoursReasksTime(t *testing.T) {
	f := newFixture(t, room("Salle A"))

	_, action := handle(t, f, bookTurn("réserver la salle A demain à 23h30",
		models.Entities{Location: []string{"salle_a"}}))
	sf, ok := action.(models.SlotFillingAction)
	if !ok {
		t.Fatalf("expected SlotFillingAction, got %T", action)
	}
	if sf.MissingSlot != models.SlotHeure {
		t.Fatalf("expected heure re-prompt, got %q", sf.MissingSlot)
	}

	slots := f.sessions.sessions["s1"].BookingSlots
	if slots == nil {
		t.Fatal("expected booking flow still open")
	}
	if slots.Heure != "" {
		t.Fatalf("expected heure cleared, got %q", slots.Heure)
	}
	if slots.Jour != "02/09/2026" || slots.Salle != "salle_a" {
		t.Fatalf("other slots must survive the gate: %+v", slots)
	}

	// Restating a valid time completes the booking.
	_, action = handle(t, f, turn("à 18h", models.Entities{}))
	if _, ok := action.(models.ConfirmedAction); !ok {
		t.Fatalf("expected ConfirmedAction after retry, got %T", action)
	}
}

func TestBookingPersistFailureNeverConfirms(t *testing.T) {
	f := newFixture(t, room("Salle A"))
	f.reservations.failErr = errors.New("insert not acknowledged")

	text, action := handle(t, f, bookTurn("réserver la salle A demain à 18h",
		models.Entities{Location: []string{"salle_a"}}))
	errAction, ok := action.(models.ErrorAction)
	if !ok {
		t.Fatalf("expected ErrorAction, got %T (%s)", action, text)
	}
	if errAction.Reason != models.ReasonReservationWriteFailed {
		t.Fatalf("expected reservation_write_failed, got %q", errAction.Reason)
	}
	if text != msgBookingFailed {
		t.Fatalf("unexpected failure message %q", text)
	}
	if f.sessions.sessions["s1"].BookingSlots != nil {
		t.Fatal("expected booking slots cleared")
	}
}

func TestBookingUnknownRoom(t *testing.T) {
	f := newFixture(t)

	text, action := handle(t, f, bookTurn("réserver la salle Z demain à 18h",
		models.Entities{Location: []string{"salle_z"}}))
	errAction, ok := action.(models.ErrorAction)
	if !ok {
		t.Fatalf("expected ErrorAction, got %T (%s)", action, text)
	}
	if errAction.Reason != models.ReasonSalleNotFound {
		t.Fatalf("expected salle_not_found, got %q", errAction.Reason)
	}
}

func TestSalleChoiceNotUnderstoodReasks(t *testing.T) {
	f := newFixture(t, room("Salle A"), room("Salle B"))

	handle(t, f, bookTurn("je veux faire du yoga demain à 18h",
		models.Entities{Activity: []string{"yoga"}}))

	text, action := handle(t, f, turn("euh je ne sais pas", models.Entities{}))
	if _, ok := action.(models.ChooseSalleAction); !ok {
		t.Fatalf("expected ChooseSalleAction re-ask, got %T (%s)", action, text)
	}
	slots := f.sessions.sessions["s1"].BookingSlots
	if slots == nil || !slots.AwaitingSalleChoice {
		t.Fatal("expected choice still pending")
	}

	_, action = handle(t, f, turn("la salle B", models.Entities{}))
	confirmed, ok := action.(models.ConfirmedAction)
	if !ok {
		t.Fatalf("expected ConfirmedAction, got %T", action)
	}
	if confirmed.Booking.SalleNom != "Salle B" {
		t.Fatalf("expected Salle B, got %q", confirmed.Booking.SalleNom)
	}
}

func TestLaterMentionOverwritesSlot(t *testing.T) {
	f := newFixture(t, room("Salle A"))

	handle(t, f, bookTurn("réserver la salle A demain",
		models.Entities{Location: []string{"salle_a"}}))

	// The user changes the day before giving a time.
	_, action := handle(t, f, turn("plutôt après-demain", models.Entities{}))
	sf := action.(models.SlotFillingAction)
	if sf.MissingSlot != models.SlotHeure {
		t.Fatalf("expected heure prompt, got %q", sf.MissingSlot)
	}
	if sf.CurrentSlots.Jour != "03/09/2026" {
		t.Fatalf("expected overwritten jour, got %q", sf.CurrentSlots.Jour)
	}
}
