package models

// Action type tags carried on the structured payload of a dialog turn.
const (
	ActionBookingSlotFilling = "booking_slot_filling"
	ActionBookingChooseSalle = "booking_choose_salle"
	ActionBookingNoAvail     = "booking_no_availability"
	ActionBookingConfirmed   = "booking_confirmed"
	ActionBookingError       = "booking_error"
	ActionNavigate           = "navigate"
	ActionAskActivity        = "ask_activity"
	ActionActivityInfo       = "provide_activity_info"
)

// Booking error reason codes.
const (
	ReasonSalleNotFound          = "salle_not_found"
	ReasonReservationWriteFailed = "reservation_write_failed"
)

// Action is the tagged payload returned alongside the spoken response,
// consumed by the orchestration layer (speech synthesis, tablet display).
// Each kind is its own struct carrying its required fields; the Type field
// is fixed by the constructor.
type Action interface {
	ActionType() string
}

// SlotFillingAction asks the user for the highest-priority missing slot.
type SlotFillingAction struct {
	Type         string  `json:"type"`
	MissingSlot  string  `json:"missing_slot"`
	CurrentSlots SlotSet `json:"current_slots"`
}

func NewSlotFillingAction(missing string, slots SlotSet) SlotFillingAction {
	return SlotFillingAction{Type: ActionBookingSlotFilling, MissingSlot: missing, CurrentSlots: slots}
}

func (a SlotFillingAction) ActionType() string { return a.Type }

// ChooseSalleAction asks the user to pick one of several candidate rooms.
type ChooseSalleAction struct {
	Type              string  `json:"type"`
	SallesDisponibles []Room  `json:"salles_disponibles,omitempty"`
	CurrentSlots      SlotSet `json:"current_slots"`
}

func NewChooseSalleAction(salles []Room, slots SlotSet) ChooseSalleAction {
	return ChooseSalleAction{Type: ActionBookingChooseSalle, SallesDisponibles: salles, CurrentSlots: slots}
}

func (a ChooseSalleAction) ActionType() string { return a.Type }

// NoAvailabilityAction signals a rejected booking (conflict or no room).
type NoAvailabilityAction struct {
	Type string `json:"type"`
}

func NewNoAvailabilityAction() NoAvailabilityAction {
	return NoAvailabilityAction{Type: ActionBookingNoAvail}
}

func (a NoAvailabilityAction) ActionType() string { return a.Type }

// BookingSummary carries the persisted booking fields of a confirmation.
type BookingSummary struct {
	SalleID    string `json:"salle_id"`
	SalleNom   string `json:"salle_nom"`
	Activite   string `json:"activite,omitempty"`
	Jour       string `json:"jour"`
	HeureDebut string `json:"heure_debut"`
	HeureFin   string `json:"heure_fin"`
}

// ConfirmedAction reports a successfully persisted reservation.
type ConfirmedAction struct {
	Type    string         `json:"type"`
	Booking BookingSummary `json:"booking"`
}

func NewConfirmedAction(b BookingSummary) ConfirmedAction {
	return ConfirmedAction{Type: ActionBookingConfirmed, Booking: b}
}

func (a ConfirmedAction) ActionType() string { return a.Type }

// ErrorAction reports a terminal booking failure with a reason code.
type ErrorAction struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

func NewErrorAction(reason string) ErrorAction {
	return ErrorAction{Type: ActionBookingError, Reason: reason}
}

func (a ErrorAction) ActionType() string { return a.Type }

// NavigateAction carries a computed indoor route for the tablet display.
type NavigateAction struct {
	Type           string   `json:"type"`
	Destination    string   `json:"destination"`
	DestinationKey string   `json:"destination_key"`
	Path           []string `json:"path"`
	Instructions   []string `json:"instructions"`
}

func NewNavigateAction(destination, key string, path, instructions []string) NavigateAction {
	return NavigateAction{
		Type:           ActionNavigate,
		Destination:    destination,
		DestinationKey: key,
		Path:           path,
		Instructions:   instructions,
	}
}

func (a NavigateAction) ActionType() string { return a.Type }

// AskActivityAction signals that the list of activities was offered.
type AskActivityAction struct {
	Type string `json:"type"`
}

func NewAskActivityAction() AskActivityAction {
	return AskActivityAction{Type: ActionAskActivity}
}

func (a AskActivityAction) ActionType() string { return a.Type }

// ActivityInfoAction carries details about one activity.
type ActivityInfoAction struct {
	Type     string   `json:"type"`
	Activity string   `json:"activity"`
	Info     Activity `json:"info"`
}

func NewActivityInfoAction(name string, info Activity) ActivityInfoAction {
	return ActivityInfoAction{Type: ActionActivityInfo, Activity: name, Info: info}
}

func (a ActivityInfoAction) ActionType() string { return a.Type }
