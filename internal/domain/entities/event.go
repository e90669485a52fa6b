package entities

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	domainerrors "oysterkode.backend/internal/domain/errors"
)

// EventCategory classifies an event.
type EventCategory string

const (
	EventCategoryWorkshop    EventCategory = "workshop"
	EventCategoryHackathon   EventCategory = "hackathon"
	EventCategorySeminar     EventCategory = "seminar"
	EventCategoryCompetition EventCategory = "competition"
	EventCategoryOther       EventCategory = "other"
)

// EventStatus is the lifecycle state of an event.
type EventStatus string

const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusOngoing   EventStatus = "ongoing"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// EventDateLayout is the calendar date format accepted for event dates.
const EventDateLayout = "2006-01-02"

type Event struct {
	ID               primitive.ObjectID `json:"_id"`
	Title            string             `json:"title" validate:"required,max=200"`
	Description      string             `json:"description" validate:"required"`
	Date             time.Time          `json:"date" validate:"required"`
	Time             string             `json:"time" validate:"required,max=16"`
	Venue            string             `json:"venue" validate:"required,max=200"`
	Category         EventCategory      `json:"category" validate:"required,oneof=workshop hackathon seminar competition other"`
	Status           EventStatus        `json:"status" validate:"required,oneof=upcoming ongoing completed cancelled"`
	MaxParticipants  *int               `json:"maxParticipants,omitempty" validate:"omitempty,min=1"`
	RegistrationLink string             `json:"registrationLink,omitempty"`
	Requirements     []string           `json:"requirements"`
	Image            string             `json:"image" validate:"required"`
	Featured         bool               `json:"featured"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

func (e *Event) Validate() error {
	return validateStruct(e)
}

// EventInput is the create payload for an event.
type EventInput struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Date             string   `json:"date"`
	Time             string   `json:"time"`
	Venue            string   `json:"venue"`
	Category         string   `json:"category"`
	Status           string   `json:"status"`
	MaxParticipants  *int     `json:"maxParticipants"`
	RegistrationLink string   `json:"registrationLink"`
	Requirements     []string `json:"requirements"`
	Image            string   `json:"image"`
	Featured         bool     `json:"featured"`
}

// NewEvent builds and validates an event from a create payload.
func NewEvent(in EventInput) (*Event, error) {
	date, err := ParseEventDate(in.Date)
	if err != nil {
		return nil, err
	}
	ts := now()
	e := &Event{
		ID:               primitive.NewObjectID(),
		Title:            strings.TrimSpace(in.Title),
		Description:      strings.TrimSpace(in.Description),
		Date:             date,
		Time:             strings.TrimSpace(in.Time),
		Venue:            strings.TrimSpace(in.Venue),
		Category:         EventCategory(strings.TrimSpace(in.Category)),
		Status:           EventStatus(strings.TrimSpace(in.Status)),
		MaxParticipants:  in.MaxParticipants,
		RegistrationLink: strings.TrimSpace(in.RegistrationLink),
		Requirements:     cleanList(in.Requirements),
		Image:            strings.TrimSpace(in.Image),
		Featured:         in.Featured,
		CreatedAt:        ts,
		UpdatedAt:        ts,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}
	return e, nil
}

// EventPatch is a partial update. Nil fields are left unchanged;
// maxParticipants may also be sent as null to clear the limit.
type EventPatch struct {
	Title            *string     `json:"title"`
	Description      *string     `json:"description"`
	Date             *string     `json:"date"`
	Time             *string     `json:"time"`
	Venue            *string     `json:"venue"`
	Category         *string     `json:"category"`
	Status           *string     `json:"status"`
	MaxParticipants  OptionalInt `json:"maxParticipants"`
	RegistrationLink *string     `json:"registrationLink"`
	Requirements     *[]string   `json:"requirements"`
	Image            *string     `json:"image"`
	Featured         *bool       `json:"featured"`
}

// Apply merges the patch into e and re-validates the result.
func (p EventPatch) Apply(e *Event) error {
	if p.Date != nil {
		date, err := ParseEventDate(*p.Date)
		if err != nil {
			return err
		}
		e.Date = date
	}
	setString(&e.Title, p.Title)
	setString(&e.Description, p.Description)
	setString(&e.Time, p.Time)
	setString(&e.Venue, p.Venue)
	if p.Category != nil {
		e.Category = EventCategory(strings.TrimSpace(*p.Category))
	}
	if p.Status != nil {
		e.Status = EventStatus(strings.TrimSpace(*p.Status))
	}
	setOptionalInt(&e.MaxParticipants, p.MaxParticipants)
	setString(&e.RegistrationLink, p.RegistrationLink)
	setList(&e.Requirements, p.Requirements)
	setString(&e.Image, p.Image)
	setBool(&e.Featured, p.Featured)
	e.UpdatedAt = now()
	return e.Validate()
}

// ParseEventDate accepts YYYY-MM-DD or RFC 3339 and returns the UTC calendar
// date. Blank input yields the zero time so the required check reports it.
func ParseEventDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, nil
	}
	if d, err := time.Parse(EventDateLayout, raw); err == nil {
		return d, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, domainerrors.BadRequest("date must be a calendar date (YYYY-MM-DD)")
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
