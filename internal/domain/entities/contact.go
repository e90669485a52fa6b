package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContactStatus tracks admin review of a contact submission.
type ContactStatus string

const (
	ContactStatusNew     ContactStatus = "new"
	ContactStatusRead    ContactStatus = "read"
	ContactStatusReplied ContactStatus = "replied"
)

// ContactSubmission is a message left through the public contact form.
type ContactSubmission struct {
	ID        primitive.ObjectID `json:"_id"`
	Name      string             `json:"name" validate:"required,max=200"`
	Email     string             `json:"email" validate:"required,email,max=320"`
	Subject   string             `json:"subject" validate:"required,max=300"`
	Message   string             `json:"message" validate:"required"`
	Status    ContactStatus      `json:"status" validate:"required,oneof=new read replied"`
	CreatedAt time.Time          `json:"createdAt"`
}

func (s *ContactSubmission) Validate() error {
	return validateStruct(s)
}

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// NewContactSubmission builds a submission in the "new" state. Callers are
// expected to have normalised the text fields already.
func NewContactSubmission(in ContactInput) (*ContactSubmission, error) {
	s := &ContactSubmission{
		ID:        primitive.NewObjectID(),
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		Status:    ContactStatusNew,
		CreatedAt: now(),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
