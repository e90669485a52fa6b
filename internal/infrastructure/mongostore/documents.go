package mongostore

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"oysterkode.backend/internal/domain/entities"
)

type adminDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	Username     string             `bson:"username"`
	PasswordHash string             `bson:"password"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

type eventDocument struct {
	ID               primitive.ObjectID `bson:"_id"`
	Title            string             `bson:"title"`
	Description      string             `bson:"description"`
	Date             time.Time          `bson:"date"`
	Time             string             `bson:"time"`
	Venue            string             `bson:"venue"`
	Category         string             `bson:"category"`
	Status           string             `bson:"status"`
	MaxParticipants  *int               `bson:"maxParticipants,omitempty"`
	RegistrationLink string             `bson:"registrationLink,omitempty"`
	Requirements     []string           `bson:"requirements"`
	Image            string             `bson:"image"`
	Featured         bool               `bson:"featured"`
	CreatedAt        time.Time          `bson:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt"`
}

type memberDocument struct {
	ID         primitive.ObjectID `bson:"_id"`
	Name       string             `bson:"name"`
	Role       string             `bson:"role"`
	Department string             `bson:"department"`
	Year       string             `bson:"year"`
	Skills     []string           `bson:"skills"`
	Image      string             `bson:"image"`
	Github     string             `bson:"github,omitempty"`
	Linkedin   string             `bson:"linkedin,omitempty"`
	Featured   bool               `bson:"featured"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}

type projectDocument struct {
	ID           primitive.ObjectID `bson:"_id"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	Category     string             `bson:"category"`
	Technologies []string           `bson:"technologies"`
	Github       string             `bson:"github"`
	Image        string             `bson:"image"`
	Demo         string             `bson:"demo,omitempty"`
	Featured     bool               `bson:"featured"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

type contactDocument struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Subject   string             `bson:"subject"`
	Message   string             `bson:"message"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

func toAdminDocument(a *entities.Admin) adminDocument {
	return adminDocument{
		ID:           a.ID,
		Username:     a.Username,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func (d adminDocument) toEntity() *entities.Admin {
	return &entities.Admin{
		ID:           d.ID,
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func toEventDocument(e *entities.Event) eventDocument {
	return eventDocument{
		ID:               e.ID,
		Title:            e.Title,
		Description:      e.Description,
		Date:             e.Date,
		Time:             e.Time,
		Venue:            e.Venue,
		Category:         string(e.Category),
		Status:           string(e.Status),
		MaxParticipants:  e.MaxParticipants,
		RegistrationLink: e.RegistrationLink,
		Requirements:     nonNil(e.Requirements),
		Image:            e.Image,
		Featured:         e.Featured,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func (d eventDocument) toEntity() *entities.Event {
	return &entities.Event{
		ID:               d.ID,
		Title:            d.Title,
		Description:      d.Description,
		Date:             d.Date,
		Time:             d.Time,
		Venue:            d.Venue,
		Category:         entities.EventCategory(d.Category),
		Status:           entities.EventStatus(d.Status),
		MaxParticipants:  d.MaxParticipants,
		RegistrationLink: d.RegistrationLink,
		Requirements:     nonNil(d.Requirements),
		Image:            d.Image,
		Featured:         d.Featured,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func toMemberDocument(m *entities.Member) memberDocument {
	return memberDocument{
		ID:         m.ID,
		Name:       m.Name,
		Role:       m.Role,
		Department: m.Department,
		Year:       m.Year,
		Skills:     nonNil(m.Skills),
		Image:      m.Image,
		Github:     m.Github,
		Linkedin:   m.Linkedin,
		Featured:   m.Featured,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (d memberDocument) toEntity() *entities.Member {
	return &entities.Member{
		ID:         d.ID,
		Name:       d.Name,
		Role:       d.Role,
		Department: d.Department,
		Year:       d.Year,
		Skills:     nonNil(d.Skills),
		Image:      d.Image,
		Github:     d.Github,
		Linkedin:   d.Linkedin,
		Featured:   d.Featured,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func toProjectDocument(p *entities.Project) projectDocument {
	return projectDocument{
		ID:           p.ID,
		Title:        p.Title,
		Description:  p.Description,
		Category:     p.Category,
		Technologies: nonNil(p.Technologies),
		Github:       p.Github,
		Image:        p.Image,
		Demo:         p.Demo,
		Featured:     p.Featured,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (d projectDocument) toEntity() *entities.Project {
	return &entities.Project{
		ID:           d.ID,
		Title:        d.Title,
		Description:  d.Description,
		Category:     d.Category,
		Technologies: nonNil(d.Technologies),
		Github:       d.Github,
		Image:        d.Image,
		Demo:         d.Demo,
		Featured:     d.Featured,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func toContactDocument(s *entities.ContactSubmission) contactDocument {
	return contactDocument{
		ID:        s.ID,
		Name:      s.Name,
		Email:     s.Email,
		Subject:   s.Subject,
		Message:   s.Message,
		Status:    string(s.Status),
		CreatedAt: s.CreatedAt,
	}
}

func (d contactDocument) toEntity() *entities.ContactSubmission {
	return &entities.ContactSubmission{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		Subject:   d.Subject,
		Message:   d.Message,
		Status:    entities.ContactStatus(d.Status),
		CreatedAt: d.CreatedAt,
	}
}
