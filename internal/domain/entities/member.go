package entities

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Member struct {
	ID         primitive.ObjectID `json:"_id"`
	Name       string             `json:"name" validate:"required,max=120"`
	Role       string             `json:"role" validate:"required,max=120"`
	Department string             `json:"department" validate:"required,max=120"`
	Year       string             `json:"year" validate:"required,max=20"`
	Skills     []string           `json:"skills"`
	Image      string             `json:"image" validate:"required"`
	Github     string             `json:"github,omitempty"`
	Linkedin   string             `json:"linkedin,omitempty"`
	Featured   bool               `json:"featured"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

func (m *Member) Validate() error {
	return validateStruct(m)
}

type MemberInput struct {
	Name       string   `json:"name"`
	Role       string   `json:"role"`
	Department string   `json:"department"`
	Year       string   `json:"year"`
	Skills     []string `json:"skills"`
	Image      string   `json:"image"`
	Github     string   `json:"github"`
	Linkedin   string   `json:"linkedin"`
	Featured   bool     `json:"featured"`
}

func NewMember(in MemberInput) (*Member, error) {
	ts := now()
	m := &Member{
		ID:         primitive.NewObjectID(),
		Name:       strings.TrimSpace(in.Name),
		Role:       strings.TrimSpace(in.Role),
		Department: strings.TrimSpace(in.Department),
		Year:       strings.TrimSpace(in.Year),
		Skills:     cleanList(in.Skills),
		Image:      strings.TrimSpace(in.Image),
		Github:     strings.TrimSpace(in.Github),
		Linkedin:   strings.TrimSpace(in.Linkedin),
		Featured:   in.Featured,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

type MemberPatch struct {
	Name       *string   `json:"name"`
	Role       *string   `json:"role"`
	Department *string   `json:"department"`
	Year       *string   `json:"year"`
	Skills     *[]string `json:"skills"`
	Image      *string   `json:"image"`
	Github     *string   `json:"github"`
	Linkedin   *string   `json:"linkedin"`
	Featured   *bool     `json:"featured"`
}

func (p MemberPatch) Apply(m *Member) error {
	setString(&m.Name, p.Name)
	setString(&m.Role, p.Role)
	setString(&m.Department, p.Department)
	setString(&m.Year, p.Year)
	setList(&m.Skills, p.Skills)
	setString(&m.Image, p.Image)
	setString(&m.Github, p.Github)
	setString(&m.Linkedin, p.Linkedin)
	setBool(&m.Featured, p.Featured)
	m.UpdatedAt = now()
	return m.Validate()
}
