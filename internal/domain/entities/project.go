package entities

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ProjectCategoryWeb     = "Web Development"
	ProjectCategoryMobile  = "Mobile Apps"
	ProjectCategoryAI      = "AI/ML"
	ProjectCategoryBackend = "Backend"
)

type Project struct {
	ID           primitive.ObjectID `json:"_id"`
	Title        string             `json:"title" validate:"required,max=200"`
	Description  string             `json:"description" validate:"required"`
	Category     string             `json:"category" validate:"required,oneof='Web Development' 'Mobile Apps' 'AI/ML' Backend"`
	Technologies []string           `json:"technologies" validate:"min=1"`
	Github       string             `json:"github" validate:"required"`
	Image        string             `json:"image" validate:"required"`
	Demo         string             `json:"demo,omitempty"`
	Featured     bool               `json:"featured"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

func (p *Project) Validate() error {
	return validateStruct(p)
}

type ProjectInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Technologies []string `json:"technologies"`
	Github       string   `json:"github"`
	Image        string   `json:"image"`
	Demo         string   `json:"demo"`
	Featured     bool     `json:"featured"`
}

func NewProject(in ProjectInput) (*Project, error) {
	ts := now()
	p := &Project{
		ID:           primitive.NewObjectID(),
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		Category:     strings.TrimSpace(in.Category),
		Technologies: cleanList(in.Technologies),
		Github:       strings.TrimSpace(in.Github),
		Image:        strings.TrimSpace(in.Image),
		Demo:         strings.TrimSpace(in.Demo),
		Featured:     in.Featured,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

type ProjectPatch struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Category     *string   `json:"category"`
	Technologies *[]string `json:"technologies"`
	Github       *string   `json:"github"`
	Image        *string   `json:"image"`
	Demo         *string   `json:"demo"`
	Featured     *bool     `json:"featured"`
}

func (pp ProjectPatch) Apply(p *Project) error {
	setString(&p.Title, pp.Title)
	setString(&p.Description, pp.Description)
	setString(&p.Category, pp.Category)
	setList(&p.Technologies, pp.Technologies)
	setString(&p.Github, pp.Github)
	setString(&p.Image, pp.Image)
	setString(&p.Demo, pp.Demo)
	setBool(&p.Featured, pp.Featured)
	p.UpdatedAt = now()
	return p.Validate()
}
