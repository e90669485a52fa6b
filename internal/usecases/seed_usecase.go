package usecases

import (
	"context"

	"oysterkode.backend/internal/domain/entities"
	"oysterkode.backend/internal/domain/repositories"
)

func intRef(v int) *int {
	return &v
}

var sampleMembers = []entities.MemberInput{
	{
		Name:       "John Doe",
		Role:       "Full Stack Developer",
		Department: "Computer Science",
		Year:       "2024",
		Skills:     []string{"React", "Node.js", "MongoDB"},
		Image:      "https://res.cloudinary.com/oysterkode/image/upload/members/john-doe.jpg",
		Github:     "https://github.com/johndoe",
		Linkedin:   "https://linkedin.com/in/johndoe",
		Featured:   true,
	},
	{
		Name:       "Jane Smith",
		Role:       "AI Engineer",
		Department: "Information Technology",
		Year:       "2023",
		Skills:     []string{"Python", "TensorFlow", "Machine Learning"},
		Image:      "https://res.cloudinary.com/oysterkode/image/upload/members/jane-smith.jpg",
		Github:     "https://github.com/janesmith",
		Linkedin:   "https://linkedin.com/in/janesmith",
	},
}

var sampleProjects = []entities.ProjectInput{
	{
		Title:        "E-commerce Platform",
		Description:  "A full-stack e-commerce platform with React frontend and Node.js backend",
		Category:     string(entities.ProjectCategoryWeb),
		Technologies: []string{"React", "Node.js", "MongoDB", "Express"},
		Github:       "https://github.com/oysterkode/ecommerce-platform",
		Demo:         "https://ecommerce-demo.com",
		Image:        "https://res.cloudinary.com/oysterkode/image/upload/projects/ecommerce.jpg",
		Featured:     true,
	},
	{
		Title:        "AI Chatbot",
		Description:  "An intelligent chatbot using natural language processing",
		Category:     string(entities.ProjectCategoryAI),
		Technologies: []string{"Python", "TensorFlow", "NLTK"},
		Github:       "https://github.com/oysterkode/ai-chatbot",
		Demo:         "https://ai-chatbot-demo.com",
		Image:        "https://res.cloudinary.com/oysterkode/image/upload/projects/chatbot.jpg",
	},
}

var sampleEvents = []entities.EventInput{
	{
		Title:            "Web Development Workshop",
		Description:      "Learn the basics of web development with hands-on projects",
		Date:             "2024-04-15",
		Time:             "14:00",
		Venue:            "Computer Science Department",
		Category:         string(entities.EventCategoryWorkshop),
		Status:           string(entities.EventStatusUpcoming),
		MaxParticipants:  intRef(30),
		RegistrationLink: "https://forms.gle/workshop-registration",
		Requirements:     []string{"Laptop", "Basic programming knowledge"},
		Image:            "https://res.cloudinary.com/oysterkode/image/upload/events/web-dev-workshop.jpg",
		Featured:         true,
	},
	{
		Title:            "Hackathon 2024",
		Description:      "Annual coding competition for innovative solutions",
		Date:             "2024-05-20",
		Time:             "09:00",
		Venue:            "University Auditorium",
		Category:         string(entities.EventCategoryHackathon),
		Status:           string(entities.EventStatusUpcoming),
		MaxParticipants:  intRef(100),
		RegistrationLink: "https://forms.gle/hackathon-registration",
		Requirements:     []string{"Team of 2-4 members", "Laptop"},
		Image:            "https://res.cloudinary.com/oysterkode/image/upload/events/hackathon-2024.jpg",
		Featured:         true,
	},
}

// SeedResult reports how many sample documents were inserted.
type SeedResult struct {
	Members  int `json:"members"`
	Projects int `json:"projects"`
	Events   int `json:"events"`
}

// SeedUsecase loads demo content for local development.
type SeedUsecase struct {
	events   *EventUsecase
	members  *MemberUsecase
	projects *ProjectUsecase
}

// NewSeedUsecase creates a new seed usecase
func NewSeedUsecase(events repositories.EventRepository, members repositories.MemberRepository, projects repositories.ProjectRepository) *SeedUsecase {
	return &SeedUsecase{
		events:   NewEventUsecase(events),
		members:  NewMemberUsecase(members),
		projects: NewProjectUsecase(projects),
	}
}

// Seed inserts the sample members, projects and events. With reset the
// three collections are emptied first.
func (u *SeedUsecase) Seed(ctx context.Context, reset bool) (*SeedResult, error) {
	if reset {
		if err := u.clear(ctx); err != nil {
			return nil, err
		}
	}

	var res SeedResult
	for _, in := range sampleMembers {
		if _, err := u.members.Create(ctx, in); err != nil {
			return &res, err
		}
		res.Members++
	}
	for _, in := range sampleProjects {
		if _, err := u.projects.Create(ctx, in); err != nil {
			return &res, err
		}
		res.Projects++
	}
	for _, in := range sampleEvents {
		if _, err := u.events.Create(ctx, in); err != nil {
			return &res, err
		}
		res.Events++
	}
	return &res, nil
}

func (u *SeedUsecase) clear(ctx context.Context) error {
	members, err := u.members.List(ctx, entities.MemberFilter{})
	if err != nil {
		return err
	}
	for _, m := range members {
		if err := u.members.repo.Delete(ctx, m.ID); err != nil {
			return err
		}
	}

	projects, err := u.projects.List(ctx, entities.ProjectFilter{})
	if err != nil {
		return err
	}
	for _, p := range projects {
		if err := u.projects.repo.Delete(ctx, p.ID); err != nil {
			return err
		}
	}

	events, err := u.events.List(ctx, entities.EventFilter{})
	if err != nil {
		return err
	}
	for _, e := range events {
		if err := u.events.repo.Delete(ctx, e.ID); err != nil {
			return err
		}
	}
	return nil
}
