package usecases

import (
	"context"

	"oysterkode.backend/internal/domain/entities"
	"oysterkode.backend/internal/domain/repositories"
)

// StatsUsecase builds the admin dashboard summary
type StatsUsecase struct {
	events   repositories.EventRepository
	members  repositories.MemberRepository
	projects repositories.ProjectRepository
	contacts repositories.ContactSubmissionRepository
}

// NewStatsUsecase creates a new stats usecase
func NewStatsUsecase(
	events repositories.EventRepository,
	members repositories.MemberRepository,
	projects repositories.ProjectRepository,
	contacts repositories.ContactSubmissionRepository,
) *StatsUsecase {
	return &StatsUsecase{events: events, members: members, projects: projects, contacts: contacts}
}

func (u *StatsUsecase) Dashboard(ctx context.Context) (*entities.DashboardStats, error) {
	var (
		stats entities.DashboardStats
		err   error
	)
	if stats.Events, err = u.events.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Members, err = u.members.Count(ctx); err != nil {
		return nil, err
	}
	if stats.Projects, err = u.projects.Count(ctx); err != nil {
		return nil, err
	}
	if stats.ContactSubmissions, err = u.contacts.Count(ctx, ""); err != nil {
		return nil, err
	}
	if stats.NewContactSubmissions, err = u.contacts.Count(ctx, entities.ContactStatusNew); err != nil {
		return nil, err
	}
	return &stats, nil
}
