package usecases

import (
	"context"
	"errors"

	"oysterkode.backend/internal/domain/entities"
	domainerrors "oysterkode.backend/internal/domain/errors"
	"oysterkode.backend/internal/domain/repositories"
)

// ProjectUsecase handles project showcase management
type ProjectUsecase struct {
	repo repositories.ProjectRepository
}

// NewProjectUsecase creates a new project usecase
func NewProjectUsecase(repo repositories.ProjectRepository) *ProjectUsecase {
	return &ProjectUsecase{repo: repo}
}

func (u *ProjectUsecase) List(ctx context.Context, filter entities.ProjectFilter) ([]*entities.Project, error) {
	return u.repo.List(ctx, filter)
}

func (u *ProjectUsecase) ListPublic(ctx context.Context) ([]*entities.Project, error) {
	return u.repo.List(ctx, entities.ProjectFilter{})
}

func (u *ProjectUsecase) Create(ctx context.Context, input entities.ProjectInput) (*entities.Project, error) {
	project, err := entities.NewProject(input)
	if err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (u *ProjectUsecase) Update(ctx context.Context, rawID string, patch entities.ProjectPatch) (*entities.Project, error) {
	id, err := entities.ParseID(rawID, "project")
	if err != nil {
		return nil, err
	}

	project, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, projectNotFound(err)
	}
	if err := patch.Apply(project); err != nil {
		return nil, err
	}
	if err := u.repo.Update(ctx, project); err != nil {
		return nil, projectNotFound(err)
	}
	return project, nil
}

func (u *ProjectUsecase) Delete(ctx context.Context, rawID string) error {
	id, err := entities.ParseID(rawID, "project")
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return projectNotFound(err)
	}
	return nil
}

func projectNotFound(err error) error {
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound("Project not found")
	}
	return err
}
