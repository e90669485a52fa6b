package repositories

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
	"oysterkode.backend/internal/domain/entities"
	domainerrors "oysterkode.backend/internal/domain/errors"
	"oysterkode.backend/internal/infrastructure/models"
)

// ProjectRepository implements repositories.ProjectRepository
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *entities.Project) error {
	return r.db.WithContext(ctx).Create(r.toModel(project)).Error
}

func (r *ProjectRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entities.Project, error) {
	var m models.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id.Hex()).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ProjectRepository) List(ctx context.Context, filter entities.ProjectFilter) ([]*entities.Project, error) {
	query := r.db.WithContext(ctx).Model(&models.Project{})
	if term := likePattern(filter.Search); term != "" {
		query = query.Where(searchClause("title", "description"), repeatArg(term, 2)...)
	}
	if category := strings.TrimSpace(filter.Category); category != "" {
		query = query.Where("category = ?", category)
	}

	var ms []models.Project
	if err := query.Order("featured DESC, title ASC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Project, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *entities.Project) error {
	m := r.toModel(project)
	result := r.db.WithContext(ctx).
		Model(m).
		Select("*").
		Omit("id", "created_at").
		Updates(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result := r.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", id.Hex())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Project{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *ProjectRepository) toEntity(m *models.Project) *entities.Project {
	return &entities.Project{
		ID:           objectID(m.ID),
		Title:        m.Title,
		Description:  m.Description,
		Category:     m.Category,
		Technologies: nonNil(m.Technologies),
		Github:       m.Github,
		Image:        m.Image,
		Demo:         m.Demo.String,
		Featured:     m.Featured,
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}
}

func (r *ProjectRepository) toModel(e *entities.Project) *models.Project {
	return &models.Project{
		ID:           e.ID.Hex(),
		Title:        e.Title,
		Description:  e.Description,
		Category:     e.Category,
		Technologies: nonNil(e.Technologies),
		Github:       e.Github,
		Image:        e.Image,
		Demo:         optionalString(e.Demo),
		Featured:     e.Featured,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
