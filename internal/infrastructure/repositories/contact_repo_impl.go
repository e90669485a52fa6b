package repositories

import (
	"context"

	"gorm.io/gorm"
	"oysterkode.backend/internal/domain/entities"
	"oysterkode.backend/internal/infrastructure/models"
)

// ContactSubmissionRepository implements repositories.ContactSubmissionRepository
type ContactSubmissionRepository struct {
	db *gorm.DB
}

// NewContactSubmissionRepository creates a new contact submission repository
func NewContactSubmissionRepository(db *gorm.DB) *ContactSubmissionRepository {
	return &ContactSubmissionRepository{db: db}
}

func (r *ContactSubmissionRepository) Create(ctx context.Context, submission *entities.ContactSubmission) error {
	m := &models.ContactSubmission{
		ID:        submission.ID.Hex(),
		Name:      submission.Name,
		Email:     submission.Email,
		Subject:   submission.Subject,
		Message:   submission.Message,
		Status:    string(submission.Status),
		CreatedAt: submission.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// List returns submissions newest first.
func (r *ContactSubmissionRepository) List(ctx context.Context) ([]*entities.ContactSubmission, error) {
	var ms []models.ContactSubmission
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.ContactSubmission, 0, len(ms))
	for _, m := range ms {
		items = append(items, &entities.ContactSubmission{
			ID:        objectID(m.ID),
			Name:      m.Name,
			Email:     m.Email,
			Subject:   m.Subject,
			Message:   m.Message,
			Status:    entities.ContactStatus(m.Status),
			CreatedAt: m.CreatedAt.UTC(),
		})
	}
	return items, nil
}

// Count counts submissions, optionally restricted to one status.
func (r *ContactSubmissionRepository) Count(ctx context.Context, status entities.ContactStatus) (int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ContactSubmission{})
	if status != "" {
		query = query.Where("status = ?", string(status))
	}
	var n int64
	if err := query.Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
