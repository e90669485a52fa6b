package repositories

import (
	"context"

	"oysterkode.backend/internal/domain/entities"
)

// ContactSubmissionRepository stores contact form messages. Submissions are
// append-only from the API's point of view.
type ContactSubmissionRepository interface {
	Create(ctx context.Context, submission *entities.ContactSubmission) error
	// List returns every submission, newest first.
	List(ctx context.Context) ([]*entities.ContactSubmission, error)
	// Count counts submissions, optionally restricted to one status.
	Count(ctx context.Context, status entities.ContactStatus) (int64, error)
}
