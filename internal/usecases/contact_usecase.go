package usecases

import (
	"context"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"oysterkode.backend/internal/domain/entities"
	"oysterkode.backend/internal/domain/repositories"
)

var plainText = bluemonday.StrictPolicy()

// sanitizeText strips markup and leaves plain text. The value is stored
// decoded, so the policy runs again after each decode until nothing changes;
// entity-encoded tags cannot survive as markup.
func sanitizeText(s string) string {
	s = strings.TrimSpace(s)
	for {
		next := html.UnescapeString(plainText.Sanitize(s))
		if next == s {
			return strings.TrimSpace(s)
		}
		s = next
	}
}

// ContactUsecase handles the public contact form
type ContactUsecase struct {
	repo repositories.ContactSubmissionRepository
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(repo repositories.ContactSubmissionRepository) *ContactUsecase {
	return &ContactUsecase{repo: repo}
}

// Submit stores a visitor message in the "new" state.
func (u *ContactUsecase) Submit(ctx context.Context, input entities.ContactInput) (*entities.ContactSubmission, error) {
	submission, err := entities.NewContactSubmission(entities.ContactInput{
		Name:    sanitizeText(input.Name),
		Email:   strings.TrimSpace(input.Email),
		Subject: sanitizeText(input.Subject),
		Message: sanitizeText(input.Message),
	})
	if err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, submission); err != nil {
		return nil, err
	}
	return submission, nil
}

// List returns all submissions, newest first.
func (u *ContactUsecase) List(ctx context.Context) ([]*entities.ContactSubmission, error) {
	return u.repo.List(ctx)
}
