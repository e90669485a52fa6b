package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"oysterkode.backend/internal/domain/entities"
)

// AdminRepository persists administrator accounts.
type AdminRepository interface {
	Create(ctx context.Context, admin *entities.Admin) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*entities.Admin, error)
	GetByUsername(ctx context.Context, username string) (*entities.Admin, error)
	Count(ctx context.Context) (int64, error)
	UpdatePassword(ctx context.Context, id primitive.ObjectID, passwordHash string) error
}
