package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"oysterkode.backend/internal/domain/entities"
)

type MemberRepository interface {
	Create(ctx context.Context, member *entities.Member) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*entities.Member, error)
	List(ctx context.Context, filter entities.MemberFilter) ([]*entities.Member, error)
	Update(ctx context.Context, member *entities.Member) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}
