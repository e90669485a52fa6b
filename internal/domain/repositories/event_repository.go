package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"oysterkode.backend/internal/domain/entities"
)

// EventRepository defines event data operations
type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*entities.Event, error)
	List(ctx context.Context, filter entities.EventFilter) ([]*entities.Event, error)
	Update(ctx context.Context, event *entities.Event) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	// MarkPastAsCompleted moves upcoming events dated before the cutoff to
	// completed and reports how many changed.
	MarkPastAsCompleted(ctx context.Context, before time.Time) (int64, error)
}
