package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/volatiletech/null/v8"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/gorm"
	"oysterkode.backend/internal/domain/entities"
	domainerrors "oysterkode.backend/internal/domain/errors"
	"oysterkode.backend/internal/infrastructure/models"
)

// EventRepository implements repositories.EventRepository
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	return r.db.WithContext(ctx).Create(r.toModel(event)).Error
}

func (r *EventRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entities.Event, error) {
	var m models.Event
	if err := r.db.WithContext(ctx).Where("id = ?", id.Hex()).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *EventRepository) List(ctx context.Context, filter entities.EventFilter) ([]*entities.Event, error) {
	query := r.db.WithContext(ctx).Model(&models.Event{})
	if term := likePattern(filter.Search); term != "" {
		query = query.Where(searchClause("title", "description", "venue"), repeatArg(term, 3)...)
	}
	if category := strings.TrimSpace(filter.Category); category != "" {
		query = query.Where("category = ?", category)
	}
	if status := strings.TrimSpace(filter.Status); status != "" {
		query = query.Where("status = ?", status)
	}

	order := "date ASC, time ASC"
	if filter.Sort == entities.SortPublic {
		order = "date DESC, time DESC"
	}

	var ms []models.Event
	if err := query.Order(order).Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Event, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	m := r.toModel(event)
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

func (r *EventRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result := r.db.WithContext(ctx).Delete(&models.Event{}, "id = ?", id.Hex())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Event{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *EventRepository) MarkPastAsCompleted(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Event{}).
		Where("status = ? AND date < ?", string(entities.EventStatusUpcoming), before).
		Updates(map[string]interface{}{
			"status":     string(entities.EventStatusCompleted),
			"updated_at": time.Now().UTC(),
		})
	return result.RowsAffected, result.Error
}

func (r *EventRepository) toEntity(m *models.Event) *entities.Event {
	return &entities.Event{
		ID:               objectID(m.ID),
		Title:            m.Title,
		Description:      m.Description,
		Date:             m.Date.UTC(),
		Time:             m.Time,
		Venue:            m.Venue,
		Category:         entities.EventCategory(m.Category),
		Status:           entities.EventStatus(m.Status),
		MaxParticipants:  m.MaxParticipants.Ptr(),
		RegistrationLink: m.RegistrationLink.String,
		Requirements:     nonNil(m.Requirements),
		Image:            m.Image,
		Featured:         m.Featured,
		CreatedAt:        m.CreatedAt.UTC(),
		UpdatedAt:        m.UpdatedAt.UTC(),
	}
}

func (r *EventRepository) toModel(e *entities.Event) *models.Event {
	return &models.Event{
		ID:               e.ID.Hex(),
		Title:            e.Title,
		Description:      e.Description,
		Date:             e.Date,
		Time:             e.Time,
		Venue:            e.Venue,
		Category:         string(e.Category),
		Status:           string(e.Status),
		MaxParticipants:  null.IntFromPtr(e.MaxParticipants),
		RegistrationLink: optionalString(e.RegistrationLink),
		Requirements:     nonNil(e.Requirements),
		Image:            e.Image,
		Featured:         e.Featured,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}
