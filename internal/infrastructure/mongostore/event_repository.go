package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"oysterkode.backend/internal/domain/entities"
)

// EventRepository implements repositories.EventRepository
type EventRepository struct {
	p Provider
}

// NewEventRepository creates a new event repository
func NewEventRepository(p Provider) *EventRepository {
	return &EventRepository{p: p}
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	coll, err := collection(ctx, r.p, EventsCollection)
	if err != nil {
		return err
	}
	_, err = coll.InsertOne(ctx, toEventDocument(event))
	return err
}

func (r *EventRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entities.Event, error) {
	coll, err := collection(ctx, r.p, EventsCollection)
	if err != nil {
		return nil, err
	}
	var doc eventDocument
	if err := findOne(ctx, coll, bson.M{"_id": id}, &doc); err != nil {
		return nil, err
	}
	return doc.toEntity(), nil
}

func (r *EventRepository) List(ctx context.Context, filter entities.EventFilter) ([]*entities.Event, error) {
	coll, err := collection(ctx, r.p, EventsCollection)
	if err != nil {
		return nil, err
	}
	docs, err := list[eventDocument](ctx, coll, eventQuery(filter), eventSort(filter.Sort))
	if err != nil {
		return nil, err
	}
	items := make([]*entities.Event, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toEntity())
	}
	return items, nil
}

func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	coll, err := collection(ctx, r.p, EventsCollection)
	if err != nil {
		return err
	}
	return replaceByID(ctx, coll, event.ID, toEventDocument(event))
}

func (r *EventRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	coll, err := collection(ctx, r.p, EventsCollection)
	if err != nil {
		return err
	}
	return deleteByID(ctx, coll, id)
}

func (r *EventRepository) Count(ctx context.Context) (int64, error) {
	coll, err := collection(ctx, r.p, EventsCollection)
	if err != nil {
		return 0, err
	}
	return coll.CountDocuments(ctx, bson.M{})
}

// MarkPastAsCompleted flips upcoming events dated before the cutoff to completed.
func (r *EventRepository) MarkPastAsCompleted(ctx context.Context, before time.Time) (int64, error) {
	coll, err := collection(ctx, r.p, EventsCollection)
	if err != nil {
		return 0, err
	}
	res, err := coll.UpdateMany(ctx,
		bson.M{"status": string(entities.EventStatusUpcoming), "date": bson.M{"$lt": before}},
		bson.M{"$set": bson.M{
			"status":    string(entities.EventStatusCompleted),
			"updatedAt": time.Now().UTC(),
		}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
