package usecases

import (
	"context"
	"errors"

	"oysterkode.backend/internal/domain/entities"
	domainerrors "oysterkode.backend/internal/domain/errors"
	"oysterkode.backend/internal/domain/repositories"
)

// EventUsecase handles event management
type EventUsecase struct {
	repo repositories.EventRepository
}

// NewEventUsecase creates a new event usecase
func NewEventUsecase(repo repositories.EventRepository) *EventUsecase {
	return &EventUsecase{repo: repo}
}

// List returns events for the admin panel, ascending by date.
func (u *EventUsecase) List(ctx context.Context, filter entities.EventFilter) ([]*entities.Event, error) {
	filter.Sort = entities.SortAdmin
	return u.repo.List(ctx, filter)
}

// ListPublic returns every event, newest first.
func (u *EventUsecase) ListPublic(ctx context.Context) ([]*entities.Event, error) {
	return u.repo.List(ctx, entities.EventFilter{Sort: entities.SortPublic})
}

func (u *EventUsecase) Create(ctx context.Context, input entities.EventInput) (*entities.Event, error) {
	event, err := entities.NewEvent(input)
	if err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (u *EventUsecase) Update(ctx context.Context, rawID string, patch entities.EventPatch) (*entities.Event, error) {
	id, err := entities.ParseID(rawID, "event")
	if err != nil {
		return nil, err
	}

	event, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, eventNotFound(err)
	}
	if err := patch.Apply(event); err != nil {
		return nil, err
	}
	if err := u.repo.Update(ctx, event); err != nil {
		return nil, eventNotFound(err)
	}
	return event, nil
}

func (u *EventUsecase) Delete(ctx context.Context, rawID string) error {
	id, err := entities.ParseID(rawID, "event")
	if err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		return eventNotFound(err)
	}
	return nil
}

func eventNotFound(err error) error {
	if errors.Is(err, domainerrors.ErrNotFound) {
		return domainerrors.NotFound("Event not found")
	}
	return err
}
