package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"oysterkode.backend/internal/domain/entities"
	domainerrors "oysterkode.backend/internal/domain/errors"
)

func titles(events []*entities.Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Title)
	}
	return out
}

func TestEventRepository_CreateGetRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	event := sampleEvent(t, "Go Workshop", "2025-03-01", entities.EventStatusUpcoming)
	event.MaxParticipants = intPtr(40)
	event.Requirements = []string{"Laptop"}
	require.NoError(t, repo.Create(ctx, event))

	got, err := repo.GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go Workshop", got.Title)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), got.Date)
	require.NotNil(t, got.MaxParticipants)
	assert.Equal(t, 40, *got.MaxParticipants)
	assert.Equal(t, []string{"Laptop"}, got.Requirements)
	assert.Empty(t, got.RegistrationLink)
}

func TestEventRepository_ListSortAndFilter(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	late := sampleEvent(t, "Hack Night", "2025-05-10", entities.EventStatusUpcoming)
	late.Category = entities.EventCategoryHackathon
	early := sampleEvent(t, "Intro Seminar", "2025-01-15", entities.EventStatusCompleted)
	early.Venue = "Lab 4"
	mid := sampleEvent(t, "Go Workshop", "2025-03-01", entities.EventStatusUpcoming)
	for _, e := range []*entities.Event{late, early, mid} {
		require.NoError(t, repo.Create(ctx, e))
	}

	items, err := repo.List(ctx, entities.EventFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"Intro Seminar", "Go Workshop", "Hack Night"}, titles(items))

	items, err = repo.List(ctx, entities.EventFilter{Sort: entities.SortPublic})
	require.NoError(t, err)
	assert.Equal(t, []string{"Hack Night", "Go Workshop", "Intro Seminar"}, titles(items))

	items, err = repo.List(ctx, entities.EventFilter{Search: "LAB"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Intro Seminar"}, titles(items))

	items, err = repo.List(ctx, entities.EventFilter{Category: "hackathon"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Hack Night"}, titles(items))

	items, err = repo.List(ctx, entities.EventFilter{Status: "upcoming", Search: "go"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Go Workshop"}, titles(items))
}

func TestEventRepository_SearchEscapesWildcards(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleEvent(t, "Plain", "2025-01-01", entities.EventStatusUpcoming)))
	require.NoError(t, repo.Create(ctx, sampleEvent(t, "100% Uptime", "2025-01-02", entities.EventStatusUpcoming)))

	items, err := repo.List(ctx, entities.EventFilter{Search: "%"})
	require.NoError(t, err)
	assert.Equal(t, []string{"100% Uptime"}, titles(items))
}

func TestEventRepository_UpdateDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	event := sampleEvent(t, "Go Workshop", "2025-03-01", entities.EventStatusUpcoming)
	event.Featured = true
	require.NoError(t, repo.Create(ctx, event))

	event.Venue = "Auditorium"
	event.Featured = false
	require.NoError(t, repo.Update(ctx, event))

	got, err := repo.GetByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Auditorium", got.Venue)
	assert.False(t, got.Featured)

	require.NoError(t, repo.Delete(ctx, event.ID))
	assert.ErrorIs(t, repo.Delete(ctx, event.ID), domainerrors.ErrNotFound)

	_, err = repo.GetByID(ctx, event.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	ghost := sampleEvent(t, "Ghost", "2025-01-01", entities.EventStatusUpcoming)
	ghost.ID = primitive.NewObjectID()
	assert.ErrorIs(t, repo.Update(ctx, ghost), domainerrors.ErrNotFound)
}

func TestEventRepository_MarkPastAsCompleted(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()

	past := sampleEvent(t, "Past", "2024-01-01", entities.EventStatusUpcoming)
	cancelled := sampleEvent(t, "Cancelled", "2024-01-01", entities.EventStatusCancelled)
	future := sampleEvent(t, "Future", "2030-01-01", entities.EventStatusUpcoming)
	for _, e := range []*entities.Event{past, cancelled, future} {
		require.NoError(t, repo.Create(ctx, e))
	}

	n, err := repo.MarkPastAsCompleted(ctx, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	got, err := repo.GetByID(ctx, past.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.EventStatusCompleted, got.Status)

	got, err = repo.GetByID(ctx, cancelled.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.EventStatusCancelled, got.Status)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}
