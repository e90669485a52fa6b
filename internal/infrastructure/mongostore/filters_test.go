package mongostore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"oysterkode.backend/internal/domain/entities"
)

func TestEventQuery(t *testing.T) {
	assert.Empty(t, eventQuery(entities.EventFilter{Search: "  "}))

	q := eventQuery(entities.EventFilter{Search: "c++ (intro)", Category: "workshop", Status: "upcoming"})
	assert.Equal(t, "workshop", q["category"])
	assert.Equal(t, "upcoming", q["status"])

	or, ok := q["$or"].(bson.A)
	require.True(t, ok)
	require.Len(t, or, 3)
	assert.Equal(t, bson.M{"title": primitive.Regex{Pattern: `c\+\+ \(intro\)`, Options: "i"}}, or[0])
	assert.Equal(t, bson.M{"venue": primitive.Regex{Pattern: `c\+\+ \(intro\)`, Options: "i"}}, or[2])
}

func TestEventSort(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}}, eventSort(entities.SortAdmin))
	assert.Equal(t, bson.D{{Key: "date", Value: -1}, {Key: "time", Value: -1}}, eventSort(entities.SortPublic))
}

func TestMemberAndProjectQuery(t *testing.T) {
	q := memberQuery(entities.MemberFilter{Search: "lead", Department: "CS", Year: "2nd Year"})
	assert.Equal(t, "CS", q["department"])
	assert.Equal(t, "2nd Year", q["year"])
	assert.Len(t, q["$or"], 2)

	q = projectQuery(entities.ProjectFilter{Category: "AI/ML"})
	assert.Equal(t, bson.M{"category": "AI/ML"}, q)
}
