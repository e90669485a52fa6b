package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"oysterkode.backend/internal/domain/entities"
	"oysterkode.backend/internal/infrastructure/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, db.AutoMigrate(models.All()...), "migrate")
	return db
}

func intPtr(v int) *int {
	return &v
}

func sampleEvent(t *testing.T, title, date string, status entities.EventStatus) *entities.Event {
	t.Helper()
	e, err := entities.NewEvent(entities.EventInput{
		Title:       title,
		Description: title + " description",
		Date:        date,
		Time:        "10:00 AM",
		Venue:       "Main Hall",
		Category:    string(entities.EventCategoryWorkshop),
		Status:      string(status),
		Image:       "https://img.example/e.png",
	})
	require.NoError(t, err)
	return e
}

func sampleMember(t *testing.T, name, role string, featured bool) *entities.Member {
	t.Helper()
	m, err := entities.NewMember(entities.MemberInput{
		Name:       name,
		Role:       role,
		Department: "Computer Science",
		Year:       "3rd Year",
		Skills:     []string{"Go"},
		Image:      "https://img.example/m.png",
		Featured:   featured,
	})
	require.NoError(t, err)
	return m
}

func sampleProject(t *testing.T, title, category string, featured bool) *entities.Project {
	t.Helper()
	p, err := entities.NewProject(entities.ProjectInput{
		Title:        title,
		Description:  title + " description",
		Category:     category,
		Technologies: []string{"Go", "React"},
		Github:       "https://github.com/oysterkode/" + title,
		Image:        "https://img.example/p.png",
		Featured:     featured,
	})
	require.NoError(t, err)
	return p
}
