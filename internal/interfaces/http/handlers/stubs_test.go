package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"oysterkode.backend/internal/domain/entities"
	domainerrors "oysterkode.backend/internal/domain/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type eventRepoStub struct {
	items      map[primitive.ObjectID]*entities.Event
	lastFilter entities.EventFilter
	listErr    error
}

func newEventRepoStub() *eventRepoStub {
	return &eventRepoStub{items: map[primitive.ObjectID]*entities.Event{}}
}

func (s *eventRepoStub) Create(_ context.Context, e *entities.Event) error {
	s.items[e.ID] = e
	return nil
}

func (s *eventRepoStub) GetByID(_ context.Context, id primitive.ObjectID) (*entities.Event, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (s *eventRepoStub) List(_ context.Context, filter entities.EventFilter) ([]*entities.Event, error) {
	s.lastFilter = filter
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]*entities.Event, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	return out, nil
}

func (s *eventRepoStub) Update(_ context.Context, e *entities.Event) error {
	if _, ok := s.items[e.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.items[e.ID] = e
	return nil
}

func (s *eventRepoStub) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *eventRepoStub) Count(_ context.Context) (int64, error) {
	return int64(len(s.items)), nil
}

func (s *eventRepoStub) MarkPastAsCompleted(_ context.Context, before time.Time) (int64, error) {
	var n int64
	for _, item := range s.items {
		if item.Status == entities.EventStatusUpcoming && item.Date.Before(before) {
			item.Status = entities.EventStatusCompleted
			n++
		}
	}
	return n, nil
}

type memberRepoStub struct {
	items      map[primitive.ObjectID]*entities.Member
	lastFilter entities.MemberFilter
}

func newMemberRepoStub() *memberRepoStub {
	return &memberRepoStub{items: map[primitive.ObjectID]*entities.Member{}}
}

func (s *memberRepoStub) Create(_ context.Context, m *entities.Member) error {
	s.items[m.ID] = m
	return nil
}

func (s *memberRepoStub) GetByID(_ context.Context, id primitive.ObjectID) (*entities.Member, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (s *memberRepoStub) List(_ context.Context, filter entities.MemberFilter) ([]*entities.Member, error) {
	s.lastFilter = filter
	out := make([]*entities.Member, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	return out, nil
}

func (s *memberRepoStub) Update(_ context.Context, m *entities.Member) error {
	if _, ok := s.items[m.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.items[m.ID] = m
	return nil
}

func (s *memberRepoStub) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *memberRepoStub) Count(_ context.Context) (int64, error) {
	return int64(len(s.items)), nil
}

type projectRepoStub struct {
	items      map[primitive.ObjectID]*entities.Project
	lastFilter entities.ProjectFilter
}

func newProjectRepoStub() *projectRepoStub {
	return &projectRepoStub{items: map[primitive.ObjectID]*entities.Project{}}
}

func (s *projectRepoStub) Create(_ context.Context, p *entities.Project) error {
	s.items[p.ID] = p
	return nil
}

func (s *projectRepoStub) GetByID(_ context.Context, id primitive.ObjectID) (*entities.Project, error) {
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (s *projectRepoStub) List(_ context.Context, filter entities.ProjectFilter) ([]*entities.Project, error) {
	s.lastFilter = filter
	out := make([]*entities.Project, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	return out, nil
}

func (s *projectRepoStub) Update(_ context.Context, p *entities.Project) error {
	if _, ok := s.items[p.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.items[p.ID] = p
	return nil
}

func (s *projectRepoStub) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := s.items[id]; !ok {
		return domainerrors.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *projectRepoStub) Count(_ context.Context) (int64, error) {
	return int64(len(s.items)), nil
}

type contactRepoStub struct {
	items []*entities.ContactSubmission
}

func (s *contactRepoStub) Create(_ context.Context, sub *entities.ContactSubmission) error {
	s.items = append(s.items, sub)
	return nil
}

func (s *contactRepoStub) List(_ context.Context) ([]*entities.ContactSubmission, error) {
	out := make([]*entities.ContactSubmission, 0, len(s.items))
	for i := len(s.items) - 1; i >= 0; i-- {
		out = append(out, s.items[i])
	}
	return out, nil
}

func (s *contactRepoStub) Count(_ context.Context, status entities.ContactStatus) (int64, error) {
	var n int64
	for _, item := range s.items {
		if status == "" || item.Status == status {
			n++
		}
	}
	return n, nil
}

type adminRepoStub struct {
	mu    sync.Mutex
	items map[primitive.ObjectID]*entities.Admin
}

func newAdminRepoStub(admins ...*entities.Admin) *adminRepoStub {
	s := &adminRepoStub{items: map[primitive.ObjectID]*entities.Admin{}}
	for _, a := range admins {
		s.items[a.ID] = a
	}
	return s
}

func (s *adminRepoStub) Create(_ context.Context, a *entities.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.Username == a.Username {
			return domainerrors.ErrAlreadyExists
		}
	}
	s.items[a.ID] = a
	return nil
}

func (s *adminRepoStub) GetByID(_ context.Context, id primitive.ObjectID) (*entities.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (s *adminRepoStub) GetByUsername(_ context.Context, username string) (*entities.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.Username == username {
			cp := *item
			return &cp, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *adminRepoStub) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.items)), nil
}

func (s *adminRepoStub) UpdatePassword(_ context.Context, id primitive.ObjectID, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	item.PasswordHash = hash
	return nil
}

func doJSON(t *testing.T, r http.Handler, method, target string, body interface{}, header ...string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
