package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"oysterkode.backend/internal/domain/entities"
	"oysterkode.backend/internal/usecases"
)

func newMemberRouter(repo *memberRepoStub) *gin.Engine {
	h := NewMemberHandler(usecases.NewMemberUsecase(repo))
	r := gin.New()
	r.GET("/api/members", h.ListPublic)
	r.GET("/api/admin/members", h.List)
	r.POST("/api/admin/members", h.Create)
	r.PUT("/api/admin/members", h.Update)
	r.DELETE("/api/admin/members", h.Delete)
	return r
}

func newProjectRouter(repo *projectRepoStub) *gin.Engine {
	h := NewProjectHandler(usecases.NewProjectUsecase(repo))
	r := gin.New()
	r.GET("/api/projects", h.ListPublic)
	r.GET("/api/admin/projects", h.List)
	r.POST("/api/admin/projects", h.Create)
	r.PUT("/api/admin/projects", h.Update)
	r.DELETE("/api/admin/projects", h.Delete)
	return r
}

func TestMemberHandler_CRUD(t *testing.T) {
	repo := newMemberRepoStub()
	r := newMemberRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/admin/members", map[string]interface{}{
		"name":       "Ada",
		"role":       "President",
		"department": "CSE",
		"year":       "3rd",
		"skills":     []string{"Go", "SQL"},
		"image":      "ada.png",
		"featured":   true,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]interface{}](t, w)
	id := created["_id"].(string)
	assert.Equal(t, true, created["featured"])

	w = doJSON(t, r, http.MethodGet, "/api/admin/members?search=ada&department=CSE&year=3rd", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entities.MemberFilter{Search: "ada", Department: "CSE", Year: "3rd"}, repo.lastFilter)

	w = doJSON(t, r, http.MethodGet, "/api/members", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]map[string]interface{}](t, w), 1)
	assert.Equal(t, entities.MemberFilter{}, repo.lastFilter)

	w = doJSON(t, r, http.MethodPut, "/api/admin/members?id="+id, map[string]interface{}{"role": "Advisor"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Advisor", decode[map[string]interface{}](t, w)["role"])

	w = doJSON(t, r, http.MethodDelete, "/api/admin/members?id="+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Member deleted successfully", decode[map[string]string](t, w)["message"])
}

func TestMemberHandler_Errors(t *testing.T) {
	r := newMemberRouter(newMemberRepoStub())

	w := doJSON(t, r, http.MethodPost, "/api/admin/members", map[string]interface{}{"name": "Ada"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[map[string]string](t, w)["message"], "role is required")

	w = doJSON(t, r, http.MethodPut, "/api/admin/members?id=123", map[string]interface{}{"role": "x"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid member ID", decode[map[string]string](t, w)["message"])

	w = doJSON(t, r, http.MethodDelete, "/api/admin/members?id="+primitive.NewObjectID().Hex(), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Member not found", decode[map[string]string](t, w)["message"])
}

func TestProjectHandler_CRUD(t *testing.T) {
	repo := newProjectRepoStub()
	r := newProjectRouter(repo)

	w := doJSON(t, r, http.MethodPost, "/api/admin/projects", map[string]interface{}{
		"title":        "Club Site",
		"description":  "This website",
		"category":     "Web Development",
		"technologies": []string{"Go", "React"},
		"github":       "https://github.com/example/site",
		"image":        "site.png",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	id := decode[map[string]interface{}](t, w)["_id"].(string)

	w = doJSON(t, r, http.MethodGet, "/api/admin/projects?search=site&category=Backend", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entities.ProjectFilter{Search: "site", Category: "Backend"}, repo.lastFilter)

	w = doJSON(t, r, http.MethodPut, "/api/admin/projects?id="+id, map[string]interface{}{"technologies": []string{}})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode[map[string]string](t, w)["message"], "technologies must contain at least 1 item(s)")

	w = doJSON(t, r, http.MethodPut, "/api/admin/projects?id="+id, map[string]interface{}{"featured": true})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode[map[string]interface{}](t, w)["featured"])

	w = doJSON(t, r, http.MethodDelete, "/api/admin/projects?id="+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Project deleted successfully", decode[map[string]string](t, w)["message"])

	w = doJSON(t, r, http.MethodGet, "/api/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestProjectHandler_CategoryValidation(t *testing.T) {
	r := newProjectRouter(newProjectRepoStub())

	w := doJSON(t, r, http.MethodPost, "/api/admin/projects", map[string]interface{}{
		"title":        "Robot",
		"description":  "Arm",
		"category":     "Hardware",
		"technologies": []string{"C"},
		"github":       "https://github.com/example/robot",
		"image":        "robot.png",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t,
		"category must be one of: Web Development, Mobile Apps, AI/ML, Backend",
		decode[map[string]string](t, w)["message"])
}
