package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"oysterkode.backend/internal/domain/entities"
	"oysterkode.backend/internal/interfaces/http/response"
	"oysterkode.backend/internal/usecases"
)

type ProjectHandler struct {
	uc *usecases.ProjectUsecase
}

func NewProjectHandler(uc *usecases.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

// ListPublic returns projects, featured first then by title.
// GET /api/projects
func (h *ProjectHandler) ListPublic(c *gin.Context) {
	items, err := h.uc.ListPublic(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// List returns projects for the admin panel.
// GET /api/admin/projects?search=&category=
func (h *ProjectHandler) List(c *gin.Context) {
	items, err := h.uc.List(c.Request.Context(), entities.ProjectFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Create creates a project.
// POST /api/admin/projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var input entities.ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, err)
		return
	}

	project, err := h.uc.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, project)
}

// Update applies a partial update.
// PUT /api/admin/projects?id=
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := entities.ParseID(c.Query("id"), "project")
	if err != nil {
		response.Error(c, err)
		return
	}

	var patch entities.ProjectPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, err)
		return
	}

	project, err := h.uc.Update(c.Request.Context(), id.Hex(), patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, project)
}

// Delete removes a project.
// DELETE /api/admin/projects?id=
func (h *ProjectHandler) Delete(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), c.Query("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Project deleted successfully")
}
