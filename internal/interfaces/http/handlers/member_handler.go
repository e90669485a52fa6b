package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"oysterkode.backend/internal/domain/entities"
	"oysterkode.backend/internal/interfaces/http/response"
	"oysterkode.backend/internal/usecases"
)

type MemberHandler struct {
	uc *usecases.MemberUsecase
}

func NewMemberHandler(uc *usecases.MemberUsecase) *MemberHandler {
	return &MemberHandler{uc: uc}
}

// ListPublic returns members, featured first then by name.
// GET /api/members
func (h *MemberHandler) ListPublic(c *gin.Context) {
	items, err := h.uc.ListPublic(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// List returns members for the admin panel.
// GET /api/admin/members?search=&department=&year=
func (h *MemberHandler) List(c *gin.Context) {
	items, err := h.uc.List(c.Request.Context(), entities.MemberFilter{
		Search:     c.Query("search"),
		Department: c.Query("department"),
		Year:       c.Query("year"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Create creates a member.
// POST /api/admin/members
func (h *MemberHandler) Create(c *gin.Context) {
	var input entities.MemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, err)
		return
	}

	member, err := h.uc.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, member)
}

// Update applies a partial update.
// PUT /api/admin/members?id=
func (h *MemberHandler) Update(c *gin.Context) {
	id, err := entities.ParseID(c.Query("id"), "member")
	if err != nil {
		response.Error(c, err)
		return
	}

	var patch entities.MemberPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, err)
		return
	}

	member, err := h.uc.Update(c.Request.Context(), id.Hex(), patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, member)
}

// Delete removes a member.
// DELETE /api/admin/members?id=
func (h *MemberHandler) Delete(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), c.Query("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Member deleted successfully")
}
