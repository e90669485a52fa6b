package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"oysterkode.backend/internal/domain/entities"
	"oysterkode.backend/internal/interfaces/http/response"
	"oysterkode.backend/internal/metrics"
	"oysterkode.backend/internal/usecases"
)

// ContactHandler handles the public contact form
type ContactHandler struct {
	uc *usecases.ContactUsecase
}

func NewContactHandler(uc *usecases.ContactUsecase) *ContactHandler {
	return &ContactHandler{uc: uc}
}

// Submit stores a contact form message.
// POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var input entities.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, err)
		return
	}

	submission, err := h.uc.Submit(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	metrics.ContactSubmissionsTotal.Inc()
	response.Success(c, http.StatusCreated, submission)
}

// List returns submissions, newest first.
// GET /api/admin/contact-submissions
func (h *ContactHandler) List(c *gin.Context) {
	items, err := h.uc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}
