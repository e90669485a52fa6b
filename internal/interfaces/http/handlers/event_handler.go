package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"oysterkode.backend/internal/domain/entities"
	"oysterkode.backend/internal/interfaces/http/response"
	"oysterkode.backend/internal/usecases"
)

type EventHandler struct {
	uc *usecases.EventUsecase
}

func NewEventHandler(uc *usecases.EventUsecase) *EventHandler {
	return &EventHandler{uc: uc}
}

// ListPublic returns all events, newest first.
// GET /api/events
func (h *EventHandler) ListPublic(c *gin.Context) {
	items, err := h.uc.ListPublic(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// List returns events for the admin panel.
// GET /api/admin/events?search=&category=&status=
func (h *EventHandler) List(c *gin.Context) {
	items, err := h.uc.List(c.Request.Context(), entities.EventFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Status:   c.Query("status"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Create creates an event.
// POST /api/admin/events
func (h *EventHandler) Create(c *gin.Context) {
	var input entities.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, err)
		return
	}

	event, err := h.uc.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, event)
}

// Update applies a partial update.
// PUT /api/admin/events?id=
func (h *EventHandler) Update(c *gin.Context) {
	id, err := entities.ParseID(c.Query("id"), "event")
	if err != nil {
		response.Error(c, err)
		return
	}

	var patch entities.EventPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, err)
		return
	}

	event, err := h.uc.Update(c.Request.Context(), id.Hex(), patch)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, event)
}

// Delete removes an event.
// DELETE /api/admin/events?id=
func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.uc.Delete(c.Request.Context(), c.Query("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Event deleted successfully")
}
