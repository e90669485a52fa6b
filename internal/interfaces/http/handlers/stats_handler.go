package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"oysterkode.backend/internal/interfaces/http/response"
	"oysterkode.backend/internal/usecases"
)

type StatsHandler struct {
	uc *usecases.StatsUsecase
}

func NewStatsHandler(uc *usecases.StatsUsecase) *StatsHandler {
	return &StatsHandler{uc: uc}
}

// Dashboard returns collection counts for the admin overview.
// GET /api/admin/stats
func (h *StatsHandler) Dashboard(c *gin.Context) {
	stats, err := h.uc.Dashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}
