package api

import (
	"net/http"

	resdto "atelier-store/internal/handler/dto/response"
	"atelier-store/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SweepHandler struct {
	sweepCommands commands.SweepCommands
}

func NewSweepHandler(sweepCommands commands.SweepCommands) *SweepHandler {
	return &SweepHandler{
		sweepCommands: sweepCommands,
	}
}

// @Summary Trigger expiry sweep
// @Description Force-expire lapsed holds; invoked on a timer by the hosting platform
// @Tags internal
// @Produce json
// @Success 200 {object} resdto.SweepResponse
// @Router /internal/sweep [post]
func (h *SweepHandler) Trigger(c *gin.Context) {
	summary, err := h.sweepCommands.Run(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSweepSummary(summary))
}
