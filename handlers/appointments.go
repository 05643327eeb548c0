package handlers

import (
	"net/http"
	"strconv"

	appointmentRepo "brightsmile/database/repository/appointment"
	"brightsmile/utils"

	"github.com/gin-gonic/gin"
)

// AppointmentsHandler exposes recent bookings for operator visibility.
type AppointmentsHandler struct {
	Repo appointmentRepo.AppointmentRepository
}

func NewAppointmentsHandler(repo appointmentRepo.AppointmentRepository) *AppointmentsHandler {
	return &AppointmentsHandler{Repo: repo}
}

// ListRecent returns the most recent appointments from the structured store.
func (h *AppointmentsHandler) ListRecent(c *gin.Context) {
	if h.Repo == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "database not configured",
			"Set DATABASE_URL to enable the appointments listing.")
		return
	}

	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if err != nil || limit <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid limit", c.Query("limit"))
		return
	}

	appts, err := h.Repo.ListRecent(c.Request.Context(), limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list appointments", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appts, "count": len(appts)})
}
