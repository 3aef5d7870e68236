package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	config       *config.Config
	availability *booking.GetAvailability
}

func NewAvailabilityHandler(
	cfg *config.Config,
	availability *booking.GetAvailability,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		config:       cfg,
		availability: availability,
	}
}

// ======================================================
// GET /api/availability?date=YYYY-MM-DD&service_id=N
// ======================================================

func (h *AvailabilityHandler) GetSlots(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := parseDate(h.config, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	var serviceID uint
	if s := c.Query("service_id"); s != "" {
		id, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
			return
		}
		serviceID = uint(id)
	}

	slots, err := h.availability.Execute(c.Request.Context(), date, serviceID)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":        dateStr,
		"slots":       slots,
		"total_slots": len(slots),
	})
}

// ======================================================
// GET /api/availability/check?date=...&time=...&service_id=...
// ======================================================

func (h *AvailabilityHandler) CheckSlot(c *gin.Context) {
	dateStr := c.Query("date")
	timeStr := c.Query("time")
	serviceIDStr := c.Query("service_id")

	if dateStr == "" || timeStr == "" || serviceIDStr == "" {
		httperr.BadRequest(c, "missing_params", "Data, horário e serviço obrigatórios.")
		return
	}

	serviceID, err := strconv.ParseUint(serviceIDStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	date, err := parseDate(h.config, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	timeMin, err := schedule.ParseClock(timeStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_time", "Horário inválido (use HH:mm).")
		return
	}

	// consultar o passado não faz sentido — rejeitado como validação de data
	when := date.Add(time.Duration(timeMin) * time.Minute)
	if when.Before(timezone.NowIn(h.config.Timezone)) {
		httperr.UnprocessableField(c, "date", "Não é possível consultar datas e horários passados.")
		return
	}

	available, err := h.availability.IsSlotAvailable(
		c.Request.Context(),
		date,
		schedule.FormatClock(timeMin),
		uint(serviceID),
	)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Erro ao verificar horário.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":         dateStr,
		"time":         timeStr,
		"service_id":   serviceID,
		"is_available": available,
	})
}
