package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type WorkingHoursHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewWorkingHoursHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db, audit: auditDispatcher}
}

// Um dia pode aparecer mais de uma vez (várias janelas)
type WorkingWindowConfig struct {
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	Active    bool   `json:"active"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type WorkingHoursUpdateRequest struct {
	Windows []WorkingWindowConfig `json:"windows" binding:"required"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	var hours []models.WorkingHour
	if err := h.db.
		Order("day_of_week ASC, start_time ASC").
		Find(&hours).Error; err != nil {

		httperr.Internal(c, "failed_to_get_working_hours", "Erro ao buscar expediente.")
		return
	}

	httpresp.List(c, hours)
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var toCreate []models.WorkingHour
	for _, w := range req.Windows {
		startMin, err := schedule.ParseClock(w.StartTime)
		if err != nil {
			httperr.UnprocessableField(c, "start_time", "Horário inválido (use HH:mm).")
			return
		}
		endMin, err := schedule.ParseClock(w.EndTime)
		if err != nil {
			httperr.UnprocessableField(c, "end_time", "Horário inválido (use HH:mm).")
			return
		}
		if endMin <= startMin {
			httperr.UnprocessableField(c, "end_time", "Fim deve ser depois do início.")
			return
		}

		toCreate = append(toCreate, models.WorkingHour{
			DayOfWeek: w.DayOfWeek,
			Active:    w.Active,
			StartTime: schedule.FormatClock(startMin),
			EndTime:   schedule.FormatClock(endMin),
		})
	}

	// substituição total, como o frontend envia a grade inteira
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.WorkingHour{}).Error; err != nil {
			return err
		}

		if len(toCreate) > 0 {
			if err := tx.Create(&toCreate).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		httperr.Internal(c, "failed_to_save_working_hours", "Erro ao salvar expediente.")
		return
	}

	writeAudit(c, h.audit, "working_hours_replaced", "working_hour", nil, map[string]any{
		"windows": len(toCreate),
	})

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
