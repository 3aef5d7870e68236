package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	config *config.Config

	bookUC   *booking.BookAppointment
	cancelUC *booking.CancelAppointment
	getUC    *booking.GetAppointment
	listUC   *booking.ListAppointmentsByRange
}

func NewAppointmentHandler(
	cfg *config.Config,
	bookUC *booking.BookAppointment,
	cancelUC *booking.CancelAppointment,
	getUC *booking.GetAppointment,
	listUC *booking.ListAppointmentsByRange,
) *AppointmentHandler {
	return &AppointmentHandler{
		config:   cfg,
		bookUC:   bookUC,
		cancelUC: cancelUC,
		getUC:    getUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
	ServiceID       uint   `json:"service_id"`
	ClientName      string `json:"client_name"`
	ClientEmail     string `json:"client_email"`
	Notes           string `json:"notes"`
}

// ======================================================
// ERROR MAPPING
// ======================================================

// ValidationFailure → 422 com campo, NotFound → 404, ConflictFailure → 409,
// resto → 500 sem mascarar
func writeBookingError(c *gin.Context, err error) {
	if ve, ok := httperr.AsValidation(err); ok {
		httperr.UnprocessableField(c, ve.Field, ve.Message)
		return
	}

	if httperr.IsNotFound(err) {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	if httperr.IsConflict(err) {
		httperr.Conflict(c, "slot_taken", "O horário acabou de ser reservado por outra pessoa.")
		return
	}

	httperr.Internal(c, "internal_error", "Erro interno.")
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), booking.BookAppointmentInput{
		Date:        req.AppointmentDate,
		Time:        req.AppointmentTime,
		ServiceID:   req.ServiceID,
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		Notes:       req.Notes,
	})
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// GET
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.getUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), uint(id))
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// LIST (admin, intervalo inclusivo)
// ======================================================

func (h *AppointmentHandler) ListByRange(c *gin.Context) {
	startStr := c.Query("start_date")
	endStr := c.Query("end_date")

	if startStr == "" || endStr == "" {
		httperr.BadRequest(c, "missing_range", "start_date e end_date obrigatórios.")
		return
	}

	start, err := parseDate(h.config, startStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_start_date", "Data inicial inválida.")
		return
	}

	end, err := parseDate(h.config, endStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_end_date", "Data final inválida.")
		return
	}

	aps, err := h.listUC.Execute(c.Request.Context(), start, end)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"start_date":   startStr,
		"end_date":     endStr,
		"appointments": aps,
		"total":        len(aps),
	})
}
