package schedule

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// CanCancel define se um agendamento pode ser cancelado.
// cancelled é terminal: cancelar de novo é erro de domínio, não no-op.
func CanCancel(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrValidation("appointment", "agendamento já está cancelado")
	}
	return nil
}

func InitialStatus() Status {
	return StatusConfirmed
}

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}
