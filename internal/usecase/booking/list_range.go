package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type ListAppointmentsByRange struct {
	repo schedule.Repository
}

func NewListAppointmentsByRange(repo schedule.Repository) *ListAppointmentsByRange {
	return &ListAppointmentsByRange{repo: repo}
}

// Execute lista apenas confirmados, intervalo inclusivo nas duas pontas,
// ordenado por (data, hora) ascendente
func (uc *ListAppointmentsByRange) Execute(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	if end.Before(start) {
		return nil, httperr.ErrValidation("end_date", "período inválido")
	}

	return uc.repo.ConfirmedAppointmentsBetween(ctx, start, end)
}
