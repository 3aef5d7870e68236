package booking

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type GetAppointment struct {
	repo schedule.Repository
}

func NewGetAppointment(repo schedule.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {
	return uc.repo.GetAppointment(ctx, appointmentID)
}
