package booking

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type CancelAppointment struct {
	repo  schedule.Repository
	cache *cache.SlotCache
	audit AuditDispatcher
	tz    string
}

func NewCancelAppointment(
	repo schedule.Repository,
	slotCache *cache.SlotCache,
	audit AuditDispatcher,
	tz string,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		cache: slotCache,
		audit: audit,
		tz:    tz,
	}
}

// Execute: not-found é erro distinto; cancelar de novo é erro de validação.
// confirmed → cancelled é a única transição do estado.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)
	if err := schedule.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, ap.AppointmentDate)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
