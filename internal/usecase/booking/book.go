package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	Date string // YYYY-MM-DD
	Time string // HH:mm

	ServiceID uint

	ClientName  string // informativo, não participa do check de slot
	ClientEmail string
	Notes       string
}

// ======================================================
// USE CASE
// ======================================================

// AuditDispatcher é o que os use cases precisam do audit assíncrono
type AuditDispatcher interface {
	Dispatch(ev audit.Event)
}

type BookAppointment struct {
	repo         schedule.Repository
	availability *GetAvailability
	cache        *cache.SlotCache
	audit        AuditDispatcher
	tz           string
}

func NewBookAppointment(
	repo schedule.Repository,
	availability *GetAvailability,
	slotCache *cache.SlotCache,
	audit AuditDispatcher,
	tz string,
) *BookAppointment {
	return &BookAppointment{
		repo:         repo,
		availability: availability,
		cache:        slotCache,
		audit:        audit,
		tz:           tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute valida na ordem: data futura → serviço ativo → e-mail →
// campos obrigatórios → slot disponível. A primeira falha vence.
// O índice único (data, hora) no storage é quem decide a corrida entre o
// pré-check e o INSERT — aqui o conflito só é traduzido, nunca re-tentado.
func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	loc := timezone.Location(uc.tz)

	// --------------------------------------------------
	// 1️⃣ Data não pode estar no passado
	// --------------------------------------------------
	if in.Date == "" {
		return nil, httperr.ErrValidation("appointment_date", "data é obrigatória")
	}

	date, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrValidation("appointment_date", "data inválida")
	}

	now := timezone.NowIn(uc.tz)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	if date.Before(today) {
		return nil, httperr.ErrValidation("appointment_date", "não é possível agendar em datas passadas")
	}

	// --------------------------------------------------
	// 2️⃣ Serviço existe e está ativo
	// --------------------------------------------------
	if in.ServiceID == 0 {
		return nil, httperr.ErrValidation("service_id", "serviço é obrigatório")
	}

	service, err := uc.repo.ActiveService(ctx, in.ServiceID)
	if err != nil || service == nil {
		return nil, httperr.ErrValidation("service_id", "serviço indisponível")
	}

	// --------------------------------------------------
	// 3️⃣ E-mail bem formado
	// --------------------------------------------------
	if !validators.IsValidEmail(in.ClientEmail) {
		return nil, httperr.ErrValidation("client_email", "e-mail inválido")
	}

	// --------------------------------------------------
	// 4️⃣ Campos obrigatórios restantes
	// --------------------------------------------------
	if in.Time == "" {
		return nil, httperr.ErrValidation("appointment_time", "horário é obrigatório")
	}

	timeMin, err := schedule.ParseClock(in.Time)
	if err != nil {
		return nil, httperr.ErrValidation("appointment_time", "horário inválido")
	}
	timeOfDay := schedule.FormatClock(timeMin)

	// --------------------------------------------------
	// 5️⃣ Re-valida disponibilidade (mensagem boa no caso comum)
	// --------------------------------------------------
	available, err := uc.availability.IsSlotAvailable(ctx, date, timeOfDay, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, httperr.ErrValidation("appointment_time", "o horário selecionado não está disponível")
	}

	// --------------------------------------------------
	// 6️⃣ Criação atômica — 23505 vira conflito
	// --------------------------------------------------
	ap := &models.Appointment{
		Reference:       uuid.NewString(),
		AppointmentDate: date,
		AppointmentTime: timeOfDay,
		ServiceID:       service.ID,
		ClientName:      in.ClientName,
		ClientEmail:     in.ClientEmail,
		Status:          string(schedule.InitialStatus()),
		Notes:           in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsUniqueViolation(err) || httperr.IsConflict(err) {
			uc.audit.Dispatch(audit.Event{
				Action:   "appointment_conflict",
				Entity:   "appointment",
				Metadata: map[string]any{"date": in.Date, "time": timeOfDay, "service_id": in.ServiceID},
			})
			return nil, httperr.ErrConflict("o horário acabou de ser reservado")
		}
		return nil, err
	}

	ap.Service = *service

	uc.cache.Invalidate(ctx, date)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
