package schedule

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Repository entrega ao motor coleções já filtradas e materializadas.
// O motor em si é função pura dos dados — nenhum predicado de ORM aqui.
type Repository interface {
	// -------- Working hours --------
	ActiveWindowsForDay(
		ctx context.Context,
		dayOfWeek int,
	) ([]models.WorkingHour, error)

	// -------- Services --------

	// serviceID = 0 lista todos os serviços ativos
	ActiveServices(
		ctx context.Context,
		serviceID uint,
	) ([]models.Service, error)

	ActiveService(
		ctx context.Context,
		serviceID uint,
	) (*models.Service, error)

	// -------- Appointments (leitura) --------
	ConfirmedAppointmentsForDate(
		ctx context.Context,
		date time.Time,
	) ([]models.Appointment, error)

	ConfirmedAppointmentsBetween(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// -------- Appointments (escrita) --------

	// CreateAppointment deve falhar de forma distinta (conflito) quando o
	// índice único (data, hora) for violado
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
