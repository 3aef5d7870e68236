package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Working hours
// --------------------------------------------------

func (r *AppointmentGormRepository) ActiveWindowsForDay(
	ctx context.Context,
	dayOfWeek int,
) ([]models.WorkingHour, error) {

	var hours []models.WorkingHour
	if err := r.db.WithContext(ctx).
		Where("day_of_week = ? AND active = true", dayOfWeek).
		Order("start_time ASC").
		Find(&hours).Error; err != nil {
		return nil, err
	}

	return hours, nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *AppointmentGormRepository) ActiveServices(
	ctx context.Context,
	serviceID uint,
) ([]models.Service, error) {

	q := r.db.WithContext(ctx).Where("active = true")
	if serviceID != 0 {
		q = q.Where("id = ?", serviceID)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		return nil, err
	}

	return services, nil
}

func (r *AppointmentGormRepository) ActiveService(
	ctx context.Context,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = true", serviceID).
		First(&service).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("service")
		}
		return nil, err
	}

	return &service, nil
}

// --------------------------------------------------
// Appointments (leitura)
// --------------------------------------------------

func (r *AppointmentGormRepository) ConfirmedAppointmentsForDate(
	ctx context.Context,
	date time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"appointment_date = ? AND status = ?",
			date.Format("2006-01-02"), string(schedule.StatusConfirmed),
		).
		Order("appointment_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) ConfirmedAppointmentsBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"appointment_date BETWEEN ? AND ? AND status = ?",
			start.Format("2006-01-02"),
			end.Format("2006-01-02"),
			string(schedule.StatusConfirmed),
		).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Service").
		First(&ap, id).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrNotFound("appointment")
		}
		return nil, err
	}

	return &ap, nil
}

// --------------------------------------------------
// Appointments (escrita)
// --------------------------------------------------

// CreateAppointment confia no índice único (appointment_date,
// appointment_time) como mecanismo real de correção contra a corrida
// pré-check → INSERT. O índice só cobre início idêntico: serviços longos
// com inícios diferentes que se sobrepõem dependem apenas do pré-check.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Create(ap).Error
	if err != nil && httperr.IsUniqueViolation(err) {
		return httperr.ErrConflict("time_conflict")
	}

	return err
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// Compile-time check
var _ schedule.Repository = (*AppointmentGormRepository)(nil)
