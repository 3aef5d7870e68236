package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	// Índice único composto: última linha de defesa contra double booking
	// concorrente. Vale para qualquer status — um horário cancelado não pode
	// ser recriado com o mesmo par (data, hora).
	AppointmentDate time.Time `gorm:"type:date;uniqueIndex:idx_appointments_date_time" json:"appointment_date"`
	AppointmentTime string    `gorm:"size:5;uniqueIndex:idx_appointments_date_time" json:"appointment_time"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	ClientName  string `gorm:"size:100" json:"client_name"`
	ClientEmail string `gorm:"size:100;not null" json:"client_email"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
