package models

import "time"

// Um dia pode ter várias janelas ativas (ex: manhã + tarde)
type WorkingHour struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DayOfWeek int `gorm:"index" json:"day_of_week"` // 0=domingo .. 6=sábado

	StartTime string `gorm:"size:5" json:"start_time"` // HH:mm
	EndTime   string `gorm:"size:5" json:"end_time"`   // HH:mm
	Active    bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
