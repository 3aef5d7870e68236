package handlers

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// parseDate interpreta YYYY-MM-DD no fuso configurado do calendário
func parseDate(cfg *config.Config, s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, timezone.Location(cfg.Timezone))
}
