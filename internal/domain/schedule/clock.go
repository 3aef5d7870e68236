package schedule

import (
	"fmt"
	"time"
)

// Horário do dia em minutos desde a meia-noite. Toda a aritmética de
// janelas/slots acontece nessa representação.

func ParseClock(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func FormatClock(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}
