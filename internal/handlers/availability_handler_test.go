package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/booking"
)

const testTZ = "America/Sao_Paulo"

// calendarStub responde 09:00-17:00 todos os dias com um único serviço
type calendarStub struct{}

func (calendarStub) ActiveWindowsForDay(_ context.Context, dayOfWeek int) ([]models.WorkingHour, error) {
	return []models.WorkingHour{
		{ID: 1, DayOfWeek: dayOfWeek, StartTime: "09:00", EndTime: "17:00", Active: true},
	}, nil
}

func (calendarStub) ActiveServices(_ context.Context, serviceID uint) ([]models.Service, error) {
	if serviceID != 0 && serviceID != 1 {
		return nil, nil
	}
	return []models.Service{
		{ID: 1, Name: "Corte", DurationMinutes: 30, Price: 50, Active: true},
	}, nil
}

func (calendarStub) ActiveService(_ context.Context, serviceID uint) (*models.Service, error) {
	if serviceID != 1 {
		return nil, httperr.ErrNotFound("service")
	}
	return &models.Service{ID: 1, Name: "Corte", DurationMinutes: 30, Price: 50, Active: true}, nil
}

func (calendarStub) ConfirmedAppointmentsForDate(_ context.Context, _ time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (calendarStub) ConfirmedAppointmentsBetween(_ context.Context, _, _ time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (calendarStub) GetAppointment(_ context.Context, _ uint) (*models.Appointment, error) {
	return nil, httperr.ErrNotFound("appointment")
}

func (calendarStub) CreateAppointment(_ context.Context, _ *models.Appointment) error { return nil }

func (calendarStub) UpdateAppointment(_ context.Context, _ *models.Appointment) error { return nil }

func newCheckSlotRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{Timezone: testTZ}
	availability := booking.NewGetAvailability(calendarStub{}, nil)
	h := NewAvailabilityHandler(cfg, availability)

	r := gin.New()
	r.GET("/api/availability/check", h.CheckSlot)
	return r
}

func checkSlot(r *gin.Engine, query string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability/check?"+query, nil)
	r.ServeHTTP(w, req)
	return w
}

func futureDay(days int) string {
	loc := timezone.Location(testTZ)
	return time.Now().In(loc).AddDate(0, 0, days).Format("2006-01-02")
}

func TestCheckSlotRejectsMalformedDate(t *testing.T) {
	r := newCheckSlotRouter()

	// datas quebradas não podem passar pela checagem de passado
	for _, date := range []string{"2026-13-40", "40/01/2026", "amanhã"} {
		w := checkSlot(r, "date="+date+"&time=10:00&service_id=1")
		if w.Code != http.StatusBadRequest {
			t.Errorf("date %q: expected 400, got %d (%s)", date, w.Code, w.Body.String())
		}
	}
}

func TestCheckSlotRejectsMalformedTime(t *testing.T) {
	r := newCheckSlotRouter()

	w := checkSlot(r, "date="+futureDay(3)+"&time=25:99&service_id=1")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed time, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestCheckSlotRejectsPastDateTime(t *testing.T) {
	r := newCheckSlotRouter()

	w := checkSlot(r, "date=2020-01-06&time=10:00&service_id=1")
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 for past datetime, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestCheckSlotReportsAvailability(t *testing.T) {
	r := newCheckSlotRouter()

	w := checkSlot(r, "date="+futureDay(3)+"&time=10:00&service_id=1")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}

	var body struct {
		IsAvailable bool `json:"is_available"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if !body.IsAvailable {
		t.Error("an in-window slot with no appointments must be available")
	}
}
