package booking

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/cache"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
)

type GetAvailability struct {
	repo  schedule.Repository
	cache *cache.SlotCache
}

func NewGetAvailability(
	repo schedule.Repository,
	slotCache *cache.SlotCache,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		cache: slotCache,
	}
}

// Execute monta a coleção de slots rotulados de um dia.
// serviceID = 0 considera todos os serviços ativos.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date time.Time,
	serviceID uint,
) ([]schedule.SlotResponse, error) {

	if slots, ok := uc.cache.Get(ctx, date, serviceID); ok {
		return slots, nil
	}

	// --------------------------------------------------
	// 1️⃣ Janelas de expediente do dia (zero ou mais)
	// --------------------------------------------------
	dayOfWeek := int(date.Weekday())

	hours, err := uc.repo.ActiveWindowsForDay(ctx, dayOfWeek)
	if err != nil {
		return nil, err
	}

	if len(hours) == 0 {
		// dia fechado, não é erro
		return []schedule.SlotResponse{}, nil
	}

	windows := make([]schedule.Window, 0, len(hours))
	for _, wh := range hours {
		startMin, err := schedule.ParseClock(wh.StartTime)
		if err != nil {
			continue
		}
		endMin, err := schedule.ParseClock(wh.EndTime)
		if err != nil {
			continue
		}
		windows = append(windows, schedule.Window{
			StartMin: startMin,
			EndMin:   endMin,
		})
	}

	// --------------------------------------------------
	// 2️⃣ Serviços ativos (um ou todos)
	// --------------------------------------------------
	services, err := uc.repo.ActiveServices(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if len(services) == 0 {
		return []schedule.SlotResponse{}, nil
	}

	specs := make([]schedule.ServiceSpec, 0, len(services))
	for _, svc := range services {
		specs = append(specs, schedule.ServiceSpec{
			ID:          svc.ID,
			Name:        svc.Name,
			DurationMin: svc.DurationMinutes,
			Price:       svc.Price,
		})
	}

	// --------------------------------------------------
	// 3️⃣ Agendamentos confirmados do dia
	// --------------------------------------------------
	appointments, err := uc.repo.ConfirmedAppointmentsForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	bookings := make([]schedule.Booking, 0, len(appointments))
	for _, ap := range appointments {
		startMin, err := schedule.ParseClock(ap.AppointmentTime)
		if err != nil {
			continue
		}
		bookings = append(bookings, schedule.Booking{
			StartMin:    startMin,
			DurationMin: ap.Service.DurationMinutes,
		})
	}

	// --------------------------------------------------
	// 4️⃣ Gerar + classificar
	// --------------------------------------------------
	slots := schedule.Classify(schedule.GenerateSlots(windows, specs), bookings)

	out := make([]schedule.SlotResponse, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Response())
	}

	uc.cache.Set(ctx, date, serviceID, out)

	return out, nil
}

// IsSlotAvailable responde a consulta booleana de um único slot.
// "slot não existe" e "slot existe mas está tomado" são ambos false —
// o chamador só precisa de um booleano acionável.
func (uc *GetAvailability) IsSlotAvailable(
	ctx context.Context,
	date time.Time,
	timeOfDay string,
	serviceID uint,
) (bool, error) {

	slots, err := uc.Execute(ctx, date, serviceID)
	if err != nil {
		return false, err
	}

	for _, s := range slots {
		if s.Time == timeOfDay && s.ServiceID == serviceID {
			return s.IsAvailable, nil
		}
	}

	return false, nil
}
