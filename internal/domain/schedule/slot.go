package schedule

// ===============================
// Tipos do motor de agenda
// ===============================

// Window é uma janela de expediente [StartMin, EndMin) de um dia
type Window struct {
	StartMin int
	EndMin   int
}

type ServiceSpec struct {
	ID          uint
	Name        string
	DurationMin int
	Price       float64
}

// Booking é um agendamento confirmado expandido para [StartMin, EndMin)
type Booking struct {
	StartMin    int
	DurationMin int
}

func (b Booking) EndMin() int {
	return b.StartMin + b.DurationMin
}

// Outcome é o resultado da classificação de um slot candidato.
// A ordem dos valores é a ordem de precedência (maior vence).
type Outcome int

const (
	OutcomeAvailable Outcome = iota
	OutcomeInsufficientGap
	OutcomeContained
	OutcomeExactMatch
)

// Slot é um candidato derivado (horário, serviço) — nunca persistido
type Slot struct {
	TimeMin int
	Service ServiceSpec
	Outcome Outcome
}

func (s Slot) EndMin() int {
	return s.TimeMin + s.Service.DurationMin
}

func (s Slot) IsAvailable() bool {
	return s.Outcome == OutcomeAvailable
}

func (s Slot) IsBooked() bool {
	return s.Outcome == OutcomeExactMatch || s.Outcome == OutcomeContained
}

func (s Slot) InsufficientGap() bool {
	return s.Outcome == OutcomeInsufficientGap
}

// SlotResponse é a forma serializada devolvida aos handlers (e cacheada)
type SlotResponse struct {
	Time            string  `json:"time"`
	ServiceID       uint    `json:"service_id"`
	ServiceName     string  `json:"service_name"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	IsAvailable     bool    `json:"is_available"`
	IsBooked        bool    `json:"is_booked"`
	InsufficientGap bool    `json:"insufficient_gap"`
}

func (s Slot) Response() SlotResponse {
	return SlotResponse{
		Time:            FormatClock(s.TimeMin),
		ServiceID:       s.Service.ID,
		ServiceName:     s.Service.Name,
		DurationMinutes: s.Service.DurationMin,
		Price:           s.Service.Price,
		IsAvailable:     s.IsAvailable(),
		IsBooked:        s.IsBooked(),
		InsufficientGap: s.InsufficientGap(),
	}
}
