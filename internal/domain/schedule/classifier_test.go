package schedule

import "testing"

func TestClassifySlot(t *testing.T) {
	// agendamento confirmado 10:00-10:30
	tenAM := []Booking{{StartMin: 600, DurationMin: 30}}

	tests := []struct {
		name     string
		slot     Slot
		bookings []Booking
		want     Outcome
	}{
		{
			name:     "no appointments",
			slot:     Slot{TimeMin: 600, Service: ServiceSpec{DurationMin: 30}},
			bookings: nil,
			want:     OutcomeAvailable,
		},
		{
			name:     "exact start match regardless of service duration",
			slot:     Slot{TimeMin: 600, Service: ServiceSpec{DurationMin: 120}},
			bookings: tenAM,
			want:     OutcomeExactMatch,
		},
		{
			name:     "start strictly inside appointment",
			slot:     Slot{TimeMin: 630, Service: ServiceSpec{DurationMin: 30}},
			bookings: []Booking{{StartMin: 600, DurationMin: 60}},
			want:     OutcomeContained,
		},
		{
			name:     "long service would run into appointment",
			slot:     Slot{TimeMin: 540, Service: ServiceSpec{DurationMin: 120}},
			bookings: tenAM,
			want:     OutcomeInsufficientGap,
		},
		{
			name:     "starts exactly when the blocking appointment ends",
			slot:     Slot{TimeMin: 630, Service: ServiceSpec{DurationMin: 120}},
			bookings: tenAM,
			want:     OutcomeAvailable,
		},
		{
			name: "exact match beats insufficient gap from another appointment",
			slot: Slot{TimeMin: 600, Service: ServiceSpec{DurationMin: 120}},
			bookings: []Booking{
				{StartMin: 660, DurationMin: 30}, // geraria gap
				{StartMin: 600, DurationMin: 30}, // exato
			},
			want: OutcomeExactMatch,
		},
		{
			name: "contained beats insufficient gap",
			slot: Slot{TimeMin: 630, Service: ServiceSpec{DurationMin: 120}},
			bookings: []Booking{
				{StartMin: 600, DurationMin: 60}, // contém 10:30
				{StartMin: 720, DurationMin: 30}, // 12:00, geraria gap
			},
			want: OutcomeContained,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifySlot(tt.slot, tt.bookings); got != tt.want {
				t.Errorf("ClassifySlot() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyDerivedFlags(t *testing.T) {
	bookings := []Booking{{StartMin: 600, DurationMin: 30}}

	slots := Classify([]Slot{
		{TimeMin: 600, Service: ServiceSpec{ID: 1, DurationMin: 30}},
		{TimeMin: 540, Service: ServiceSpec{ID: 2, DurationMin: 120}},
		{TimeMin: 630, Service: ServiceSpec{ID: 2, DurationMin: 120}},
	}, bookings)

	exact := slots[0].Response()
	if exact.IsAvailable || !exact.IsBooked || exact.InsufficientGap {
		t.Errorf("exact match flags wrong: %+v", exact)
	}

	gap := slots[1].Response()
	if gap.IsAvailable || gap.IsBooked || !gap.InsufficientGap {
		t.Errorf("insufficient gap flags wrong: %+v", gap)
	}

	free := slots[2].Response()
	if !free.IsAvailable || free.IsBooked || free.InsufficientGap {
		t.Errorf("available flags wrong: %+v", free)
	}
}
