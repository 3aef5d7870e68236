package schedule

import "testing"

func clock(t *testing.T, hm string) int {
	t.Helper()
	min, err := ParseClock(hm)
	if err != nil {
		t.Fatalf("ParseClock(%q): %v", hm, err)
	}
	return min
}

func window(t *testing.T, start, end string) Window {
	t.Helper()
	return Window{StartMin: clock(t, start), EndMin: clock(t, end)}
}

func hasSlot(slots []Slot, timeMin int, serviceID uint) bool {
	for _, s := range slots {
		if s.TimeMin == timeMin && s.Service.ID == serviceID {
			return true
		}
	}
	return false
}

func TestGenerateSlotsEmptyWindows(t *testing.T) {
	slots := GenerateSlots(nil, []ServiceSpec{{ID: 1, DurationMin: 30}})
	if len(slots) != 0 {
		t.Fatalf("expected no slots for a closed day, got %d", len(slots))
	}
}

func TestGenerateSlotsNeverOverrunsWindow(t *testing.T) {
	windows := []Window{window(t, "09:00", "17:00")}
	services := []ServiceSpec{{ID: 1, Name: "Corte longo", DurationMin: 60}}

	slots := GenerateSlots(windows, services)

	for _, s := range slots {
		if s.EndMin() > windows[0].EndMin {
			t.Errorf("slot %s overruns window end", FormatClock(s.TimeMin))
		}
	}

	if !hasSlot(slots, clock(t, "16:00"), 1) {
		t.Error("16:00 should fit a 60-minute service in a 09:00-17:00 window")
	}
	if hasSlot(slots, clock(t, "16:30"), 1) {
		t.Error("16:30 must not appear: a 60-minute service would end at 17:30")
	}
}

func TestGenerateSlotsStepFitsOnlyShorterService(t *testing.T) {
	windows := []Window{window(t, "09:00", "17:00")}
	services := []ServiceSpec{
		{ID: 1, DurationMin: 30},
		{ID: 2, DurationMin: 60},
	}

	slots := GenerateSlots(windows, services)

	if !hasSlot(slots, clock(t, "16:30"), 1) {
		t.Error("the 30-minute service should still be offered at 16:30")
	}
	if hasSlot(slots, clock(t, "16:30"), 2) {
		t.Error("the 60-minute service must not be offered at 16:30")
	}
}

func TestGenerateSlotsServiceLongerThanWindow(t *testing.T) {
	windows := []Window{window(t, "09:00", "10:00")}
	services := []ServiceSpec{{ID: 1, DurationMin: 90}}

	if slots := GenerateSlots(windows, services); len(slots) != 0 {
		t.Fatalf("a service longer than the window span must yield zero candidates, got %d", len(slots))
	}
}

func TestGenerateSlotsMultipleWindows(t *testing.T) {
	windows := []Window{
		window(t, "09:00", "12:00"),
		window(t, "14:00", "17:00"),
	}
	services := []ServiceSpec{{ID: 1, DurationMin: 30}}

	slots := GenerateSlots(windows, services)

	if !hasSlot(slots, clock(t, "11:30"), 1) {
		t.Error("morning window should end with an 11:30 slot")
	}
	if hasSlot(slots, clock(t, "12:30"), 1) {
		t.Error("no slot may fall in the lunch gap between windows")
	}
	if !hasSlot(slots, clock(t, "14:00"), 1) {
		t.Error("afternoon window should start with a 14:00 slot")
	}

	// 6 passos por janela de 3h com serviço de 30min
	if len(slots) != 12 {
		t.Fatalf("expected 12 slots across both windows, got %d", len(slots))
	}
}
