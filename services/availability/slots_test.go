package availability

import "testing"

func TestGenerateSlots_TilesWindow(t *testing.T) {
	slots, err := GenerateSlots("09:00", "12:00", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 6 {
		t.Fatalf("expected 6 slots, got %d", len(slots))
	}
	if slots[0].StartTime != "09:00" || slots[0].EndTime != "09:30" {
		t.Fatalf("expected first slot 09:00-09:30, got %s-%s", slots[0].StartTime, slots[0].EndTime)
	}
	if slots[5].StartTime != "11:30" || slots[5].EndTime != "12:00" {
		t.Fatalf("expected last slot 11:30-12:00, got %s-%s", slots[5].StartTime, slots[5].EndTime)
	}
	// Contiguous: each slot starts where the previous one ends.
	for i := 1; i < len(slots); i++ {
		if slots[i].StartTime != slots[i-1].EndTime {
			t.Fatalf("gap between slot %d and %d: %s != %s", i-1, i, slots[i-1].EndTime, slots[i].StartTime)
		}
	}
}

func TestGenerateSlots_SlotCountProperty(t *testing.T) {
	cases := []struct {
		start, end string
		duration   int
		want       int
	}{
		{"09:00", "17:00", 60, 8},
		{"09:00", "17:00", 45, 10}, // floor(480/45), trailing partial dropped
		{"08:30", "09:00", 15, 2},
		{"00:00", "23:59", 60, 23},
		{"10:00", "10:20", 20, 1},
	}
	for _, tc := range cases {
		slots, err := GenerateSlots(tc.start, tc.end, tc.duration)
		if err != nil {
			t.Fatalf("%s-%s/%d: unexpected error: %v", tc.start, tc.end, tc.duration, err)
		}
		if len(slots) != tc.want {
			t.Fatalf("%s-%s/%d: expected %d slots, got %d", tc.start, tc.end, tc.duration, tc.want, len(slots))
		}
		if len(slots) > 0 && slots[0].StartTime != tc.start {
			t.Fatalf("%s-%s/%d: first slot starts at %s", tc.start, tc.end, tc.duration, slots[0].StartTime)
		}
	}
}

func TestGenerateSlots_Empty(t *testing.T) {
	// Duration exceeds the window.
	slots, err := GenerateSlots("09:00", "09:20", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots, got %d", len(slots))
	}

	// Inverted window.
	slots, err = GenerateSlots("12:00", "09:00", 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("expected no slots for inverted window, got %d", len(slots))
	}
}

func TestGenerateSlots_InvalidInput(t *testing.T) {
	if _, err := GenerateSlots("9am", "12:00", 30); err == nil {
		t.Fatal("expected error for malformed start time")
	}
	if _, err := GenerateSlots("09:00", "12:00", 0); err == nil {
		t.Fatal("expected error for zero duration")
	}
	if _, err := GenerateSlots("09:00", "12:00", -15); err == nil {
		t.Fatal("expected error for negative duration")
	}
}

func TestParseClock(t *testing.T) {
	m, err := ParseClock("13:45")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != 13*60+45 {
		t.Fatalf("expected 825, got %d", m)
	}
	for _, bad := range []string{"24:00", "12:60", "1245", "", "ab:cd"} {
		if _, err := ParseClock(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestAddMinutes_WrapsMidnight(t *testing.T) {
	got, err := AddMinutes("23:30", 45)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "00:15" {
		t.Fatalf("expected 00:15, got %s", got)
	}
}
