package availability

import (
	"fmt"

	"barberbook/models"
)

// GenerateSlots tiles a working window with candidate slots of the
// given duration. The first slot starts at windowStart, each slot ends
// where the next begins, and a trailing partial slot that would run
// past windowEnd is dropped. The result is empty when the duration is
// not positive, exceeds the window, or the window itself is empty.
//
// Pure minute-of-day arithmetic: safe to call repeatedly, identical
// output for identical input.
func GenerateSlots(windowStart, windowEnd string, durationMinutes int) ([]models.Slot, error) {
	start, err := ParseClock(windowStart)
	if err != nil {
		return nil, fmt.Errorf("invalid window start: %w", err)
	}
	end, err := ParseClock(windowEnd)
	if err != nil {
		return nil, fmt.Errorf("invalid window end: %w", err)
	}
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("duration must be positive, got %d", durationMinutes)
	}

	var slots []models.Slot
	for cursor := start; cursor+durationMinutes <= end; cursor += durationMinutes {
		slots = append(slots, models.Slot{
			StartTime: FormatClock(cursor),
			EndTime:   FormatClock(cursor + durationMinutes),
		})
	}
	return slots, nil
}
