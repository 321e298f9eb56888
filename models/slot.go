package models

// Slot is a candidate bookable interval within a day's working window.
// Slots are computed on demand and never persisted.
type Slot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
