package models

// AppointmentType describes a bookable service. Name is the human key
// customers book by; DurationMinutes is the slot length the availability
// engine tiles the working window with.
type AppointmentType struct {
	ID              string  `bson:"id" json:"id"`
	Name            string  `bson:"name" json:"name"`
	DurationMinutes int     `bson:"durationMinutes" json:"durationMinutes"`
	Cost            float64 `bson:"cost" json:"cost"`
}
