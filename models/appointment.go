package models

import "time"

// Appointment is a booked visit. Date is "YYYY-MM-DD" and the clock
// fields are "HH:MM"; both orders lexicographically the same way they
// order chronologically, which the date/time range queries depend on.
type Appointment struct {
	ID        string    `bson:"id" json:"id"`
	Phone     string    `bson:"phone" json:"phone"`
	Type      string    `bson:"type" json:"type"`
	Date      string    `bson:"date" json:"date"`
	StartTime string    `bson:"startTime" json:"startTime"`
	EndTime   string    `bson:"endTime" json:"endTime"`
	Note      string    `bson:"note,omitempty" json:"note,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// CanceledAppointment is an audit snapshot written when an appointment
// is deleted. It has its own id and is never linked back to the
// appointment it was taken from.
type CanceledAppointment struct {
	ID         string    `bson:"id" json:"id"`
	Date       string    `bson:"date" json:"date"`
	StartTime  string    `bson:"startTime" json:"startTime"`
	Phone      string    `bson:"phone" json:"phone"`
	Type       string    `bson:"type" json:"type"`
	CanceledAt time.Time `bson:"canceledAt" json:"canceledAt"`
	UserName   string    `bson:"userName" json:"userName"`
}

// CanceledAppointmentReport decorates a cancellation snapshot with
// whether it happened inside the late-cancellation window.
type CanceledAppointmentReport struct {
	CanceledAppointment
	CanceledWithinThreshold bool `json:"canceledWithinXHours"`
}

// AppointmentWithUser is the owner-facing day report row.
type AppointmentWithUser struct {
	Appointment
	UserName string `json:"userName"`
}
