package models

import "time"

// StoreDetails holds the public storefront card. CoverImage and
// LogoImage are Cloudinary public IDs, resolved to URLs on read.
type StoreDetails struct {
	ID         string `bson:"id" json:"id"`
	Name       string `bson:"name" json:"name"`
	CoverImage string `bson:"coverImage" json:"coverImage"`
	LogoImage  string `bson:"logoImage" json:"logoImage"`
}

// Setting is an owner-managed key/value pair.
type Setting struct {
	ID    string `bson:"id" json:"id"`
	Key   string `bson:"key" json:"key"`
	Value string `bson:"value" json:"value"`
}

// MessageLog records every outbound SMS for auditing.
type MessageLog struct {
	ID     string    `bson:"id" json:"id"`
	Phone  string    `bson:"phone" json:"phone"`
	Kind   string    `bson:"kind" json:"kind"` // "otp", "broadcast", "reminder"
	SentAt time.Time `bson:"sentAt" json:"sentAt"`
	Status string    `bson:"status" json:"status"`
}

// ReminderPayload is the asynq task body for appointment reminders.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	Phone         string `json:"phone"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
}
