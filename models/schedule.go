package models

// WorkingHours is the open-to-close window for one weekday.
// DayOfWeek uses full English names ("Monday" ... "Sunday").
type WorkingHours struct {
	ID        string `bson:"id" json:"id"`
	DayOfWeek string `bson:"dayOfWeek" json:"dayOfWeek"`
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// DayOff is a standing weekly closure.
type DayOff struct {
	ID        string `bson:"id" json:"id"`
	DayOfWeek string `bson:"dayOfWeek" json:"dayOfWeek"`
}

// Vacation is a one-off closed date range, inclusive on both ends.
type Vacation struct {
	ID        string `bson:"id" json:"id"`
	StartDate string `bson:"startDate" json:"startDate"`
	EndDate   string `bson:"endDate" json:"endDate"`
}
