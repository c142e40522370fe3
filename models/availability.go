package models

import "time"

// WeeklyAvailability is a recurring weekly window in which an employee is
// open for bookings. DayOfWeek follows time.Weekday (0 = Sunday).
// Times are canonical "HH:MM:SS" strings; lexical order equals chronological
// order within a day.
type WeeklyAvailability struct {
	ID         string    `bson:"id" json:"id"`
	EmployeeID string    `bson:"employeeId" json:"employeeId"`
	DayOfWeek  int       `bson:"dayOfWeek" json:"dayOfWeek"`
	StartTime  string    `bson:"startTime" json:"startTime"`
	EndTime    string    `bson:"endTime" json:"endTime"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}
