package models

import "time"

// Day-edge sentinels used when a blocked range spans multiple calendar days.
const (
	StartOfDay = "00:00:00"
	EndOfDay   = "23:59:59"
)

// BlockedInterval removes an employee's availability within a time window on
// one specific date, regardless of weekly availability.
type BlockedInterval struct {
	ID         string    `bson:"id" json:"id"`
	EmployeeID string    `bson:"employeeId" json:"employeeId"`
	Date       string    `bson:"date" json:"date"` // "2006-01-02"
	StartTime  string    `bson:"startTime" json:"startTime"`
	EndTime    string    `bson:"endTime" json:"endTime"`
	Reason     string    `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// BlockedRangeRequest is the dashboard payload for blocking a date range.
// The range is expanded server-side into per-day BlockedInterval segments.
type BlockedRangeRequest struct {
	EmployeeID string `json:"employeeId"`
	StartDate  string `json:"startDate" binding:"required"`
	EndDate    string `json:"endDate" binding:"required"`
	StartTime  string `json:"startTime" binding:"required"`
	EndTime    string `json:"endTime" binding:"required"`
	Reason     string `json:"reason"`
}
