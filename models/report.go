package models

// TechnicianHours is the total completed task time for one technician
// over a report range.
type TechnicianHours struct {
	Technician string `bson:"technician" json:"technician"`
	Hours      int    `bson:"hours" json:"hours"`
	Minutes    int    `bson:"minutes" json:"minutes"`
}

// DailyWorkload is the booked task minutes for a single calendar day.
type DailyWorkload struct {
	Date    string `bson:"date" json:"date"` // "YYYY-MM-DD"
	Minutes int    `bson:"minutes" json:"minutes"`
}

// AnalyticsSummary aggregates appointment activity for the dashboard.
type AnalyticsSummary struct {
	Appointments int             `json:"appointments"` // Count within the selected range
	TotalMinutes int             `json:"totalMinutes"` // Completed task minutes within the range
	Week         int             `json:"week"`         // Appointments in the trailing 7 days
	Month        int             `json:"month"`        // Appointments in the trailing 30 days
	Year         int             `json:"year"`         // Appointments in the trailing 365 days
	Daily        []DailyWorkload `json:"daily"`
}

// DailyHoursRollup is a precomputed per-technician, per-day hours document
// written by the nightly worker.
type DailyHoursRollup struct {
	Date       string `bson:"date" json:"date"`
	Technician string `bson:"technician" json:"technician"`
	Minutes    int    `bson:"minutes" json:"minutes"`
}
