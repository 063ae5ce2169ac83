package models

import "time"

// TechnicianRef identifies the technician an appointment is assigned to.
// Older records carry only the display name; records written after the
// directory migration carry the opaque id. Either field may be empty, never
// both on a valid record.
type TechnicianRef struct {
	ID   string `bson:"techId,omitempty" json:"techId,omitempty"` // Directory id (canonical going forward)
	Name string `bson:"tech,omitempty" json:"tech,omitempty"`     // Legacy display name
}

// IsZero reports whether the reference carries no identity at all.
func (r TechnicianRef) IsZero() bool {
	return r.ID == "" && r.Name == ""
}

// Task is one line of work on a job card.
type Task struct {
	Text          string `bson:"text" json:"text"`
	Completed     bool   `bson:"completed" json:"completed"`
	CompletedBy   string `bson:"completedBy,omitempty" json:"completedBy,omitempty"`     // Technician name (legacy) or id
	CompletedByID string `bson:"completedById,omitempty" json:"completedById,omitempty"` // Directory id when known
	TimeSpent     int    `bson:"timeSpent,omitempty" json:"timeSpent,omitempty"`         // Minutes
}

// AppointmentDetails carries the job-card content of an appointment.
type AppointmentDetails struct {
	VehicleReg    string `bson:"vehicleReg" json:"vehicleReg"`
	VehicleMake   string `bson:"vehicleMake" json:"vehicleMake"`
	CustomerName  string `bson:"customerName" json:"customerName"`
	CustomerPhone string `bson:"customerPhone" json:"customerPhone"`
	Comment       string `bson:"comment,omitempty" json:"comment,omitempty"`
	Tasks         []Task `bson:"tasks,omitempty" json:"tasks,omitempty"`

	// Workshop state flags driving the calendar colour coding.
	InProgress       bool `bson:"inProgress,omitempty" json:"inProgress,omitempty"`
	NeedsValidation  bool `bson:"needsValidation,omitempty" json:"needsValidation,omitempty"`
	NewTasksAdded    bool `bson:"newTasksAdded,omitempty" json:"newTasksAdded,omitempty"`
	NewCommentsAdded bool `bson:"newCommentsAdded,omitempty" json:"newCommentsAdded,omitempty"`
}

// Appointment is one day-bounded booking record. A job longer than the
// remaining working day is stored as several appointments sharing a
// RolloverGroupID, one per working day.
type Appointment struct {
	ID            string             `bson:"id" json:"id"`
	Date          string             `bson:"date" json:"date"`                   // "YYYY-MM-DD"
	StartSlot     int                `bson:"startSlot" json:"startSlot"`         // Row index in the day's slot table
	DurationSlots int                `bson:"durationSlots" json:"durationSlots"` // Bookable slots consumed on this day
	Technician    TechnicianRef      `bson:",inline" json:"technician"`
	Details       AppointmentDetails `bson:"details" json:"details"`

	// Rollover linkage for multi-day jobs.
	RolloverGroupID string `bson:"rolloverGroupId,omitempty" json:"rolloverGroupId,omitempty"`
	Segment         int    `bson:"segment,omitempty" json:"segment,omitempty"` // 0 = head, 1.. = tails

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
