package models

// Technician is one entry in the workshop directory.
type Technician struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Order int    `bson:"order,omitempty" json:"order,omitempty"` // Display column order on the calendar
}
