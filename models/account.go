package models

import "time"

// Account is a customer/vehicle record built up from past bookings.
type Account struct {
	ID            string    `bson:"id" json:"id"`
	VehicleReg    string    `bson:"vehicleReg" json:"vehicleReg"`
	VehicleMake   string    `bson:"vehicleMake" json:"vehicleMake"`
	CustomerName  string    `bson:"customerName" json:"customerName"`
	CustomerPhone string    `bson:"customerPhone" json:"customerPhone"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
