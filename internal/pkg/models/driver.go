package models

import (
	"time"

	"github.com/google/uuid"
)

// DriverStatus is the availability of a driver
type DriverStatus string

const (
	DriverStatusAvailable DriverStatus = "AVAILABLE"
	DriverStatusBusy      DriverStatus = "BUSY"
	DriverStatusOffDuty   DriverStatus = "OFF_DUTY"
)

func (s DriverStatus) Valid() bool {
	return s == DriverStatusAvailable || s == DriverStatusBusy || s == DriverStatusOffDuty
}

// Driver is a chauffeur registered with an organization
type Driver struct {
	ID           uuid.UUID    `json:"id" db:"id"`
	OrgID        uuid.UUID    `json:"org_id" db:"org_id"`
	Name         string       `json:"name" db:"name"`
	Phone        string       `json:"phone" db:"phone"`
	Email        string       `json:"email" db:"email"`
	VehicleMake  string       `json:"vehicle_make" db:"vehicle_make"`
	VehicleModel string       `json:"vehicle_model" db:"vehicle_model"`
	VehiclePlate string       `json:"vehicle_plate" db:"vehicle_plate"`
	VehicleClass string       `json:"vehicle_class" db:"vehicle_class"`
	Status       DriverStatus `json:"status" db:"status"`
	Rating       float64      `json:"rating" db:"rating"`
	Location     string       `json:"location" db:"location"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at"`
	DeletedAt    *time.Time   `json:"-" db:"deleted_at"`
}

// DriverRequest carries the editable driver fields for create and update
type DriverRequest struct {
	Name         string  `json:"name"`
	Phone        string  `json:"phone"`
	Email        string  `json:"email"`
	VehicleMake  string  `json:"vehicle_make"`
	VehicleModel string  `json:"vehicle_model"`
	VehiclePlate string  `json:"vehicle_plate"`
	VehicleClass string  `json:"vehicle_class"`
	Rating       float64 `json:"rating"`
	Location     string  `json:"location"`
}

// DriverStatusRequest is the body of a manual status change
type DriverStatusRequest struct {
	Status DriverStatus `json:"status"`
}
