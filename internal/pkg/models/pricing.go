package models

import "github.com/google/uuid"

// DistanceUnit is the unit an organization quotes distances in
type DistanceUnit string

const (
	DistanceUnitMiles      DistanceUnit = "mi"
	DistanceUnitKilometers DistanceUnit = "km"
)

// VehicleRate is the tariff of one vehicle class in major currency units
type VehicleRate struct {
	VehicleClass string  `json:"vehicle_class" db:"vehicle_class"`
	BasePrice    float64 `json:"base_price" db:"base_price"`
	PricePerUnit float64 `json:"price_per_unit" db:"price_per_unit"`
	Enabled      bool    `json:"enabled" db:"enabled"`
}

// RateConfig is the pricing configuration of an organization
type RateConfig struct {
	OrgID        uuid.UUID              `json:"org_id" db:"org_id"`
	Currency     string                 `json:"currency" db:"currency"`
	DistanceUnit DistanceUnit           `json:"distance_unit" db:"distance_unit"`
	Vehicles     map[string]VehicleRate `json:"vehicles"`
}

// PriceBreakdown is a computed quote in minor currency units
type PriceBreakdown struct {
	VehicleClass  string       `json:"vehicle_class"`
	Distance      float64      `json:"distance"`
	BasePrice     int64        `json:"base_price"`
	DistancePrice int64        `json:"distance_price"`
	Total         int64        `json:"total"`
	Currency      string       `json:"currency"`
	DistanceUnit  DistanceUnit `json:"distance_unit"`
	DisplayTotal  string       `json:"display_total"`
}

// PriceValidation is the verdict on a client-asserted price
type PriceValidation struct {
	Valid       bool   `json:"valid"`
	ServerPrice int64  `json:"server_price"`
	Currency    string `json:"currency"`
	Reason      string `json:"reason,omitempty"`
}

// PricingQuery is the public pricing request
type PricingQuery struct {
	VehicleClass string  `query:"vehicle_class"`
	Distance     float64 `query:"distance"`
}
