package schema

import "github.com/shopspring/decimal"

const UnknownVehicleClass = "Unknown Class"

// VehicleQuote is one vehicle of an availability response, priced by its
// pay-later reservation total. The currency is whatever the supplier quotes in.
type VehicleQuote struct {
	ClassName string          `json:"vehicleClass"`
	Total     decimal.Decimal `json:"reservationTotal"`
}
