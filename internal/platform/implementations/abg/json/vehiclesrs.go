package json

import (
	"bitbucket.org/crgw/flexrates/internal/schema"
	"bitbucket.org/crgw/flexrates/internal/tools/converting"
	"github.com/shopspring/decimal"
)

type VehiclesRS struct {
	Vehicles []VehiclesRSVehicle `json:"vehicles"`
}

type VehiclesRSVehicle struct {
	Category   *VehiclesRSCategory   `json:"category,omitempty"`
	RateTotals *VehiclesRSRateTotals `json:"rate_totals,omitempty"`
}

type VehiclesRSCategory struct {
	VehicleClassCode *string `json:"vehicle_class_code,omitempty"`
	VehicleClassName *string `json:"vehicle_class_name,omitempty"`
	Make             *string `json:"make,omitempty"`
	Model            *string `json:"model,omitempty"`
}

type VehiclesRSRateTotals struct {
	PayLater *VehiclesRSTotals `json:"pay_later,omitempty"`
	PayNow   *VehiclesRSTotals `json:"pay_now,omitempty"`
}

type VehiclesRSTotals struct {
	ReservationTotal *decimal.Decimal `json:"reservation_total,omitempty"`
	VehicleTotal     *decimal.Decimal `json:"vehicle_total,omitempty"`
}

// ToQuote prices the vehicle by its pay-later reservation total. A missing
// class name falls back to an unknown class. A vehicle without a pay-later
// total is not priced and ok is false.
func (v *VehiclesRSVehicle) ToQuote() (quote schema.VehicleQuote, ok bool) {
	category := converting.Unwrap(v.Category)
	totals := converting.Unwrap(converting.Unwrap(v.RateTotals).PayLater)

	if totals.ReservationTotal == nil {
		return schema.VehicleQuote{}, false
	}

	return schema.VehicleQuote{
		ClassName: converting.UnwrapOr(category.VehicleClassName, schema.UnknownVehicleClass),
		Total:     *totals.ReservationTotal,
	}, true
}
