package schema

import (
	"fmt"
	"time"
)

const (
	DateFormat     = time.DateOnly
	TimeFormat     = time.TimeOnly
	DateTimeFormat = "2006-01-02T15:04:05"
)

type AvailabilityParams struct {
	PickupDate      time.Time
	PickupTime      string
	PickupLocation  string
	DropoffDate     time.Time
	DropoffTime     string
	DropoffLocation string
	CountryCode     string
}

// PickupDateTime joins the pickup calendar date and the time of day in the
// supplier's wire format.
func (p AvailabilityParams) PickupDateTime() string {
	return joinDateTime(p.PickupDate, p.PickupTime)
}

func (p AvailabilityParams) DropoffDateTime() string {
	return joinDateTime(p.DropoffDate, p.DropoffTime)
}

type RateParams struct {
	AvailabilityParams
	RateCode         string
	VehicleClassCode string
}

func joinDateTime(date time.Time, clock string) string {
	return fmt.Sprintf("%sT%s", date.Format(DateFormat), clock)
}
