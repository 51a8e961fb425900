package search

import (
	"time"

	"bitbucket.org/crgw/flexrates/internal/schema"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// DefaultOffsets are the day shifts applied independently to the base pickup
// and dropoff dates.
var DefaultOffsets = []int{-1, 0, 1}

type DatePair struct {
	Pickup  openapi_types.Date `json:"pickupDate"`
	Dropoff openapi_types.Date `json:"dropoffDate"`
}

func NewDatePair(pickup, dropoff time.Time) DatePair {
	return DatePair{
		Pickup:  openapi_types.Date{Time: civil(pickup)},
		Dropoff: openapi_types.Date{Time: civil(dropoff)},
	}
}

func (p DatePair) PickupKey() string {
	return p.Pickup.Format(schema.DateFormat)
}

func (p DatePair) DropoffKey() string {
	return p.Dropoff.Format(schema.DateFormat)
}

func (p DatePair) String() string {
	return p.PickupKey() + "/" + p.DropoffKey()
}

// Inverted reports whether dropoff comes before pickup. Such pairs are still
// queried, the supplier decides what to make of them.
func (p DatePair) Inverted() bool {
	return p.Dropoff.Before(p.Pickup.Time)
}

// NewGrid returns the Cartesian product of the shifted pickup and dropoff
// dates in nested-loop order: pickup offset outer, dropoff offset inner.
func NewGrid(basePickup, baseDropoff time.Time, offsets []int) []DatePair {
	if offsets == nil {
		offsets = DefaultOffsets
	}

	grid := make([]DatePair, 0, len(offsets)*len(offsets))
	for _, pickupOffset := range offsets {
		for _, dropoffOffset := range offsets {
			grid = append(grid, NewDatePair(
				basePickup.AddDate(0, 0, pickupOffset),
				baseDropoff.AddDate(0, 0, dropoffOffset),
			))
		}
	}

	return grid
}

// Axes returns the distinct pickup and dropoff dates of grid in ascending
// order.
func Axes(grid []DatePair) (pickups []string, dropoffs []string) {
	pickupSet := map[string]struct{}{}
	dropoffSet := map[string]struct{}{}

	for _, pair := range grid {
		pickupSet[pair.PickupKey()] = struct{}{}
		dropoffSet[pair.DropoffKey()] = struct{}{}
	}

	return sortedKeys(pickupSet), sortedKeys(dropoffSet)
}

func civil(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
