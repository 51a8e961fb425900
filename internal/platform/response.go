package platform

import (
	"bitbucket.org/crgw/flexrates/internal/render"
	"bitbucket.org/crgw/flexrates/internal/schema"
	"bitbucket.org/crgw/flexrates/internal/search"
)

type LocationsResponse struct {
	Locations        []schema.Location       `json:"locations"`
	SupplierRequests schema.SupplierRequests `json:"supplierRequests"`
}

type CheapestEntry struct {
	PickupDate  string `json:"pickupDate"`
	DropoffDate string `json:"dropoffDate"`
	search.BestQuote
}

type MatrixResponse struct {
	Location         string                  `json:"location"`
	Grid             []search.DatePair       `json:"grid"`
	Matrix           *search.Matrix          `json:"matrix"`
	Table            render.Table            `json:"table"`
	Cheapest         *CheapestEntry          `json:"cheapest,omitempty"`
	Failures         []search.PairFailure    `json:"failures"`
	Unavailable      []search.DatePair       `json:"unavailable"`
	SupplierRequests schema.SupplierRequests `json:"supplierRequests"`
}

// NewMatrixResponse lays a search result out for JSON output. With fullGrid
// the table covers every generated date, not only the quoted ones.
func NewMatrixResponse(
	location string,
	result search.Result,
	fullGrid bool,
	requests schema.SupplierRequests,
) MatrixResponse {
	var tableOptions []render.Option
	if fullGrid {
		tableOptions = append(tableOptions, render.WithAxes(search.Axes(result.Grid)))
	}

	response := MatrixResponse{
		Location:         location,
		Grid:             result.Grid,
		Matrix:           result.Matrix,
		Table:            render.NewTable(result.Matrix, tableOptions...),
		Failures:         result.Failures,
		Unavailable:      result.Unavailable,
		SupplierRequests: requests,
	}

	if pickup, dropoff, quote, ok := result.Matrix.Cheapest(); ok {
		response.Cheapest = &CheapestEntry{
			PickupDate:  pickup,
			DropoffDate: dropoff,
			BestQuote:   quote,
		}
	}

	if response.SupplierRequests == nil {
		response.SupplierRequests = schema.SupplierRequests{}
	}

	return response
}
