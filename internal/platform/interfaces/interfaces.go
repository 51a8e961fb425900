package interfaces

import (
	"context"
	"encoding/json"

	"bitbucket.org/crgw/flexrates/internal/schema"
	"github.com/rs/zerolog"
)

type WithLocations interface {
	GetLocations(context.Context, schema.LocationsParams, *zerolog.Logger) ([]schema.Location, error)
}

type WithAvailability interface {
	FetchAvailability(context.Context, schema.AvailabilityParams, *zerolog.Logger) ([]schema.VehicleQuote, error)
}

type WithRate interface {
	GetRate(context.Context, schema.RateParams, *zerolog.Logger) (json.RawMessage, error)
}
