package abg

import (
	"context"
	jsonEncoding "encoding/json"
	"errors"

	"bitbucket.org/crgw/flexrates/internal/platform/implementations/abg/json"
	"bitbucket.org/crgw/flexrates/internal/schema"
	"github.com/rs/zerolog"
)

func (a *abgCar) GetLocations(ctx context.Context, params schema.LocationsParams, logger *zerolog.Logger) ([]schema.Location, error) {
	token, err := a.Authenticate(ctx, logger)
	if err != nil {
		return nil, err
	}

	opt := json.LocationsRQ{
		Brand:       a.configuration.Brand,
		CountryCode: params.CountryCode,
		Keyword:     params.Keyword,
	}

	body, e := a.get(ctx, a.client(logger), token, schema.Locations, locationsPath, opt)
	if e != nil {
		return nil, schema.Wrap(schema.LocationLookupFailure, "failed to get car locations", *e)
	}

	if err := json.ValidateLocations(body); err != nil {
		return nil, schema.Wrap(schema.LocationLookupFailure, "failed to get car locations", err)
	}

	var jsonLocationsResponse json.LocationsRS
	if err := jsonEncoding.Unmarshal(body, &jsonLocationsResponse); err != nil {
		return nil, schema.Wrap(schema.LocationLookupFailure, "failed to get car locations", err)
	}

	if len(jsonLocationsResponse.Locations) == 0 {
		return nil, schema.Wrap(schema.LocationLookupFailure, "no locations found", errors.New("empty locations list"))
	}

	locations := make([]schema.Location, 0, len(jsonLocationsResponse.Locations))
	for _, place := range jsonLocationsResponse.Locations {
		locations = append(locations, place.ToLocation())
	}

	return locations, nil
}
