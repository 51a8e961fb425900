package abg

import (
	"context"
	jsonEncoding "encoding/json"

	"bitbucket.org/crgw/flexrates/internal/platform/implementations/abg/json"
	"bitbucket.org/crgw/flexrates/internal/schema"
	"bitbucket.org/crgw/flexrates/internal/tools/converting"
	"github.com/rs/zerolog"
)

// FetchAvailability lists the vehicles offered for one pickup/dropoff
// combination. A response without a vehicles key is a failure, an empty
// vehicles list is not. Vehicles without a pay-later total are left out.
func (a *abgCar) FetchAvailability(ctx context.Context, params schema.AvailabilityParams, logger *zerolog.Logger) ([]schema.VehicleQuote, error) {
	token, err := a.Authenticate(ctx, logger)
	if err != nil {
		return nil, err
	}

	body, e := a.get(ctx, a.client(logger), token, schema.Availability, availabilityPath, a.vehiclesRequest(params))
	if e != nil {
		return nil, schema.Wrap(schema.AvailabilityFailure, "failed to get car availability", *e)
	}

	if err := json.ValidateVehicles(body); err != nil {
		return nil, schema.Wrap(schema.AvailabilityFailure, "failed to get car availability", err)
	}

	var jsonVehiclesResponse json.VehiclesRS
	if err := jsonEncoding.Unmarshal(body, &jsonVehiclesResponse); err != nil {
		return nil, schema.Wrap(schema.AvailabilityFailure, "failed to get car availability", err)
	}

	quotes := make([]schema.VehicleQuote, 0, len(jsonVehiclesResponse.Vehicles))
	for i, vehicle := range jsonVehiclesResponse.Vehicles {
		quote, ok := vehicle.ToQuote()
		if !ok {
			logger.Debug().
				Int("vehicle", i).
				Str("vehicleClass", converting.Unwrap(converting.Unwrap(vehicle.Category).VehicleClassName)).
				Msg("Skipping vehicle without pay later reservation total")
			continue
		}
		quotes = append(quotes, quote)
	}

	return quotes, nil
}

func (a *abgCar) vehiclesRequest(params schema.AvailabilityParams) json.VehiclesRQ {
	return json.VehiclesRQ{
		Brand:           a.configuration.Brand,
		PickupDate:      params.PickupDateTime(),
		PickupLocation:  params.PickupLocation,
		DropoffDate:     params.DropoffDateTime(),
		DropoffLocation: params.DropoffLocation,
		CountryCode:     params.CountryCode,
	}
}
