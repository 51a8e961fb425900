package abg

import (
	"context"
	jsonEncoding "encoding/json"
	"errors"

	"bitbucket.org/crgw/flexrates/internal/platform/implementations/abg/json"
	"bitbucket.org/crgw/flexrates/internal/schema"
	"github.com/rs/zerolog"
)

const (
	DefaultRateCode         = "G3"
	DefaultVehicleClassCode = "A"
)

// GetRate returns the supplier's rate document for one vehicle class as is.
func (a *abgCar) GetRate(ctx context.Context, params schema.RateParams, logger *zerolog.Logger) (jsonEncoding.RawMessage, error) {
	token, err := a.Authenticate(ctx, logger)
	if err != nil {
		return nil, err
	}

	if params.RateCode == "" {
		params.RateCode = DefaultRateCode
	}
	if params.VehicleClassCode == "" {
		params.VehicleClassCode = DefaultVehicleClassCode
	}

	opt := json.RatesRQ{
		VehiclesRQ:       a.vehiclesRequest(params.AvailabilityParams),
		RateCode:         params.RateCode,
		VehicleClassCode: params.VehicleClassCode,
	}

	body, e := a.get(ctx, a.client(logger), token, schema.Rate, ratePath, opt)
	if e != nil {
		return nil, schema.Wrap(schema.RateFailure, "failed to get car rate", *e)
	}

	if !jsonEncoding.Valid(body) {
		return nil, schema.Wrap(schema.RateFailure, "failed to get car rate", errors.New("malformed response body"))
	}

	return jsonEncoding.RawMessage(body), nil
}
