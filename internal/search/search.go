package search

import (
	"context"
	"time"

	"bitbucket.org/crgw/flexrates/internal/schema"
	"bitbucket.org/crgw/flexrates/internal/tools/slowlog"
	"github.com/rs/zerolog"
)

type AvailabilityFetcher interface {
	FetchAvailability(context.Context, schema.AvailabilityParams, *zerolog.Logger) ([]schema.VehicleQuote, error)
}

type Request struct {
	PickupDate  time.Time
	PickupTime  string
	DropoffDate time.Time
	DropoffTime string
	Location    string
	CountryCode string
	// Nil means DefaultOffsets.
	Offsets []int
}

type PairFailure struct {
	Pair    DatePair         `json:"pair"`
	Code    schema.ErrorCode `json:"code"`
	Message string           `json:"message"`
}

type Result struct {
	Grid     []DatePair    `json:"grid"`
	Matrix   *Matrix       `json:"matrix"`
	Failures []PairFailure `json:"failures"`
	// Pairs answered with an empty vehicles list.
	Unavailable []DatePair `json:"unavailable"`
}

type Searcher struct {
	fetcher       AvailabilityFetcher
	slowThreshold time.Duration
}

type Option func(*Searcher)

// WithSlowThreshold escalates availability calls slower than threshold to
// warnings in the slow log.
func WithSlowThreshold(threshold time.Duration) Option {
	return func(s *Searcher) {
		s.slowThreshold = threshold
	}
}

func NewSearcher(fetcher AvailabilityFetcher, options ...Option) *Searcher {
	searcher := &Searcher{
		fetcher: fetcher,
	}

	for _, option := range options {
		option(searcher)
	}

	return searcher
}

// Search queries every pair of the date grid one at a time and keeps the
// cheapest vehicle of each. A failed pair is logged and skipped. An auth
// failure or a cancelled context ends the search early; the partial result
// is returned together with the error.
func (s *Searcher) Search(ctx context.Context, request Request, logger *zerolog.Logger) (Result, error) {
	result := Result{
		Grid:        NewGrid(request.PickupDate, request.DropoffDate, request.Offsets),
		Matrix:      NewMatrix(),
		Failures:    []PairFailure{},
		Unavailable: []DatePair{},
	}

	slowLog := slowlog.CreateLogger(logger, s.slowThreshold)
	slowLog.Start("search")
	defer slowLog.Stop("search")

	for _, pair := range result.Grid {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		pairLogger := logger.With().
			Str("pickupDate", pair.PickupKey()).
			Str("dropoffDate", pair.DropoffKey()).
			Logger()

		if pair.Inverted() {
			pairLogger.Debug().Msg("Dropoff precedes pickup, querying anyway")
		}

		slowLog.Start(pair.String())
		quotes, err := s.fetcher.FetchAvailability(ctx, s.availabilityParams(request, pair), &pairLogger)
		slowLog.Stop(pair.String())

		if err != nil {
			if schema.HasCode(err, schema.AuthFailure) {
				return result, err
			}

			pairLogger.Warn().Err(err).Msg("Failed to get car availability")
			result.Failures = append(result.Failures, PairFailure{
				Pair:    pair,
				Code:    errorCode(err),
				Message: err.Error(),
			})
			continue
		}

		best, ok := Cheapest(quotes)
		if !ok {
			pairLogger.Info().Msg("No vehicles available")
			result.Unavailable = append(result.Unavailable, pair)
			continue
		}

		if result.Matrix.Record(pair, best) {
			pairLogger.Debug().
				Str("vehicleClass", best.ClassName).
				Str("price", best.Total.String()).
				Msg("Recorded best quote")
		}
	}

	return result, nil
}

func (s *Searcher) availabilityParams(request Request, pair DatePair) schema.AvailabilityParams {
	return schema.AvailabilityParams{
		PickupDate:      pair.Pickup.Time,
		PickupTime:      request.PickupTime,
		PickupLocation:  request.Location,
		DropoffDate:     pair.Dropoff.Time,
		DropoffTime:     request.DropoffTime,
		DropoffLocation: request.Location,
		CountryCode:     request.CountryCode,
	}
}

// errorCode picks the most specific category in err's chain.
func errorCode(err error) schema.ErrorCode {
	for _, code := range []schema.ErrorCode{schema.TimeoutError, schema.ConnectionError, schema.SupplierError, schema.AvailabilityFailure} {
		if schema.HasCode(err, code) {
			return code
		}
	}

	return schema.SupplierError
}
