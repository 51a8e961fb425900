package platform

import (
	"fmt"
	"net/http"

	"bitbucket.org/crgw/flexrates/internal/config"
	"bitbucket.org/crgw/flexrates/internal/platform/errors"
	"bitbucket.org/crgw/flexrates/internal/platform/factory"
	"bitbucket.org/crgw/flexrates/internal/platform/interfaces"
	platformMiddleware "bitbucket.org/crgw/flexrates/internal/platform/middleware"
	"bitbucket.org/crgw/flexrates/internal/schema"
	"bitbucket.org/crgw/flexrates/internal/search"
	"bitbucket.org/crgw/flexrates/internal/tools/responding"
	"bitbucket.org/crgw/flexrates/internal/tools/slowlog"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func RegisterRoutes(
	router *gin.Engine,
	factory *factory.Factory,
	searchOptions ...search.Option,
) {
	group := router.Group(
		"/:platform",
		platformMiddleware.PreparePlatform(factory),
		platformMiddleware.TapLogger,
	)

	group.GET("/locations",
		platformMiddleware.PrepareParams(schema.LocationsRequestParams{}),
		func(ctx *gin.Context) {
			platformWithLocationsRequest, ok := ctx.MustGet(platformMiddleware.PlatformKey).(interfaces.WithLocations)
			if !ok {
				responding.HandleError(ctx, http.StatusBadRequest, "Locations not implemented", errors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*schema.LocationsRequestParams)
			if !ok {
				responding.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			logger := ctx.MustGet("logger").(*zerolog.Logger)

			bucket := schema.NewSupplierRequestsBucket()
			c := schema.WithRequestsBucket(ctx.Request.Context(), bucket)

			locations, err := platformWithLocationsRequest.GetLocations(c, schema.LocationsParams{
				CountryCode: params.CountryCode,
				Keyword:     params.Keyword,
			}, logger)
			if err != nil {
				responding.HandleError(ctx, supplierStatus(err), "Failed requesting locations", err)
				return
			}

			ctx.JSON(http.StatusOK, LocationsResponse{
				Locations:        locations,
				SupplierRequests: bucket.SupplierRequests(),
			})
		},
	)

	group.GET("/matrix",
		platformMiddleware.PrepareParams(schema.MatrixRequestParams{}),
		func(ctx *gin.Context) {
			logger := ctx.MustGet("logger").(*zerolog.Logger)

			slowLog := slowlog.CreateLogger(logger, 0)
			key := fmt.Sprintf("%s:matrix", ctx.Params.ByName("platform"))
			slowLog.Start(key)
			defer slowLog.Stop(key)

			platformWithAvailability, ok := ctx.MustGet(platformMiddleware.PlatformKey).(interfaces.WithAvailability)
			if !ok {
				responding.HandleError(ctx, http.StatusBadRequest, "Availability not implemented", errors.ErrorNotImplemented)
				return
			}

			params, ok := ctx.MustGet(platformMiddleware.ParamsKey).(*schema.MatrixRequestParams)
			if !ok {
				responding.HandleError(ctx, http.StatusInternalServerError, "Bad request params", nil)
				return
			}

			request, err := matrixSearchRequest(*params)
			if err != nil {
				responding.HandleError(ctx, http.StatusBadRequest, "Invalid search params", err)
				return
			}

			bucket := schema.NewSupplierRequestsBucket()
			c := schema.WithRequestsBucket(ctx.Request.Context(), bucket)

			result, err := search.NewSearcher(platformWithAvailability, searchOptions...).Search(c, request, logger)
			if err != nil {
				responding.HandleError(ctx, supplierStatus(err), "Failed requesting matrix", err)
				return
			}

			response := NewMatrixResponse(request.Location, result, params.FullGrid, bucket.SupplierRequests())

			ctx.JSON(http.StatusOK, response)
		},
	)
}

func matrixSearchRequest(params schema.MatrixRequestParams) (search.Request, error) {
	cfg := config.Config{
		CountryCode: params.CountryCode,
		PickupDate:  params.PickupDate,
		PickupTime:  params.PickupTime,
		DropoffDate: params.DropoffDate,
		DropoffTime: params.DropoffTime,
	}

	if cfg.CountryCode == "" {
		cfg.CountryCode = config.DefaultCountryCode
	}
	if cfg.PickupTime == "" {
		cfg.PickupTime = config.DefaultTime
	}
	if cfg.DropoffTime == "" {
		cfg.DropoffTime = config.DefaultTime
	}

	return cfg.SearchRequest(params.Location)
}

// supplierStatus maps fatal supplier failures to a bad gateway and anything
// else to an internal error.
func supplierStatus(err error) int {
	if schema.HasCode(err, schema.AuthFailure) || schema.HasCode(err, schema.LocationLookupFailure) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
