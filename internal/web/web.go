package web

import (
	"net/http"
	"os"
	"time"

	"bitbucket.org/crgw/flexrates/internal/platform"
	"bitbucket.org/crgw/flexrates/internal/platform/factory"
	"bitbucket.org/crgw/flexrates/internal/search"
	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Options struct {
	// Served at /openapi.json and used for request validation.
	Document      []byte
	SlowThreshold time.Duration
}

func SetupRouter(log *zerolog.Logger, factory *factory.Factory, options Options) (*gin.Engine, error) {
	startTime := time.Now()

	document := options.Document
	if openApiLocation := os.Getenv("OPENAPI_LOCATION"); openApiLocation != "" {
		content, err := os.ReadFile(openApiLocation)
		if err != nil {
			return nil, err
		}
		document = content
	}

	validator, err := OpenapiValidator(document)
	if err != nil {
		return nil, err
	}

	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.
		Use(StartRequest).
		Use(CorrelationId).
		Use(RegisterLogger(log)).
		Use(TraceLog).
		Use(PanicRecovery).
		Use(validator)

	router.GET("/status", func(c *gin.Context) {
		response := struct {
			Uptime float64 `json:"uptime"`
		}{
			Uptime: time.Since(startTime).Seconds(),
		}

		c.JSON(http.StatusOK, response)
	})

	router.GET("/openapi.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", document)
	})

	pprof.Register(router)

	platform.RegisterRoutes(
		router,
		factory,
		search.WithSlowThreshold(options.SlowThreshold),
	)

	return router, nil
}
