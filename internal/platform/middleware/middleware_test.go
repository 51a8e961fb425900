package middleware_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	m "bitbucket.org/crgw/flexrates/internal/platform/middleware"
	"bitbucket.org/crgw/flexrates/internal/schema"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type factoryMock struct{}

func (f *factoryMock) GetPlatform(name string) (any, error) {
	if name != "avis" {
		return nil, errors.New("platform not found")
	}

	return &mockPlatform{}, nil
}

type mockPlatform struct{}

func (m *mockPlatform) Brand() string {
	return "Avis"
}

func newRouter(log *zerolog.Logger, handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("logger", log)
	})
	router.GET("/:platform/matrix", handlers...)

	return router
}

func serve(router *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	router.ServeHTTP(w, req)

	return w
}

func TestPreparePlatform(t *testing.T) {
	log := zerolog.Nop()

	t.Run("should store the resolved platform", func(t *testing.T) {
		router := newRouter(&log, m.PreparePlatform(&factoryMock{}), func(c *gin.Context) {
			_, ok := c.MustGet(m.PlatformKey).(*mockPlatform)
			assert.True(t, ok)
			c.Status(http.StatusNoContent)
		})

		w := serve(router, "/avis/matrix")

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("should match the brand case-insensitively", func(t *testing.T) {
		out := &bytes.Buffer{}
		debugLog := zerolog.New(out).Level(zerolog.DebugLevel)

		router := newRouter(&debugLog, m.PreparePlatform(&factoryMock{}), func(c *gin.Context) {
			assert.Equal(t, "avis", c.MustGet(m.BrandKey))
			c.Status(http.StatusNoContent)
		})

		w := serve(router, "/AVIS/matrix")

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, out.String(), `"brand":"avis"`)
		assert.Contains(t, out.String(), "Resolved supplier client")
	})

	t.Run("should answer 404 for an unknown platform", func(t *testing.T) {
		router := newRouter(&log, m.PreparePlatform(&factoryMock{}), func(c *gin.Context) {
			t.Fatal("handler must not run")
		})

		w := serve(router, "/hertz/matrix")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":{"message":"Failed to find platform service","details":"platform not found"}}`, w.Body.String())
	})
}

func TestPrepareParams(t *testing.T) {
	log := zerolog.Nop()

	t.Run("should bind the query string", func(t *testing.T) {
		router := newRouter(&log, m.PrepareParams(schema.MatrixRequestParams{}), func(c *gin.Context) {
			params := c.MustGet(m.ParamsKey).(*schema.MatrixRequestParams)
			assert.Equal(t, "DEN", params.Location)
			assert.Equal(t, "2024-08-10", params.PickupDate)
			assert.Equal(t, "2024-08-25", params.DropoffDate)
			assert.True(t, params.FullGrid)
			c.Status(http.StatusNoContent)
		})

		w := serve(router, "/avis/matrix?location=DEN&pickup_date=2024-08-10&dropoff_date=2024-08-25&full_grid=true")

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("should answer 400 for missing params", func(t *testing.T) {
		router := newRouter(&log, m.PrepareParams(schema.MatrixRequestParams{}), func(c *gin.Context) {
			t.Fatal("handler must not run")
		})

		w := serve(router, "/avis/matrix?location=DEN")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("should refuse a pointer", func(t *testing.T) {
		assert.Panics(t, func() {
			m.PrepareParams(&schema.MatrixRequestParams{})
		})
	})
}

func TestTapLogger(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	router := newRouter(&log, m.PreparePlatform(&factoryMock{}), m.TapLogger, func(c *gin.Context) {
		c.MustGet("logger").(*zerolog.Logger).Info().Msg("tapped")
		c.Status(http.StatusNoContent)
	})

	serve(router, "/avis/matrix")

	assert.Contains(t, out.String(), `"platform":"avis"`)
	assert.Contains(t, out.String(), `"brand":"Avis"`)
	assert.Contains(t, out.String(), `"operationId":"`)
}
