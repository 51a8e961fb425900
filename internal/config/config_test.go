package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		for _, key := range []string{"ABG_API_URL", "ABG_BRAND", "COUNTRY_CODE", "PICKUP_TIME", "DROPOFF_TIME", "PORT", "ABG_TIMEOUT"} {
			t.Setenv(key, "")
		}

		cfg := FromEnv()

		assert.Equal(t, "https://stage.abgapiservices.com", cfg.ApiUrl)
		assert.Equal(t, "Avis", cfg.Brand)
		assert.Equal(t, "US", cfg.CountryCode)
		assert.Equal(t, "20:00:00", cfg.PickupTime)
		assert.Equal(t, "20:00:00", cfg.DropoffTime)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, time.Duration(0), cfg.Timeout)
	})

	t.Run("should read the environment", func(t *testing.T) {
		t.Setenv("ABG_CLIENT_ID", "id")
		t.Setenv("ABG_CLIENT_SECRET", "secret")
		t.Setenv("ABG_BRAND", "Budget")
		t.Setenv("ABG_TIMEOUT", "2500")
		t.Setenv("KEYWORD", "Denver")
		t.Setenv("PICKUP_DATE", "2024-12-30")

		cfg := FromEnv()

		assert.Equal(t, "id", cfg.ClientId)
		assert.Equal(t, "secret", cfg.ClientSecret)
		assert.Equal(t, "Budget", cfg.Brand)
		assert.Equal(t, 2500*time.Millisecond, cfg.Timeout)
		assert.Equal(t, "Denver", cfg.Keyword)
		assert.Equal(t, "2024-12-30", cfg.PickupDate)
		assert.NoError(t, cfg.ValidateCredentials())
	})
}

func TestLoad(t *testing.T) {
	t.Setenv("KEYWORD", "")
	t.Setenv("LOCATION_CODE", "")
	os.Unsetenv("KEYWORD")
	os.Unsetenv("LOCATION_CODE")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("KEYWORD=Newark\nLOCATION_CODE=EWR\n"), 0o600))

	cfg := Load(envFile)

	assert.Equal(t, "Newark", cfg.Keyword)
	assert.Equal(t, "EWR", cfg.Location)
}

func TestSearchRequest(t *testing.T) {
	valid := Config{
		CountryCode: "US",
		PickupDate:  "2024-08-10",
		PickupTime:  "20:00:00",
		DropoffDate: "2024-08-25",
		DropoffTime: "10:00:00",
	}

	t.Run("should build a search request", func(t *testing.T) {
		request, err := valid.SearchRequest("DEN")
		require.NoError(t, err)

		assert.Equal(t, "2024-08-10", request.PickupDate.Format("2006-01-02"))
		assert.Equal(t, "2024-08-25", request.DropoffDate.Format("2006-01-02"))
		assert.Equal(t, "20:00:00", request.PickupTime)
		assert.Equal(t, "10:00:00", request.DropoffTime)
		assert.Equal(t, "DEN", request.Location)
		assert.Equal(t, "US", request.CountryCode)
		assert.Nil(t, request.Offsets)
	})

	t.Run("should reject invalid options", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(c *Config)
			message string
		}{
			{"pickup date", func(c *Config) { c.PickupDate = "10/08/2024" }, `invalid pickup date "10/08/2024", expected YYYY-MM-DD`},
			{"dropoff date", func(c *Config) { c.DropoffDate = "" }, `invalid dropoff date "", expected YYYY-MM-DD`},
			{"pickup time", func(c *Config) { c.PickupTime = "8pm" }, `invalid pickup time "8pm", expected HH:MM:SS`},
			{"dropoff time", func(c *Config) { c.DropoffTime = "25:00:00" }, `invalid dropoff time "25:00:00", expected HH:MM:SS`},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				cfg := valid
				test.mutate(&cfg)

				_, err := cfg.SearchRequest("DEN")
				assert.EqualError(t, err, test.message)
			})
		}
	})

	t.Run("should require a location", func(t *testing.T) {
		_, err := valid.SearchRequest("")
		assert.ErrorIs(t, err, ErrMissingLocation)
	})

	t.Run("should require credentials", func(t *testing.T) {
		assert.ErrorIs(t, Config{ClientId: "id"}.ValidateCredentials(), ErrMissingCredentials)
	})
}

func TestAvailabilityParams(t *testing.T) {
	cfg := Config{
		CountryCode: "US",
		PickupDate:  "2024-08-10",
		PickupTime:  "20:00:00",
		DropoffDate: "2024-08-25",
		DropoffTime: "20:00:00",
	}

	params, err := cfg.AvailabilityParams("DEN")
	require.NoError(t, err)

	assert.Equal(t, "DEN", params.PickupLocation)
	assert.Equal(t, "DEN", params.DropoffLocation)
	assert.Equal(t, "2024-08-10T20:00:00", params.PickupDateTime())
	assert.Equal(t, "2024-08-25T20:00:00", params.DropoffDateTime())

	_, err = cfg.AvailabilityParams("")
	assert.ErrorIs(t, err, ErrMissingLocation)

	cfg.PickupDate = "tomorrow"
	assert.EqualError(t, cfg.ValidateSchedule(), `invalid pickup date "tomorrow", expected YYYY-MM-DD`)
}
