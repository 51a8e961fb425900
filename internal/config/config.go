package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"bitbucket.org/crgw/flexrates/internal/platform/implementations/abg"
	"bitbucket.org/crgw/flexrates/internal/schema"
	"bitbucket.org/crgw/flexrates/internal/search"
	"github.com/joho/godotenv"
)

const (
	DefaultCountryCode = "US"
	DefaultTime        = "20:00:00"
	DefaultPort        = "8080"
)

var (
	ErrMissingCredentials = errors.New("ABG client id and secret are required")
	ErrMissingLocation    = errors.New("a location code is required")
)

type Config struct {
	ClientId     string
	ClientSecret string
	ApiUrl       string
	Brand        string
	Timeout      time.Duration

	CountryCode string
	Keyword     string
	Location    string

	PickupDate  string
	PickupTime  string
	DropoffDate string
	DropoffTime string

	Port          string
	LogLevel      string
	LogFormat     string
	SlowThreshold time.Duration
}

// Load reads the given env files, if present, into the process environment
// and builds the configuration from it. Variables already set win over the
// files.
func Load(envFiles ...string) Config {
	_ = godotenv.Load(envFiles...)

	return FromEnv()
}

func FromEnv() Config {
	return Config{
		ClientId:      os.Getenv("ABG_CLIENT_ID"),
		ClientSecret:  os.Getenv("ABG_CLIENT_SECRET"),
		ApiUrl:        getenv("ABG_API_URL", abg.DefaultApiUrl),
		Brand:         getenv("ABG_BRAND", abg.DefaultBrand),
		Timeout:       millis(os.Getenv("ABG_TIMEOUT")),
		CountryCode:   getenv("COUNTRY_CODE", DefaultCountryCode),
		Keyword:       os.Getenv("KEYWORD"),
		Location:      os.Getenv("LOCATION_CODE"),
		PickupDate:    os.Getenv("PICKUP_DATE"),
		PickupTime:    getenv("PICKUP_TIME", DefaultTime),
		DropoffDate:   os.Getenv("DROPOFF_DATE"),
		DropoffTime:   getenv("DROPOFF_TIME", DefaultTime),
		Port:          getenv("PORT", DefaultPort),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		LogFormat:     os.Getenv("LOG_FORMAT"),
		SlowThreshold: millis(os.Getenv("SLOW_THRESHOLD")),
	}
}

func (c Config) ValidateCredentials() error {
	if c.ClientId == "" || c.ClientSecret == "" {
		return ErrMissingCredentials
	}

	return nil
}

func (c Config) ABG() abg.Configuration {
	return abg.Configuration{
		ClientId:     c.ClientId,
		ClientSecret: c.ClientSecret,
		ApiUrl:       c.ApiUrl,
		Brand:        c.Brand,
		Timeout:      c.Timeout,
	}
}

// SearchRequest validates the date and time options and turns them into a
// search over the given location.
func (c Config) SearchRequest(location string) (search.Request, error) {
	if location == "" {
		return search.Request{}, ErrMissingLocation
	}

	pickupDate, dropoffDate, err := c.schedule()
	if err != nil {
		return search.Request{}, err
	}

	return search.Request{
		PickupDate:  pickupDate,
		PickupTime:  c.PickupTime,
		DropoffDate: dropoffDate,
		DropoffTime: c.DropoffTime,
		Location:    location,
		CountryCode: c.CountryCode,
	}, nil
}

// AvailabilityParams describes a single pickup and dropoff at the location,
// without any date shifting.
func (c Config) AvailabilityParams(location string) (schema.AvailabilityParams, error) {
	if location == "" {
		return schema.AvailabilityParams{}, ErrMissingLocation
	}

	pickupDate, dropoffDate, err := c.schedule()
	if err != nil {
		return schema.AvailabilityParams{}, err
	}

	return schema.AvailabilityParams{
		PickupDate:      pickupDate,
		PickupTime:      c.PickupTime,
		PickupLocation:  location,
		DropoffDate:     dropoffDate,
		DropoffTime:     c.DropoffTime,
		DropoffLocation: location,
		CountryCode:     c.CountryCode,
	}, nil
}

// ValidateSchedule checks the date and time options on their own, so a bad
// date is reported before anything is requested from the supplier.
func (c Config) ValidateSchedule() error {
	_, _, err := c.schedule()

	return err
}

func (c Config) schedule() (time.Time, time.Time, error) {
	pickupDate, err := ParseDate("pickup date", c.PickupDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	dropoffDate, err := ParseDate("dropoff date", c.DropoffDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if err := ValidateTime("pickup time", c.PickupTime); err != nil {
		return time.Time{}, time.Time{}, err
	}

	if err := ValidateTime("dropoff time", c.DropoffTime); err != nil {
		return time.Time{}, time.Time{}, err
	}

	return pickupDate, dropoffDate, nil
}

func ParseDate(name string, value string) (time.Time, error) {
	date, err := time.Parse(schema.DateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s %q, expected YYYY-MM-DD", name, value)
	}

	return date, nil
}

func ValidateTime(name string, value string) error {
	if _, err := time.Parse(schema.TimeFormat, value); err != nil {
		return fmt.Errorf("invalid %s %q, expected HH:MM:SS", name, value)
	}

	return nil
}

func getenv(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func millis(value string) time.Duration {
	ms, err := strconv.Atoi(value)
	if err != nil || ms < 0 {
		return 0
	}

	return time.Duration(ms) * time.Millisecond
}
