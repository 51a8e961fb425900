package abg_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"bitbucket.org/crgw/flexrates/internal/platform/implementations/abg"
	"bitbucket.org/crgw/flexrates/internal/schema"
)

func defaultConfiguration(url string) abg.Configuration {
	return abg.Configuration{
		ClientId:     "test-client-id",
		ClientSecret: "test-client-secret",
		ApiUrl:       url,
		Brand:        "Avis",
	}
}

func defaultAvailabilityParams() schema.AvailabilityParams {
	pickup, _ := time.Parse(schema.DateFormat, "2024-08-10")
	dropoff, _ := time.Parse(schema.DateFormat, "2024-08-25")

	return schema.AvailabilityParams{
		PickupDate:      pickup,
		PickupTime:      "20:00:00",
		PickupLocation:  "DEN",
		DropoffDate:     dropoff,
		DropoffTime:     "20:00:00",
		DropoffLocation: "DEN",
		CountryCode:     "US",
	}
}

// supplierServer answers the token endpoint from testdata and hands every
// other request to handler.
func supplierServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *int) {
	t.Helper()

	tokenCalls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/oauth/token/v1" {
			tokenCalls++
			w.WriteHeader(http.StatusOK)
			w.Write(fixture("token.json"))
			return
		}

		handler(w, r)
	}))
	t.Cleanup(server.Close)

	return server, &tokenCalls
}

func fixture(name string) []byte {
	body, _ := os.ReadFile("./testdata/" + name)

	return body
}
