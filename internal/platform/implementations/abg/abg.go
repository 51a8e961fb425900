package abg

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"bitbucket.org/crgw/flexrates/internal/schema"
	"bitbucket.org/crgw/flexrates/internal/tools/requesting"
	"github.com/google/go-querystring/query"
	"github.com/rs/zerolog"
)

const (
	DefaultApiUrl = "https://stage.abgapiservices.com"
	DefaultBrand  = "Avis"

	tokenPath        = "/oauth/token/v1"
	locationsPath    = "/cars/locations/v1"
	availabilityPath = "/cars/catalog/v1/vehicles"
	ratePath         = "/cars/catalog/v1/vehicles/rates"
)

type Configuration struct {
	ClientId     string
	ClientSecret string
	ApiUrl       string
	Brand        string
	// Zero leaves requests without a deadline.
	Timeout time.Duration
}

type abgCar struct {
	configuration Configuration
	httpTransport http.RoundTripper
	token         *accessToken
	sync.Mutex
}

func (a *abgCar) Brand() string {
	return a.configuration.Brand
}

func (a *abgCar) client(logger *zerolog.Logger) *http.Client {
	return &http.Client{
		Timeout: a.configuration.Timeout,
		Transport: &requesting.InterceptorTransport{
			Transport: a.httpTransport,
			Middlewares: []requesting.TransportMiddleware{
				requesting.NewLoggingTransportMiddleware(logger),
				requesting.NewBucketTransportMiddleware(),
			},
		},
	}
}

// get issues an authorized GET against the supplier and returns the raw body
// of a 2xx response.
func (a *abgCar) get(
	ctx context.Context,
	client *http.Client,
	token string,
	name schema.SupplierRequestName,
	path string,
	params any,
) ([]byte, *schema.SupplierResponseError) {
	v, err := query.Values(params)
	if err != nil {
		e := schema.NewSupplierError(err.Error())
		return nil, &e
	}

	url := fmt.Sprintf("%v%v?%v", a.configuration.ApiUrl, path, v.Encode())
	c := schema.WithRequestingType(ctx, name)

	httpRequest, err := http.NewRequestWithContext(c, http.MethodGet, url, http.NoBody)
	if err != nil {
		e := schema.NewSupplierError(err.Error())
		return nil, &e
	}
	httpRequest.Header.Set("Authorization", "Bearer "+token)
	httpRequest.Header.Set("Accept", "application/json")
	httpRequest.Header.Set("client_id", a.configuration.ClientId)

	rs, e := requesting.RequestErrors(client.Do(httpRequest))
	if e != nil {
		return nil, e
	}
	defer rs.Body.Close()

	bodyBytes, err := io.ReadAll(rs.Body)
	if err != nil {
		e := schema.NewConnectionError(err.Error())
		return nil, &e
	}

	return bodyBytes, nil
}

func New(configuration Configuration) *abgCar {
	if configuration.ApiUrl == "" {
		configuration.ApiUrl = DefaultApiUrl
	}
	configuration.ApiUrl = strings.TrimRight(configuration.ApiUrl, "/")

	if configuration.Brand == "" {
		configuration.Brand = DefaultBrand
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()

	return &abgCar{
		configuration: configuration,
		httpTransport: transport,
	}
}
