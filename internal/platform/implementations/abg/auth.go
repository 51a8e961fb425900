package abg

import (
	"context"
	jsonEncoding "encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"bitbucket.org/crgw/flexrates/internal/platform/implementations/abg/json"
	"bitbucket.org/crgw/flexrates/internal/schema"
	"bitbucket.org/crgw/flexrates/internal/tools/requesting"
	"github.com/rs/zerolog"
)

// CurrentTimeFunc Current time. Can be mocked for testing.
var CurrentTimeFunc = time.Now

// DefaultTokenLifetime is used when the token response has no usable
// expires_in.
const DefaultTokenLifetime = 5 * time.Minute

type accessToken struct {
	value     string
	expiresAt time.Time
}

func (t *accessToken) valid() bool {
	return t != nil && CurrentTimeFunc().Before(t.expiresAt)
}

// Authenticate returns a bearer token, requesting a new one from the supplier
// only when none is held or the held one has expired.
func (a *abgCar) Authenticate(ctx context.Context, logger *zerolog.Logger) (string, error) {
	a.Lock()
	defer a.Unlock()

	if a.token.valid() {
		return a.token.value, nil
	}

	authRequest := authRequest{
		configuration: a.configuration,
	}

	token, err := authRequest.Execute(ctx, a.client(logger), logger)
	if err != nil {
		return "", err
	}

	a.token = &token

	return token.value, nil
}

type authRequest struct {
	configuration     Configuration
	jsonTokenResponse json.TokenRS
}

func (a *authRequest) Execute(ctx context.Context, client *http.Client, logger *zerolog.Logger) (accessToken, error) {
	response, e := requesting.RequestErrors(a.makeRequest(ctx, client))
	if e != nil {
		return accessToken{}, schema.Wrap(schema.AuthFailure, "failed to get access token", *e)
	}
	defer response.Body.Close()

	// bind the response body to the json
	bodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return accessToken{}, schema.Wrap(schema.AuthFailure, "failed to read access token", err)
	}

	err = jsonEncoding.Unmarshal(bodyBytes, &a.jsonTokenResponse)
	if err != nil {
		return accessToken{}, schema.Wrap(schema.AuthFailure, "malformed access token response", err)
	}

	if a.jsonTokenResponse.AccessToken == "" {
		return accessToken{}, schema.Wrap(schema.AuthFailure, "malformed access token response", errors.New("access_token is empty"))
	}

	return accessToken{
		value:     a.jsonTokenResponse.AccessToken,
		expiresAt: CurrentTimeFunc().Add(a.lifetime(logger)),
	}, nil
}

func (a *authRequest) makeRequest(ctx context.Context, client *http.Client) (*http.Response, error) {
	supplierUrl := fmt.Sprintf("%v%v", a.configuration.ApiUrl, tokenPath)
	c := schema.WithRequestingType(ctx, schema.Auth)

	httpRequest, err := http.NewRequestWithContext(c, http.MethodGet, supplierUrl, http.NoBody)
	if err != nil {
		return nil, err
	}

	httpRequest.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpRequest.Header.Set("client_id", a.configuration.ClientId)
	httpRequest.Header.Set("client_secret", a.configuration.ClientSecret)

	return client.Do(httpRequest)
}

// lifetime reads expires_in as seconds. Fractions are rounded down.
func (a *authRequest) lifetime(logger *zerolog.Logger) time.Duration {
	expiresIn := a.jsonTokenResponse.ExpiresIn

	seconds, err := expiresIn.Float64()
	if err != nil || seconds < 1 {
		logger.Warn().
			Str("expiresIn", expiresIn.String()).
			Dur("lifetime", DefaultTokenLifetime).
			Msg("Unusable access token lifetime, using default")

		return DefaultTokenLifetime
	}

	return time.Duration(seconds) * time.Second
}
