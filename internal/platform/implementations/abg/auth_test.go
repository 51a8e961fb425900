package abg_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bitbucket.org/crgw/flexrates/internal/platform/implementations/abg"
	"bitbucket.org/crgw/flexrates/internal/schema"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	out := &bytes.Buffer{}
	log := zerolog.New(out)

	t.Run("should send client credentials as headers", func(t *testing.T) {
		handlerFuncCalled := false

		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerFuncCalled = true

			assert.Equal(t, "/oauth/token/v1", r.RequestURI)
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
			assert.Equal(t, "test-client-id", r.Header.Get("client_id"))
			assert.Equal(t, "test-client-secret", r.Header.Get("client_secret"))

			w.WriteHeader(http.StatusOK)
			w.Write(fixture("token.json"))
		}))
		defer testServer.Close()

		service := abg.New(defaultConfiguration(testServer.URL))
		token, err := service.Authenticate(context.Background(), &log)

		require.NoError(t, err)
		assert.True(t, handlerFuncCalled)
		assert.Equal(t, "test-token", token)
	})

	t.Run("should reuse the token until it expires", func(t *testing.T) {
		now := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
		abg.CurrentTimeFunc = func() time.Time { return now }
		defer func() { abg.CurrentTimeFunc = time.Now }()

		testServer, tokenCalls := supplierServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		service := abg.New(defaultConfiguration(testServer.URL))
		ctx := context.Background()

		_, err := service.Authenticate(ctx, &log)
		require.NoError(t, err)
		_, err = service.Authenticate(ctx, &log)
		require.NoError(t, err)
		assert.Equal(t, 1, *tokenCalls)

		now = now.Add(time.Hour)
		_, err = service.Authenticate(ctx, &log)
		require.NoError(t, err)
		assert.Equal(t, 2, *tokenCalls)
	})

	t.Run("should fall back to a default lifetime", func(t *testing.T) {
		tests := []struct {
			name     string
			body     string
			lifetime time.Duration
			warning  bool
		}{
			{"missing expires_in", `{"access_token": "test-token"}`, abg.DefaultTokenLifetime, true},
			{"zero expires_in", `{"access_token": "test-token", "expires_in": 0}`, abg.DefaultTokenLifetime, true},
			{"fractional expires_in", `{"access_token": "test-token", "expires_in": 1799.5}`, 1799 * time.Second, false},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				now := time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)
				abg.CurrentTimeFunc = func() time.Time { return now }
				defer func() { abg.CurrentTimeFunc = time.Now }()

				tokenCalls := 0
				testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					tokenCalls++
					w.WriteHeader(http.StatusOK)
					w.Write([]byte(test.body))
				}))
				defer testServer.Close()

				out := &bytes.Buffer{}
				log := zerolog.New(out)
				service := abg.New(defaultConfiguration(testServer.URL))
				ctx := context.Background()

				_, err := service.Authenticate(ctx, &log)
				require.NoError(t, err)

				now = now.Add(test.lifetime - time.Second)
				_, err = service.Authenticate(ctx, &log)
				require.NoError(t, err)
				assert.Equal(t, 1, tokenCalls)

				now = now.Add(2 * time.Second)
				_, err = service.Authenticate(ctx, &log)
				require.NoError(t, err)
				assert.Equal(t, 2, tokenCalls)

				if test.warning {
					assert.Contains(t, out.String(), "Unusable access token lifetime, using default")
				} else {
					assert.NotContains(t, out.String(), "Unusable access token lifetime")
				}
			})
		}
	})

	t.Run("should fail on rejected credentials", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid_client"}`))
		}))
		defer testServer.Close()

		service := abg.New(defaultConfiguration(testServer.URL))
		_, err := service.Authenticate(context.Background(), &log)

		require.Error(t, err)
		assert.True(t, schema.HasCode(err, schema.AuthFailure))
		assert.True(t, schema.HasCode(err, schema.SupplierError))
		assert.Contains(t, err.Error(), "supplier returned status code 401")
		assert.Contains(t, err.Error(), "invalid_client")
	})

	t.Run("should fail on malformed token responses", func(t *testing.T) {
		tests := []struct {
			name string
			body string
		}{
			{"not json", `<html>maintenance</html>`},
			{"missing token", `{"expires_in": 3600}`},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
					w.Write([]byte(test.body))
				}))
				defer testServer.Close()

				service := abg.New(defaultConfiguration(testServer.URL))
				_, err := service.Authenticate(context.Background(), &log)

				require.Error(t, err)
				assert.True(t, schema.HasCode(err, schema.AuthFailure))
			})
		}
	})
}
