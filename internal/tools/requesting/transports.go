package requesting

import (
	"net/http"
	"time"

	"bitbucket.org/crgw/flexrates/internal/schema"
	"github.com/rs/zerolog"
)

type TransportMiddleware func(http.RoundTripper) http.RoundTripper

type InterceptorTransport struct {
	Transport   http.RoundTripper
	Middlewares []TransportMiddleware
}

func (t *InterceptorTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	for _, middleware := range t.Middlewares {
		transport = middleware(transport)
	}

	resp, err := transport.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}

type LoggingTransportMiddleware struct {
	Transport http.RoundTripper
	log       *zerolog.Logger
}

func NewLoggingTransportMiddleware(log *zerolog.Logger) TransportMiddleware {
	return func(rt http.RoundTripper) http.RoundTripper {
		return &LoggingTransportMiddleware{
			log:       log,
			Transport: rt,
		}
	}
}

func (t *LoggingTransportMiddleware) RoundTrip(req *http.Request) (*http.Response, error) {
	startTime := time.Now()

	message := t.log.Info().
		Str("label", "outgoing-request").
		Str("requestType", string(schema.RequestingTypeFromContext(req.Context()))).
		Str("method", req.Method).
		Str("url", req.URL.Redacted())

	defer func() {
		message.
			Float64("duration", time.Since(startTime).Seconds()).
			Msg("")
	}()

	resp, err := t.Transport.RoundTrip(req)
	if err != nil {
		message.Str("error", err.Error())
		return nil, err
	}

	message.Int("code", resp.StatusCode)

	return resp, nil
}

// BucketTransportMiddleware records finished requests into the bucket carried
// by the request context. Requests without a bucket pass straight through.
type BucketTransportMiddleware struct {
	Transport http.RoundTripper
}

func NewBucketTransportMiddleware() TransportMiddleware {
	return func(rt http.RoundTripper) http.RoundTripper {
		return &BucketTransportMiddleware{
			Transport: rt,
		}
	}
}

func (b *BucketTransportMiddleware) RoundTrip(request *http.Request) (*http.Response, error) {
	bucket, ok := schema.RequestsBucketFromContext(request.Context())
	if !ok {
		return b.Transport.RoundTrip(request)
	}

	startTime := time.Now()
	status := 0

	defer func() {
		bucket.FinishedRequest(
			schema.RequestingTypeFromContext(request.Context()),
			startTime,
			status,
			request.Method,
			request.URL.String(),
		)
	}()

	response, err := b.Transport.RoundTrip(request)
	if err != nil {
		return nil, err
	}

	status = response.StatusCode

	return response, nil
}
