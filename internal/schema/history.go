package schema

import (
	"context"
	"sync"
	"time"
)

type Key string

const (
	RequestingTypeKey Key = "requestingType"
	requestsBucketKey Key = "supplierRequestsBucket"
)

type SupplierRequestName string

const (
	Auth         SupplierRequestName = "auth"
	Locations    SupplierRequestName = "locations"
	Availability SupplierRequestName = "availability"
	Rate         SupplierRequestName = "rate"
)

type SupplierRequest struct {
	Name          SupplierRequestName `json:"name"`
	Method        string              `json:"method"`
	Url           string              `json:"url"`
	StatusCode    int                 `json:"statusCode"`
	Duration      int                 `json:"duration"`
	StartDateTime time.Time           `json:"startDateTime"`
}

type SupplierRequests []SupplierRequest

type SupplierRequestsBucket struct {
	supplierRequests SupplierRequests
	sync.Mutex
}

func NewSupplierRequestsBucket() *SupplierRequestsBucket {
	return &SupplierRequestsBucket{
		supplierRequests: SupplierRequests{},
	}
}

func (r *SupplierRequestsBucket) SupplierRequests() SupplierRequests {
	r.Lock()
	defer r.Unlock()

	requests := make(SupplierRequests, len(r.supplierRequests))
	copy(requests, r.supplierRequests)

	return requests
}

func (r *SupplierRequestsBucket) FinishedRequest(
	requestType SupplierRequestName,
	startTime time.Time,
	statusCode int,
	method string,
	url string,
) {
	historyRequest := SupplierRequest{
		Name:          requestType,
		Method:        method,
		Url:           url,
		StatusCode:    statusCode,
		Duration:      int(time.Since(startTime).Milliseconds()),
		StartDateTime: startTime,
	}

	r.Lock()
	r.supplierRequests = append(r.supplierRequests, historyRequest)
	r.Unlock()
}

// WithRequestsBucket makes every supplier request issued with the returned
// context land in bucket.
func WithRequestsBucket(ctx context.Context, bucket *SupplierRequestsBucket) context.Context {
	return context.WithValue(ctx, requestsBucketKey, bucket)
}

func RequestsBucketFromContext(ctx context.Context) (*SupplierRequestsBucket, bool) {
	bucket, ok := ctx.Value(requestsBucketKey).(*SupplierRequestsBucket)
	return bucket, ok && bucket != nil
}

func WithRequestingType(ctx context.Context, name SupplierRequestName) context.Context {
	return context.WithValue(ctx, RequestingTypeKey, name)
}

func RequestingTypeFromContext(ctx context.Context) SupplierRequestName {
	name, _ := ctx.Value(RequestingTypeKey).(SupplierRequestName)
	return name
}
