package schema_test

import (
	"errors"
	"fmt"
	"testing"

	"bitbucket.org/crgw/flexrates/internal/schema"
	"github.com/stretchr/testify/assert"
)

func TestSupplierResponseError(t *testing.T) {
	t.Run("should keep the transport error as the cause", func(t *testing.T) {
		cause := schema.NewTimeoutError("deadline exceeded")
		err := schema.Wrap(schema.AvailabilityFailure, "failed to get car availability", cause)

		assert.Equal(t, "AVAILABILITY_FAILURE: failed to get car availability: TIMEOUT_ERROR: deadline exceeded", err.Error())
		assert.True(t, schema.HasCode(err, schema.AvailabilityFailure))
		assert.True(t, schema.HasCode(err, schema.TimeoutError))
		assert.False(t, schema.HasCode(err, schema.AuthFailure))
	})

	t.Run("should be found through fmt wrapping", func(t *testing.T) {
		err := fmt.Errorf("search aborted: %w", schema.Wrap(schema.AuthFailure, "token endpoint rejected credentials", nil))

		assert.True(t, schema.HasCode(err, schema.AuthFailure))
		assert.False(t, schema.HasCode(errors.New("plain"), schema.AuthFailure))
		assert.False(t, schema.HasCode(nil, schema.AuthFailure))
	})
}
