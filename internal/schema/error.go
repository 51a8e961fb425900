package schema

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	AuthFailure           ErrorCode = "AUTH_FAILURE"
	LocationLookupFailure ErrorCode = "LOCATION_LOOKUP_FAILURE"
	AvailabilityFailure   ErrorCode = "AVAILABILITY_FAILURE"
	RateFailure           ErrorCode = "RATE_FAILURE"
	TimeoutError          ErrorCode = "TIMEOUT_ERROR"
	ConnectionError       ErrorCode = "CONNECTION_ERROR"
	SupplierError         ErrorCode = "SUPPLIER_ERROR"
)

type SupplierResponseError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

type SupplierResponseErrors []SupplierResponseError

func (e SupplierResponseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e SupplierResponseError) Unwrap() error {
	return e.Cause
}

// Wrap re-categorizes err under code, keeping the original as the cause.
func Wrap(code ErrorCode, msg string, err error) SupplierResponseError {
	if err != nil {
		msg = msg + ": " + err.Error()
	}

	return SupplierResponseError{
		Code:    code,
		Message: msg,
		Cause:   err,
	}
}

// HasCode reports whether any error in err's chain carries code.
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		var e SupplierResponseError
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Cause
	}

	return false
}

func NewSupplierError(msg string) SupplierResponseError {
	return SupplierResponseError{
		Code:    SupplierError,
		Message: msg,
	}
}

func NewTimeoutError(msg string) SupplierResponseError {
	return SupplierResponseError{
		Code:    TimeoutError,
		Message: msg,
	}
}

func NewConnectionError(msg string) SupplierResponseError {
	return SupplierResponseError{
		Code:    ConnectionError,
		Message: msg,
	}
}
