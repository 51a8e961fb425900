package errors

import "errors"

var (
	ErrorNotImplemented  = errors.New("not implemented")
	ErrorUnknownPlatform = errors.New("unknown platform")
)
