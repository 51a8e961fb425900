package api

import _ "embed"

// Document is the OpenAPI description of the HTTP API.
//
//go:embed openapi.json
var Document []byte
