package json

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const vehiclesSchema = `{
	"type": "object",
	"required": ["vehicles"],
	"properties": {
		"vehicles": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"category": {"type": "object"},
					"rate_totals": {"type": "object"}
				}
			}
		}
	}
}`

const locationsSchema = `{
	"type": "object",
	"required": ["locations"],
	"properties": {
		"locations": {
			"type": "array",
			"items": {"type": "object"}
		}
	}
}`

var (
	vehiclesSchemaLoader  = gojsonschema.NewStringLoader(vehiclesSchema)
	locationsSchemaLoader = gojsonschema.NewStringLoader(locationsSchema)
)

func ValidateVehicles(body []byte) error {
	return validate(vehiclesSchemaLoader, body)
}

func ValidateLocations(body []byte) error {
	return validate(locationsSchemaLoader, body)
}

func validate(schemaLoader gojsonschema.JSONLoader, body []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("malformed response body: %w", err)
	}

	if result.Valid() {
		return nil
	}

	messages := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		messages = append(messages, e.String())
	}

	return fmt.Errorf("unexpected response body: %s", strings.Join(messages, "; "))
}
