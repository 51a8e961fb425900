package json

import (
	"bitbucket.org/crgw/flexrates/internal/schema"
	"bitbucket.org/crgw/flexrates/internal/tools/converting"
)

type LocationsRS struct {
	Locations []LocationsRSLocation `json:"locations"`
}

type LocationsRSLocation struct {
	Code    *string                    `json:"code,omitempty"`
	Name    *string                    `json:"name,omitempty"`
	Address *LocationsRSLocationAddress `json:"address,omitempty"`
}

type LocationsRSLocationAddress struct {
	AddressLine1 *string `json:"address_line_1,omitempty"`
	AddressLine2 *string `json:"address_line_2,omitempty"`
	City         *string `json:"city,omitempty"`
	StateName    *string `json:"state_name,omitempty"`
	PostalCode   *string `json:"postal_code,omitempty"`
	CountryCode  *string `json:"country_code,omitempty"`
}

func (l *LocationsRSLocation) ToLocation() schema.Location {
	location := schema.Location{
		Code: converting.UnwrapOr(l.Code, "Unknown code"),
		Name: converting.UnwrapOr(l.Name, "Unknown name"),
	}

	address := converting.Unwrap(l.Address)
	location.Address = schema.Address{
		Line1:       converting.UnwrapOr(address.AddressLine1, "Unknown address"),
		Line2:       converting.Unwrap(address.AddressLine2),
		City:        converting.UnwrapOr(address.City, "Unknown city"),
		State:       converting.Unwrap(address.StateName),
		PostalCode:  converting.Unwrap(address.PostalCode),
		CountryCode: converting.Unwrap(address.CountryCode),
	}

	return location
}
