package schema

type Address struct {
	Line1       string `json:"addressLine1,omitempty"`
	Line2       string `json:"addressLine2,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	CountryCode string `json:"countryCode,omitempty"`
}

type Location struct {
	Code    string  `json:"code"`
	Name    string  `json:"name"`
	Address Address `json:"address"`
}

type LocationsParams struct {
	CountryCode string
	Keyword     string
}
