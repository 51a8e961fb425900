package json

type LocationsRQ struct {
	Brand       string `url:"brand"`
	CountryCode string `url:"country_code"`
	Keyword     string `url:"keyword,omitempty"`
}
