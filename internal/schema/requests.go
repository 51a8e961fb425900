package schema

type LocationsRequestParams struct {
	CountryCode string `form:"country_code" binding:"required,len=2"`
	Keyword     string `form:"keyword" binding:"required"`
}

type MatrixRequestParams struct {
	Location    string `form:"location" binding:"required"`
	CountryCode string `form:"country_code"`
	PickupDate  string `form:"pickup_date" binding:"required"`
	PickupTime  string `form:"pickup_time"`
	DropoffDate string `form:"dropoff_date" binding:"required"`
	DropoffTime string `form:"dropoff_time"`
	// Render every generated date instead of only the ones with a quote.
	FullGrid bool `form:"full_grid"`
}
