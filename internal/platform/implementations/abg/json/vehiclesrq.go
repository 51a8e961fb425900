package json

type VehiclesRQ struct {
	Brand           string `url:"brand"`
	PickupDate      string `url:"pickup_date"`
	PickupLocation  string `url:"pickup_location"`
	DropoffDate     string `url:"dropoff_date"`
	DropoffLocation string `url:"dropoff_location"`
	CountryCode     string `url:"country_code"`
}

type RatesRQ struct {
	VehiclesRQ
	RateCode         string `url:"rate_code"`
	VehicleClassCode string `url:"vehicle_class_code"`
}
