package models

import "fmt"

// Coordinates is a geographic point extracted from a geocoder response.
type Coordinates struct {
	Latitude  float64 `json:"latitude" example:"48.8566"`
	Longitude float64 `json:"longitude" example:"2.3522"`
}

// Validate checks that both values lie in the valid geographic ranges.
func (c Coordinates) Validate() error {
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", c.Longitude)
	}
	return nil
}

func (c Coordinates) String() string {
	return fmt.Sprintf("lat: %.4f lon: %.4f", c.Latitude, c.Longitude)
}
