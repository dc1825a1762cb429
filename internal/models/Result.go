package models

// Result is the outcome of one place-to-forecast run: the place as given
// by the caller, the coordinates the geocoder resolved it to, and the
// forecast text passed through from the forecaster unmodified.
type Result struct {
	Place       string      `json:"place" example:"Paris"`
	Coordinates Coordinates `json:"coordinates"`
	Forecast    string      `json:"forecast"`
}
