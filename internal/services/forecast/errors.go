package forecast

import "fmt"

// Stage names the pipeline step a failure belongs to.
type Stage string

const (
	StageGeocode  Stage = "geocode"
	StageForecast Stage = "forecast"
)

// StageError tags any remote or parsing failure with the pipeline stage it
// occurred in. The underlying error stays reachable via errors.As.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// InvalidInputError reports bad caller input, detected before any network
// call is made.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}
