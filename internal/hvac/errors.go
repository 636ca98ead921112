package hvac

import "fmt"

// InvalidInputError is returned when a text field is empty or is not a
// number.
type InvalidInputError struct {
	Field string
	Value string
	Err   error
}

func (e *InvalidInputError) Error() string {
	if len(e.Value) == 0 {
		return fmt.Sprintf("%s input was left empty", e.Field)
	}
	return fmt.Sprintf("%s input '%s' is not a number", e.Field, e.Value)
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

// InvalidSampleError is returned by the engine when a sample cannot
// take part in a mix.
type InvalidSampleError struct {
	Index  int
	Sample AirSample
	Reason string
}

func (e *InvalidSampleError) Error() string {
	return fmt.Sprintf("invalid sample #%d (%s): %s", e.Index+1, e.Sample, e.Reason)
}

// DegenerateInputError is returned when the samples have no total flow
// to weight temperatures with.
type DegenerateInputError struct {
	TotalFlow FlowRate
	Samples   int
}

func (e *DegenerateInputError) Error() string {
	return fmt.Sprintf("total flow of %d sample(s) is %s CFM: cannot weight temperatures", e.Samples, e.TotalFlow)
}

// EmptyInputError is returned when there is no sample to mix.
type EmptyInputError struct{}

func (e *EmptyInputError) Error() string {
	return "no air sample to mix"
}
