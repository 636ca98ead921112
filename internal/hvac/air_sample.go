package hvac

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AirSample is a single air stream measurement entering a mix.
type AirSample struct {
	FlowRate    FlowRate    `yaml:"cfm"`
	Temperature Temperature `yaml:"temperature"`
	Indoor      bool        `yaml:"indoor"`
}

// Source returns the display name of the air stream.
func (s AirSample) Source() string {
	if s.Indoor == true {
		return "Indoor Air"
	}
	return "Outdoor Air"
}

func (s AirSample) String() string {
	return fmt.Sprintf("%s CFM %s Temp %s", s.Source(), s.FlowRate, s.Temperature)
}

func parseNumber(field, text string) (float64, error) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return 0, &InvalidInputError{Field: field}
	}
	v, err := strconv.ParseFloat(text, 64)
	if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
		err = fmt.Errorf("%s is not finite", text)
	}
	if err != nil {
		return 0, &InvalidInputError{Field: field, Value: text, Err: err}
	}
	return v, nil
}

// ParseAirSample validates the two text inputs of an entry. It does not
// apply any range policy: a parsed zero or negative flow is the
// engine's business.
func ParseAirSample(temperature, flowRate string, indoor bool) (AirSample, error) {
	t, err := parseNumber("Temperature", temperature)
	if err != nil {
		return AirSample{}, err
	}
	f, err := parseNumber("CFM", flowRate)
	if err != nil {
		return AirSample{}, err
	}
	return AirSample{
		FlowRate:    FlowRate(f),
		Temperature: Temperature(t),
		Indoor:      indoor,
	}, nil
}
