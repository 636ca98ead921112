package main

import (
	"fmt"
	"strings"

	"github.com/hvacworks/hvacworks/internal/hvac"
	"github.com/jessevdk/go-flags"
)

// SampleArg is an air sample given on the command line as
// CFM:TEMP[:indoor|outdoor]. Samples are indoor air unless told
// otherwise.
type SampleArg hvac.AirSample

func parseSource(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "indoor", "in", "i":
		return true, nil
	case "outdoor", "out", "o":
		return false, nil
	}
	return false, fmt.Errorf("unknown air source '%s' (indoor or outdoor)", s)
}

func (a *SampleArg) UnmarshalFlag(value string) error {
	parts := strings.Split(value, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return fmt.Errorf("invalid sample '%s': expected CFM:TEMP[:indoor|outdoor]", value)
	}
	indoor := true
	if len(parts) == 3 {
		var err error
		if indoor, err = parseSource(parts[2]); err != nil {
			return fmt.Errorf("invalid sample '%s': %w", value, err)
		}
	}
	s, err := hvac.ParseAirSample(parts[1], parts[0], indoor)
	if err != nil {
		return fmt.Errorf("invalid sample '%s': %w", value, err)
	}
	*a = SampleArg(s)
	return nil
}

func (a SampleArg) MarshalFlag() (string, error) {
	source := "indoor"
	if a.Indoor == false {
		source = "outdoor"
	}
	return fmt.Sprintf("%s:%s:%s", a.FlowRate, a.Temperature, source), nil
}

func (a *SampleArg) Complete(match string) []flags.Completion {
	parts := strings.Split(match, ":")
	if len(parts) != 3 {
		return nil
	}
	prefix := strings.Join(parts[:2], ":") + ":"
	var res []flags.Completion
	for _, source := range []string{"indoor", "outdoor"} {
		if strings.HasPrefix(source, parts[2]) == false {
			continue
		}
		res = append(res, flags.Completion{Item: prefix + source})
	}
	return res
}
