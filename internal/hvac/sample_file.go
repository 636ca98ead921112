package hvac

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// SampleFile lists air samples prepared ahead of a mix.
type SampleFile struct {
	Name    string      `yaml:"name,omitempty"`
	Samples []AirSample `yaml:"samples"`
}

// ParseSampleFile parses a sample file. Unknown keys are errors, so a
// misspelled `cfm` is not silently read as a zero flow.
func ParseSampleFile(content []byte) (*SampleFile, error) {
	s := &SampleFile{}
	if err := yaml.UnmarshalStrict(content, s); err != nil {
		return nil, err
	}
	for i, sample := range s.Samples {
		if IsFinite(sample.FlowRate) == false || IsFinite(sample.Temperature) == false {
			return nil, fmt.Errorf("sample #%d: non-finite value", i+1)
		}
	}
	return s, nil
}

func ReadSampleFile(filename string) (*SampleFile, error) {
	content, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	s, err := ParseSampleFile(content)
	if err != nil {
		return nil, fmt.Errorf("invalid sample file '%s': %w", filename, err)
	}
	return s, nil
}

func (f SampleFile) WriteFile(filename string) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(filename, data, 0644)
}
