package hvac

import "fmt"

// MixResult is the outcome of a mixed air computation.
type MixResult struct {
	Temperature Temperature
	// Weights holds the share of total flow of each sample, in input
	// order. They sum to 1.
	Weights []float64
	// TotalFlow is +Inf when the sum exceeds the float64 range.
	TotalFlow FlowRate
}

// Formatted returns the mixed temperature rounded to 2 decimals.
func (r MixResult) Formatted() string {
	return fmt.Sprintf("%.2f", float64(r.Temperature))
}

func (r MixResult) String() string {
	return r.Formatted()
}

func totalFlow(samples []AirSample) FlowRate {
	var total FlowRate
	for _, s := range samples {
		total += s.FlowRate
	}
	return total
}

func checkSamples(samples []AirSample) (FlowRate, error) {
	if len(samples) == 0 {
		return 0, &EmptyInputError{}
	}
	total := totalFlow(samples)
	if total == 0 {
		return 0, &DegenerateInputError{TotalFlow: total, Samples: len(samples)}
	}
	for i, s := range samples {
		if IsFinite(s.FlowRate) == false {
			return 0, &InvalidSampleError{Index: i, Sample: s, Reason: "flow rate is not finite"}
		}
		if IsFinite(s.Temperature) == false {
			return 0, &InvalidSampleError{Index: i, Sample: s, Reason: "temperature is not finite"}
		}
		if s.FlowRate <= 0 {
			return 0, &InvalidSampleError{Index: i, Sample: s, Reason: "flow rate must be positive"}
		}
	}
	return total, nil
}

// Weights returns the share of the total flow carried by each sample.
func Weights(samples []AirSample) ([]float64, error) {
	if _, err := checkSamples(samples); err != nil {
		return nil, err
	}
	return weights(samples), nil
}

// weights divides flows by the largest one before summing, so a total
// beyond the float64 range still yields shares summing to 1.
func weights(samples []AirSample) []float64 {
	var largest FlowRate
	for _, s := range samples {
		if s.FlowRate > largest {
			largest = s.FlowRate
		}
	}
	var total float64
	res := make([]float64, len(samples))
	for i, s := range samples {
		res[i] = float64(s.FlowRate / largest)
		total += res[i]
	}
	for i := range res {
		res[i] /= total
	}
	return res
}

// ComputeMixedTemperature computes the flow weighted average
// temperature of samples. It fails with EmptyInputError,
// DegenerateInputError or InvalidSampleError instead of ever returning
// a non-finite temperature.
func ComputeMixedTemperature(samples []AirSample) (MixResult, error) {
	total, err := checkSamples(samples)
	if err != nil {
		return MixResult{}, err
	}
	res := MixResult{
		Weights:   weights(samples),
		TotalFlow: total,
	}
	var mixed float64
	for i, s := range samples {
		mixed += res.Weights[i] * float64(s.Temperature)
	}
	res.Temperature = Temperature(mixed)
	return res, nil
}
