package hvac

import (
	"math"

	. "gopkg.in/check.v1"
)

type MixedAirSuite struct{}

var _ = Suite(&MixedAirSuite{})

const tolerance = 1e-9

func (s *MixedAirSuite) TestConcreteScenarios(c *C) {
	testdata := []struct {
		Samples  []AirSample
		Weights  []float64
		Expected float64
	}{
		{
			Samples: []AirSample{
				{FlowRate: 1000, Temperature: 70},
				{FlowRate: 500, Temperature: 40},
			},
			Weights:  []float64{2.0 / 3.0, 1.0 / 3.0},
			Expected: 60.0,
		},
		{
			Samples: []AirSample{
				{FlowRate: 2000, Temperature: 75, Indoor: true},
				{FlowRate: 2000, Temperature: 95, Indoor: false},
			},
			Weights:  []float64{0.5, 0.5},
			Expected: 85.0,
		},
		{
			Samples:  []AirSample{{FlowRate: 350, Temperature: -12.5}},
			Weights:  []float64{1.0},
			Expected: -12.5,
		},
	}

	for _, d := range testdata {
		comment := Commentf("Samples: %v", d.Samples)
		r, err := ComputeMixedTemperature(d.Samples)
		if c.Check(err, IsNil, comment) == false {
			continue
		}
		c.Check(r.Temperature, IsCloseTo, d.Expected, tolerance, comment)
		c.Assert(len(r.Weights), Equals, len(d.Weights), comment)
		for i, w := range d.Weights {
			c.Check(r.Weights[i], IsCloseTo, w, tolerance, comment)
		}
	}
}

func (s *MixedAirSuite) TestFormatsWithTwoDecimals(c *C) {
	r, err := ComputeMixedTemperature([]AirSample{
		{FlowRate: 1000, Temperature: 70},
		{FlowRate: 500, Temperature: 40},
	})
	c.Assert(err, IsNil)
	c.Check(r.Formatted(), Equals, "60.00")
	c.Check(r.TotalFlow, Equals, FlowRate(1500))

	r, err = ComputeMixedTemperature([]AirSample{
		{FlowRate: 3, Temperature: 70},
		{FlowRate: 1, Temperature: 71},
		{FlowRate: 2, Temperature: 72},
	})
	c.Assert(err, IsNil)
	c.Check(r.Formatted(), Equals, "70.83")
}

func (s *MixedAirSuite) TestWeightsSumToOne(c *C) {
	testdata := [][]AirSample{
		{{FlowRate: 1}},
		{{FlowRate: 1000}, {FlowRate: 500}},
		{{FlowRate: 0.1}, {FlowRate: 0.2}, {FlowRate: 0.3}, {FlowRate: 1234.5678}},
		{{FlowRate: 3}, {FlowRate: 3}, {FlowRate: 3}, {FlowRate: 3}, {FlowRate: 3}, {FlowRate: 3}, {FlowRate: 3}},
	}
	for _, samples := range testdata {
		weights, err := Weights(samples)
		c.Assert(err, IsNil)
		sum := 0.0
		for _, w := range weights {
			sum += w
		}
		c.Check(sum, IsCloseTo, 1.0, tolerance, Commentf("Samples: %v", samples))
	}
}

func (s *MixedAirSuite) TestUniformTemperature(c *C) {
	for _, t := range []Temperature{-40, 0, 55.5, 72} {
		samples := []AirSample{
			{FlowRate: 12, Temperature: t},
			{FlowRate: 4500, Temperature: t, Indoor: true},
			{FlowRate: 0.5, Temperature: t},
		}
		r, err := ComputeMixedTemperature(samples)
		c.Assert(err, IsNil)
		c.Check(r.Temperature, IsCloseTo, t, tolerance)
	}
}

func permutations(samples []AirSample) [][]AirSample {
	if len(samples) <= 1 {
		return [][]AirSample{samples}
	}
	var res [][]AirSample
	for i := range samples {
		rest := make([]AirSample, 0, len(samples)-1)
		rest = append(rest, samples[:i]...)
		rest = append(rest, samples[i+1:]...)
		for _, p := range permutations(rest) {
			res = append(res, append([]AirSample{samples[i]}, p...))
		}
	}
	return res
}

func (s *MixedAirSuite) TestOrderIndependence(c *C) {
	samples := []AirSample{
		{FlowRate: 1000, Temperature: 70, Indoor: true},
		{FlowRate: 500, Temperature: 40},
		{FlowRate: 250, Temperature: 95.5},
		{FlowRate: 125, Temperature: -3},
	}
	reference, err := ComputeMixedTemperature(samples)
	c.Assert(err, IsNil)

	perms := permutations(samples)
	c.Check(len(perms), Equals, 24)
	for _, p := range perms {
		r, err := ComputeMixedTemperature(p)
		c.Assert(err, IsNil)
		c.Check(r.Temperature, IsCloseTo, reference.Temperature, tolerance, Commentf("Order: %v", p))
	}
}

func (s *MixedAirSuite) TestScaleInvariance(c *C) {
	samples := []AirSample{
		{FlowRate: 800, Temperature: 68},
		{FlowRate: 200, Temperature: 20},
		{FlowRate: 50, Temperature: 110},
	}
	reference, err := ComputeMixedTemperature(samples)
	c.Assert(err, IsNil)

	for _, k := range []FlowRate{0.001, 0.5, 3, 1e6} {
		scaled := make([]AirSample, len(samples))
		for i, sample := range samples {
			scaled[i] = sample
			scaled[i].FlowRate *= k
		}
		r, err := ComputeMixedTemperature(scaled)
		c.Assert(err, IsNil)
		c.Check(r.Temperature, IsCloseTo, reference.Temperature, 1e-6, Commentf("Scale: %v", k))
	}
}

func (s *MixedAirSuite) TestHugeFlows(c *C) {
	samples := []AirSample{
		{FlowRate: math.MaxFloat64, Temperature: 70},
		{FlowRate: math.MaxFloat64, Temperature: 40},
		{FlowRate: math.MaxFloat64 / 2, Temperature: 10},
	}
	r, err := ComputeMixedTemperature(samples)
	c.Assert(err, IsNil)
	c.Assert(r.Weights, HasLen, 3)
	c.Check(r.Weights[0], IsCloseTo, 0.4, tolerance)
	c.Check(r.Weights[1], IsCloseTo, 0.4, tolerance)
	c.Check(r.Weights[2], IsCloseTo, 0.2, tolerance)
	c.Check(r.Temperature, IsCloseTo, 46.0, tolerance)
	c.Check(math.IsInf(float64(r.TotalFlow), 1), Equals, true)

	weights, err := Weights(samples[:2])
	c.Assert(err, IsNil)
	c.Check(weights, DeepEquals, []float64{0.5, 0.5})
}

func (s *MixedAirSuite) TestEmptyInput(c *C) {
	r, err := ComputeMixedTemperature(nil)
	c.Check(err, FitsTypeOf, &EmptyInputError{})
	c.Check(err, ErrorMatches, "no air sample to mix")
	c.Check(r.Weights, IsNil)

	_, err = Weights([]AirSample{})
	c.Check(err, FitsTypeOf, &EmptyInputError{})
}

func (s *MixedAirSuite) TestDegenerateInput(c *C) {
	testdata := [][]AirSample{
		{{FlowRate: 0, Temperature: 70}},
		{{FlowRate: 0, Temperature: 70}, {FlowRate: 0, Temperature: 40}},
		{{FlowRate: 1000, Temperature: 70}, {FlowRate: -1000, Temperature: 40}},
	}
	for _, samples := range testdata {
		comment := Commentf("Samples: %v", samples)
		r, err := ComputeMixedTemperature(samples)
		c.Check(err, FitsTypeOf, &DegenerateInputError{}, comment)
		c.Check(err, ErrorMatches, `total flow of [0-9]+ sample\(s\) is 0 CFM: .*`, comment)
		c.Check(math.IsNaN(float64(r.Temperature)), Equals, false, comment)
	}
}

func (s *MixedAirSuite) TestInvalidSamples(c *C) {
	testdata := []struct {
		Samples []AirSample
		Index   int
		Error   string
	}{
		{
			[]AirSample{{FlowRate: 1000, Temperature: 70}, {FlowRate: 0, Temperature: 40}},
			1, `invalid sample #2 \(Outdoor Air CFM 0 Temp 40\): flow rate must be positive`,
		},
		{
			[]AirSample{{FlowRate: -200, Temperature: 70, Indoor: true}, {FlowRate: 500, Temperature: 40}},
			0, `invalid sample #1 \(Indoor Air CFM -200 Temp 70\): flow rate must be positive`,
		},
		{
			[]AirSample{{FlowRate: 1000, Temperature: 70}, {FlowRate: FlowRate(math.Inf(1)), Temperature: 40}},
			1, `invalid sample #2 .*: flow rate is not finite`,
		},
		{
			[]AirSample{{FlowRate: 1000, Temperature: Temperature(math.NaN())}},
			0, `invalid sample #1 .*: temperature is not finite`,
		},
	}

	for _, d := range testdata {
		comment := Commentf("Samples: %v", d.Samples)
		_, err := ComputeMixedTemperature(d.Samples)
		c.Check(err, ErrorMatches, d.Error, comment)
		serr, ok := err.(*InvalidSampleError)
		if c.Check(ok, Equals, true, comment) == false {
			continue
		}
		c.Check(serr.Index, Equals, d.Index, comment)
	}
}
