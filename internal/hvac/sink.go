package hvac

// FormulaID identifies a calculator formula in the result history.
type FormulaID string

const MixedAirTemp FormulaID = "mixedAirTemp"

// ResultSink receives every computed result. Recording is fire and
// forget: implementations deal with their own failures.
type ResultSink interface {
	Record(formula FormulaID, inputs []string, output string)
}

type discardSink struct{}

func (discardSink) Record(FormulaID, []string, string) {}

// DiscardSink drops every record.
var DiscardSink ResultSink = discardSink{}

// MixedAirInputs builds the labeled input list recorded for a mix.
func MixedAirInputs(samples []AirSample) []string {
	res := make([]string, 0, 4*len(samples))
	for _, s := range samples {
		res = append(res,
			"Temperature", s.Temperature.String(),
			"Cubic Feet per minute", s.FlowRate.String())
	}
	return res
}
