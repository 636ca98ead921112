package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/hvacworks/hvacworks/internal/hvac"
)

// printSamples lists samples as entries, with their share of the mix
// when weights are known.
func printSamples(w io.Writer, samples []hvac.AirSample, weights []float64) {
	tw := tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
	for i, s := range samples {
		fmt.Fprintf(tw, "Entry #%d\t%s\tCFM %s\tTemp %s", i+1, s.Source(), s.FlowRate, s.Temperature)
		if i < len(weights) {
			fmt.Fprintf(tw, "\t%.2f%%", 100*weights[i])
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

func printResult(w io.Writer, r hvac.MixResult) {
	fmt.Fprintf(w, "Mixed air temperature: %s °F\n", r.Formatted())
}
