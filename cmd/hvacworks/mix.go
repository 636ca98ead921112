package main

import (
	"errors"

	"github.com/hvacworks/hvacworks/internal/hvac"
	"github.com/jessevdk/go-flags"
)

type MixCommand struct {
	File flags.Filename `short:"f" long:"file" description:"reads samples from a YAML sample file, before the ones given as arguments"`
	Args struct {
		Samples []SampleArg `positional-arg-name:"CFM:TEMP[:indoor|outdoor]"`
	} `positional-args:"yes"`
}

func (c *MixCommand) samples() ([]hvac.AirSample, error) {
	var res []hvac.AirSample
	if len(c.File) > 0 {
		f, err := hvac.ReadSampleFile(string(c.File))
		if err != nil {
			return nil, err
		}
		res = append(res, f.Samples...)
	}
	for _, s := range c.Args.Samples {
		res = append(res, hvac.AirSample(s))
	}
	if len(res) == 0 {
		return nil, errors.New("no sample given: use arguments or --file")
	}
	return res, nil
}

func (c *MixCommand) Execute(args []string) error {
	return traced("hvacworks/mix", func() error {
		samples, err := c.samples()
		if err != nil {
			return err
		}
		sink, err := opts.ResultSink()
		if err != nil {
			return err
		}

		session := hvac.NewSession(sink)
		for _, s := range samples {
			session.Append(s)
		}
		r, err := session.Compute()
		if err != nil {
			return err
		}
		printSamples(stdout, session.Samples(), r.Weights)
		printResult(stdout, r)
		return nil
	})
}

func init() {
	_, err := parser.AddCommand("mix",
		"computes a mixed air temperature",
		"computes the flow weighted average temperature of air samples and records it in the history",
		&MixCommand{})
	if err != nil {
		panic(err.Error())
	}
}
