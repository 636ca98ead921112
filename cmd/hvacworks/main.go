package main

import (
	"io"
	"os"

	"github.com/formicidae-tracker/olympus/pkg/tm"
	"github.com/hvacworks/hvacworks/internal/hvac"
	"github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
)

type Options struct {
	Verbose     []bool         `short:"v" long:"verbose" description:"enables verbose output, repeat for debug output"`
	HistoryFile flags.Filename `long:"history" env:"HVACWORKS_HISTORY" description:"history file computed results are recorded into"`
	NoHistory   bool           `long:"no-history" description:"do not record computed results"`
}

var opts = &Options{}

var parser = flags.NewParser(opts, flags.Default)

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
)

const instrumentationName = "github.com/hvacworks/hvacworks/cmd/hvacworks"

func (o *Options) LogLevel() logrus.Level {
	switch len(o.Verbose) {
	case 0:
		return logrus.WarnLevel
	case 1:
		return logrus.InfoLevel
	default:
		return logrus.DebugLevel
	}
}

func (o *Options) OpenHistory() (*hvac.History, error) {
	path := string(o.HistoryFile)
	if len(path) == 0 {
		var err error
		path, err = hvac.DefaultHistoryPath()
		if err != nil {
			return nil, err
		}
	}
	return hvac.OpenHistory(path)
}

// ResultSink returns where computed results should be recorded.
func (o *Options) ResultSink() (hvac.ResultSink, error) {
	if o.NoHistory == true {
		return hvac.DiscardSink, nil
	}
	h, err := o.OpenHistory()
	if err != nil {
		return nil, err
	}
	return h, nil
}

func Execute() error {
	if _, err := parser.Parse(); err != nil {
		return err
	}

	return nil
}

func main() {
	setUpTelemetry()

	if err := Execute(); err != nil {
		if ferr, ok := err.(*flags.Error); ok == true && ferr.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}
}

func setUpTelemetry() {
	otel := os.Getenv("HVACWORKS_OTEL_ENDPOINT")
	if len(otel) == 0 {
		return
	}
	tm.SetUpTelemetry(tm.OtelProviderArgs{
		CollectorURL:         otel,
		ServiceName:          "hvacworks",
		ServiceVersion:       hvac.HVACWORKS_VERSION,
		ForceFlushOnShutdown: true,
	})
}

func init() {
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		logrus.SetLevel(opts.LogLevel())
		if command == nil {
			return nil
		}
		return command.Execute(args)
	}
}
