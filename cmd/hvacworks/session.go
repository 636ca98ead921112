package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/hvacworks/hvacworks/internal/hvac"
)

type SessionCommand struct {
}

func (c *SessionCommand) Execute(args []string) error {
	return traced("hvacworks/session", func() error {
		sink, err := opts.ResultSink()
		if err != nil {
			return err
		}
		return newConsole(hvac.NewSession(sink), stdin, stdout).run()
	})
}

// console drives a mixed air session from text commands, one per
// line. Command errors are printed and never end the session.
type console struct {
	session *hvac.Session
	in      *bufio.Scanner
	out     io.Writer
}

func newConsole(session *hvac.Session, in io.Reader, out io.Writer) *console {
	return &console{
		session: session,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

const consoleHelp = `commands:
  temp [VALUE]     sets the temperature field (°F)
  cfm [VALUE]      sets the flow rate field (CFM)
  indoor|outdoor   selects the air stream of the next entry
  add [TEMP CFM]   adds an entry from the fields
  compute          computes the mixed air temperature
  list             lists entries
  state            prints the session state
  save FILE        saves entries to a sample file
  load FILE        adds entries from a sample file
  reset            discards all entries
  quit
`

func (c *console) run() error {
	fmt.Fprintln(c.out, "Mixed Air: the final air product entering the return coil. Type 'help' for commands.")
	for {
		fmt.Fprint(c.out, "> ")
		if c.in.Scan() == false {
			fmt.Fprintln(c.out)
			return c.in.Err()
		}
		quit, err := c.execute(c.in.Text())
		if err != nil {
			fmt.Fprintf(c.out, "error: %s\n", err)
		}
		if quit == true {
			return nil
		}
	}
}

func (c *console) execute(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	command, args := fields[0], fields[1:]
	switch command {
	case "temp", "t":
		c.session.SetTemperature(strings.Join(args, " "))
	case "cfm", "c":
		c.session.SetFlowRate(strings.Join(args, " "))
	case "indoor":
		c.session.SetIndoor(true)
	case "outdoor":
		c.session.SetIndoor(false)
	case "add", "a":
		return false, c.add(args)
	case "compute", "=":
		r, err := c.session.Compute()
		if err != nil {
			return false, err
		}
		printSamples(c.out, c.session.Samples(), r.Weights)
		printResult(c.out, r)
	case "list", "ls":
		c.list()
	case "state":
		c.printState()
	case "save":
		return false, c.save(args)
	case "load":
		return false, c.load(args)
	case "reset":
		c.session.Reset()
		fmt.Fprintln(c.out, "all entries discarded")
	case "help", "?":
		fmt.Fprint(c.out, consoleHelp)
	case "quit", "exit", "q":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command '%s', type 'help'", command)
	}
	return false, nil
}

func (c *console) add(args []string) error {
	switch len(args) {
	case 0:
	case 2:
		c.session.SetTemperature(args[0])
		c.session.SetFlowRate(args[1])
	default:
		return fmt.Errorf("usage: add [TEMP CFM]")
	}
	s, err := c.session.AddSample()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Entry #%d: %s\n", len(c.session.Samples()), s)
	return nil
}

func (c *console) list() {
	samples := c.session.Samples()
	if len(samples) == 0 {
		fmt.Fprintln(c.out, "no entry")
		return
	}
	var weights []float64
	if r, ok := c.session.Result(); ok == true && c.session.FinalAnswerReceived() == true {
		weights = r.Weights
	}
	printSamples(c.out, samples, weights)
}

func (c *console) printState() {
	temperature, cfm := c.session.Drafts()
	source := "outdoor"
	if c.session.Indoor() == true {
		source = "indoor"
	}
	fmt.Fprintf(c.out, "state: %s, entries: %d, temp: '%s', cfm: '%s', stream: %s\n",
		c.session.State(), len(c.session.Samples()), temperature, cfm, source)
	if r, ok := c.session.Result(); ok == true {
		printResult(c.out, r)
	}
}

func (c *console) save(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: save FILE")
	}
	f := hvac.SampleFile{Samples: c.session.Samples()}
	if err := f.WriteFile(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "saved %d entries to '%s'\n", len(f.Samples), args[0])
	return nil
}

func (c *console) load(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: load FILE")
	}
	f, err := hvac.ReadSampleFile(args[0])
	if err != nil {
		return err
	}
	for _, s := range f.Samples {
		c.session.Append(s)
	}
	fmt.Fprintf(c.out, "loaded %d entries from '%s'\n", len(f.Samples), args[0])
	return nil
}

func init() {
	_, err := parser.AddCommand("session",
		"starts an interactive mixed air session",
		"reads entry commands from stdin, computes mixes on demand and records each result",
		&SessionCommand{})
	if err != nil {
		panic(err.Error())
	}
}
