package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/hvacworks/hvacworks/internal/hvac"
)

type HistoryCommand struct {
	Formula string `long:"formula" description:"only considers records of this formula" value-name:"ID"`
	Clear   bool   `long:"clear" description:"removes all records"`
	Export  string `long:"export" description:"exports records to a text file, never overwriting an existing one" value-name:"FILE"`
}

func (c *HistoryCommand) Execute(args []string) error {
	return traced("hvacworks/history", func() error {
		h, err := opts.OpenHistory()
		if err != nil {
			return err
		}
		formula := hvac.FormulaID(c.Formula)

		if c.Clear == true {
			if err := h.Clear(); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "cleared history '%s'\n", h.Path())
			return nil
		}

		if len(c.Export) > 0 {
			fname, err := h.Export(c.Export, formula)
			if err != nil {
				return fmt.Errorf("could not export history: %w", err)
			}
			fmt.Fprintf(stdout, "exported history to '%s'\n", fname)
			return nil
		}

		records := h.Records(formula)
		if len(records) == 0 {
			fmt.Fprintln(stdout, "no record")
			return nil
		}
		for _, r := range records {
			fmt.Fprintf(stdout, "%s %s = %s [%s]\n",
				r.Date.Local().Format(time.RFC3339),
				r.Formula,
				r.Output,
				strings.Join(r.Inputs, ", "))
		}
		return nil
	})
}

func init() {
	_, err := parser.AddCommand("history",
		"lists recorded results",
		"lists, exports or clears the results recorded by previous computations",
		&HistoryCommand{})
	if err != nil {
		panic(err.Error())
	}
}
