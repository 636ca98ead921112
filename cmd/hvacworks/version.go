package main

import (
	"fmt"

	"github.com/hvacworks/hvacworks/internal/hvac"
)

type VersionCommand struct {
}

func (c *VersionCommand) Execute(args []string) error {
	fmt.Fprintf(stdout, "hvacworks version %s\n", hvac.HVACWORKS_VERSION)
	return nil
}

func init() {
	_, err := parser.AddCommand("version",
		"print version",
		"prints version on stdout",
		&VersionCommand{})
	if err != nil {
		panic(err.Error())
	}
}
