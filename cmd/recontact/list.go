package main

import (
	"fmt"

	"github.com/fwojciec/recontact"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	targets, err := deps.Targets.FindTargets(deps.Ctx, recontact.TargetFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", recontact.ErrorMessage(err))
		return err
	}

	if len(targets) == 0 {
		fmt.Fprintln(deps.Stdout, "No targets found. Use 'recontact scan' to create one.")
		return nil
	}

	for _, target := range targets {
		records, err := deps.Records.FindRecords(deps.Ctx, recontact.RecordFilter{TargetID: &target.ID})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", recontact.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  (%d records)\n", target.ID, target.Name, target.URL, len(records))
	}

	return nil
}
