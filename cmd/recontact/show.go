package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/recontact"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	records, err := findTargetRecords(deps, c.Name)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintf(deps.Stderr, "error: no records for target %q. Run 'recontact scan' first.\n", c.Name)
		return recontact.Errorf(recontact.ENOTFOUND, "no records for target %q", c.Name)
	}

	var out any
	if c.All {
		out = struct {
			Results []*recontact.ContactRecord `json:"results"`
		}{Results: records}
	} else {
		// Records come back newest first.
		out = records[0]
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(data))
	return nil
}

// findTargetRecords resolves a target name to its records.
func findTargetRecords(deps *Dependencies, name string) ([]*recontact.ContactRecord, error) {
	target, err := deps.Targets.FindTargetByName(deps.Ctx, name)
	if err != nil {
		if recontact.ErrorCode(err) == recontact.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: target %q not found. Use 'recontact list' to see available targets.\n", name)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", recontact.ErrorMessage(err))
		}
		return nil, err
	}

	records, err := deps.Records.FindRecords(deps.Ctx, recontact.RecordFilter{TargetID: &target.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", recontact.ErrorMessage(err))
		return nil, err
	}
	return records, nil
}
