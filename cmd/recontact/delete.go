package main

import (
	"fmt"

	"github.com/fwojciec/recontact"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return recontact.Errorf(recontact.EINVALID, "use --force to confirm deletion")
	}

	target, err := deps.Targets.FindTargetByName(deps.Ctx, c.Name)
	if err != nil {
		if recontact.ErrorCode(err) == recontact.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: target %q not found. Use 'recontact list' to see available targets.\n", c.Name)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", recontact.ErrorMessage(err))
		}
		return err
	}

	if err := deps.Targets.DeleteTarget(deps.Ctx, target.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", recontact.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted target %q\n", target.Name)
	return nil
}
