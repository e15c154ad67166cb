package main

import (
	"fmt"

	"github.com/fwojciec/recontact"
	"github.com/fwojciec/recontact/fs"
)

// Run executes the scan command.
func (c *ScanCmd) Run(deps *Dependencies) error {
	target, err := c.findOrCreateTarget(deps)
	if err != nil {
		return err
	}

	rec, err := deps.Pipeline.Run(deps.Ctx, target)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", recontact.ErrorMessage(err))
		return err
	}

	if err := deps.Records.CreateRecord(deps.Ctx, rec); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", recontact.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Scanned %s\n", target.URL)
	fmt.Fprintf(deps.Stdout, "  Emails: %d unique (%d found)\n",
		rec.Metadata.ValidatedEmails, rec.Metadata.TotalEmailsFound)
	fmt.Fprintf(deps.Stdout, "  Phones: %d unique (%d found)\n",
		rec.Metadata.ValidatedPhones, rec.Metadata.TotalPhonesFound)
	if rec.Metadata.Name != nil {
		fmt.Fprintf(deps.Stdout, "  Profile: %s\n", *rec.Metadata.Name)
	}

	c.checkMX(deps, rec)

	if c.JSON != "" {
		if err := c.writeJSON(rec); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", recontact.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "  Wrote %s\n", c.JSON)
	}

	return nil
}

// findOrCreateTarget reuses a registered target by name, updating its
// URL when the scan points somewhere new.
func (c *ScanCmd) findOrCreateTarget(deps *Dependencies) (*recontact.Target, error) {
	target, err := deps.Targets.FindTargetByName(deps.Ctx, c.Name)
	if recontact.ErrorCode(err) == recontact.ENOTFOUND {
		target = &recontact.Target{Name: c.Name, URL: c.URL}
		if err := deps.Targets.CreateTarget(deps.Ctx, target); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", recontact.ErrorMessage(err))
			return nil, err
		}
		return target, nil
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", recontact.ErrorMessage(err))
		return nil, err
	}

	if target.URL != c.URL {
		target, err = deps.Targets.UpdateTarget(deps.Ctx, target.ID, recontact.TargetUpdate{URL: &c.URL})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", recontact.ErrorMessage(err))
			return nil, err
		}
	}
	return target, nil
}

// checkMX prints advisory warnings for email domains without MX records.
// Lookup failures are ignored: DNS trouble should never mark a scan.
func (c *ScanCmd) checkMX(deps *Dependencies, rec *recontact.ContactRecord) {
	if deps.MX == nil {
		return
	}

	for _, email := range rec.Emails {
		ok, err := deps.MX.Check(deps.Ctx, email)
		if err == nil && !ok {
			fmt.Fprintf(deps.Stderr, "  warning: no MX records for %s\n", email)
		}
	}
}

func (c *ScanCmd) writeJSON(rec *recontact.ContactRecord) error {
	w := fs.NewWriter(c.JSON)
	if c.Append {
		return w.AppendRecord(rec)
	}
	return w.WriteRecord(rec)
}
