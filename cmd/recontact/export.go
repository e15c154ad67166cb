package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/recontact"
	reccsv "github.com/fwojciec/recontact/csv"
	recetree "github.com/fwojciec/recontact/etree"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	records, err := findTargetRecords(deps, c.Name)
	if err != nil {
		return err
	}

	out := deps.Stdout
	if c.Output != "" {
		f, err := os.Create(c.Output)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		defer f.Close()
		out = f
	}

	if err := c.export(out, records); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", recontact.ErrorMessage(err))
		return err
	}

	if c.Output != "" {
		fmt.Fprintf(deps.Stdout, "Exported %d records to %s\n", len(records), c.Output)
	}
	return nil
}

func (c *ExportCmd) export(w io.Writer, records []*recontact.ContactRecord) error {
	switch c.Format {
	case "csv":
		return reccsv.NewExporter().Export(w, records)
	case "xml":
		return recetree.NewExporter().Export(w, records)
	case "json":
		report := struct {
			Results []*recontact.ContactRecord `json:"results"`
		}{Results: records}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	default:
		return recontact.Errorf(recontact.EINVALID, "unknown format %q", c.Format)
	}
}
