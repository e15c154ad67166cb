// Package fs provides file-based JSON output for contact records.
package fs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/recontact"
)

// report is the on-disk shape of a multi-record report file.
type report struct {
	Results []*recontact.ContactRecord `json:"results"`
}

// Writer writes contact records as JSON files. Writes are atomic: the
// content goes to a temporary file in the target directory first and is
// renamed into place, so a crash never leaves a truncated report.
type Writer struct {
	path string
}

// NewWriter creates a Writer for the given output path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the output path.
func (w *Writer) Path() string {
	return w.path
}

// WriteRecord writes a single record to the output path, replacing any
// existing file.
func (w *Writer) WriteRecord(rec *recontact.ContactRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	return w.writeAtomic(append(data, '\n'))
}

// AppendRecord adds a record to the results array of a report file,
// creating the file if it does not exist.
func (w *Writer) AppendRecord(rec *recontact.ContactRecord) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	var rep report
	data, err := os.ReadFile(w.path)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, &rep); err != nil {
			return recontact.Errorf(recontact.EINVALID, "existing report %s is not a results file: %v", w.path, err)
		}
	case os.IsNotExist(err):
		// fresh report
	default:
		return err
	}

	rep.Results = append(rep.Results, rec)

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	return w.writeAtomic(append(out, '\n'))
}

// writeAtomic writes data via a temporary file and rename.
func (w *Writer) writeAtomic(data []byte) error {
	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(w.path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, w.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
