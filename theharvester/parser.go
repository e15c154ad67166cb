package theharvester

import "encoding/json"

// report mirrors the subset of theHarvester's JSON output we consume.
type report struct {
	Emails []string `json:"emails"`
}

// ParseReport extracts the email list from a theHarvester JSON report.
// A report without an emails key yields an empty slice.
func ParseReport(data []byte) ([]string, error) {
	var r report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(r.Emails))
	for _, email := range r.Emails {
		if email != "" {
			emails = append(emails, email)
		}
	}
	return emails, nil
}
