package theharvester

import (
	"fmt"
	"strings"
	"unicode"
)

// GuessEmails generates common corporate mailbox patterns for a person
// at a domain. The guesses are candidates only; validation downstream
// decides what survives.
//
// For "John Doe" at example.com:
//
//	john.doe@example.com
//	johndoe@example.com
//	john@example.com
//	doe@example.com
//	jdoe@example.com
//	john_doe@example.com
func GuessEmails(name, domain string) []string {
	if domain == "" {
		return nil
	}

	parts := nameParts(name)
	if len(parts) == 0 {
		return nil
	}

	if len(parts) == 1 {
		return []string{fmt.Sprintf("%s@%s", parts[0], domain)}
	}

	first, last := parts[0], parts[len(parts)-1]
	patterns := []string{
		first + "." + last,
		first + last,
		first,
		last,
		first[:1] + last,
		first + "_" + last,
	}

	seen := make(map[string]bool)
	emails := make([]string, 0, len(patterns))
	for _, pattern := range patterns {
		if seen[pattern] {
			continue
		}
		seen[pattern] = true
		emails = append(emails, fmt.Sprintf("%s@%s", pattern, domain))
	}
	return emails
}

// nameParts splits a display name into lower-cased letter-only parts.
// Titles and punctuation ("Dr.", "O'Brien") reduce to their letters.
func nameParts(name string) []string {
	var parts []string
	for _, field := range strings.Fields(strings.ToLower(name)) {
		var b strings.Builder
		for _, r := range field {
			if unicode.IsLetter(r) {
				b.WriteRune(r)
			}
		}
		if b.Len() > 0 {
			parts = append(parts, b.String())
		}
	}
	return parts
}
