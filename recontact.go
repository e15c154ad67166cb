// Package recontact provides a CLI-based contact reconnaissance tool.
// It scrapes professional profiles and general websites, extracts and
// validates contact information (emails, phone numbers, profile metadata),
// merges results from OSINT sources, and persists structured records.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, phonenumbers/).
package recontact
