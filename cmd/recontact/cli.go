package main

import (
	"context"
	"io"

	"github.com/fwojciec/recontact"
	"github.com/fwojciec/recontact/mail"
	"github.com/fwojciec/recontact/recon"
	"github.com/fwojciec/recontact/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Targets  recontact.TargetService
	Records  recontact.RecordService
	Pipeline *recon.Pipeline
	MX       *mail.MXChecker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scan   ScanCmd   `cmd:"" help:"Scan a target page for contact details"`
	List   ListCmd   `cmd:"" help:"List registered targets"`
	Show   ShowCmd   `cmd:"" help:"Show saved records for a target"`
	Export ExportCmd `cmd:"" help:"Export records for a target"`
	Delete DeleteCmd `cmd:"" help:"Delete a target and its records"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	Name        string  `arg:"" help:"Target name"`
	URL         string  `arg:"" help:"Page URL to scan"`
	Harvest     bool    `help:"Include theHarvester OSINT results"`
	Guess       bool    `help:"Generate name-based mailbox patterns"`
	Enrich      bool    `help:"Fill missing profile fields with Gemini"`
	CheckMX     bool    `name:"check-mx" help:"Warn when email domains lack MX records"`
	Crawl       int     `default:"1" help:"Maximum pages to visit; values above 1 follow contact-page links"`
	Region      string  `default:"US" help:"Default phone region for numbers without a country code"`
	RPS         float64 `name:"rps" default:"1" help:"Requests per second per host"`
	Concurrency int     `short:"c" default:"4" help:"Concurrent fetch limit during crawl"`
	JSON        string  `name:"json" help:"Write the record to a JSON file"`
	Append      bool    `help:"Append to the JSON report instead of overwriting it"`
	Verbose     bool    `short:"v" help:"Log pipeline progress to stderr"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Name string `arg:"" help:"Target name"`
	All  bool   `help:"Show every record instead of the latest"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Name   string `arg:"" help:"Target name"`
	Format string `enum:"csv,json,xml" default:"csv" help:"Output format (csv, json, xml)"`
	Output string `short:"o" help:"Output file (default stdout)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Target name"`
	Force bool   `help:"Confirm deletion"`
}
