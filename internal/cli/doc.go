// Package cli implements the command-line interface for ploneconf-schedule.
//
// The cli package provides the Cobra command that loads configuration, fetches each
// schedule day through the scraper, writes the Plone import CSV through the export
// package and reports a run summary as text or JSON.
package cli
