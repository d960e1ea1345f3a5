// Package config holds the exporter's settings.
//
// Settings come from built-in defaults, an optional YAML file and command-line flags,
// in increasing order of precedence. The defaults reproduce the 2018 conference export:
// three talks pages, written to schedule.csv under the Plone2/ site root.
package config
