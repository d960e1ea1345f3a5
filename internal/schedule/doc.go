// Package schedule provides the conference schedule model and its Plone import rows.
//
// A scraped day is represented as time slots holding one cell per location, each cell
// holding zero or more sessions with their speakers. Rows flatten that model into the
// fixed column set the Plone bulk importer expects, with container, location, session
// and speaker rows placed under a fixed folder hierarchy rooted at the site path.
package schedule
