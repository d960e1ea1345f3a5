// Package scraper fetches the Plone Conference schedule pages and walks their schedule tables.
//
// Each conference day is published as one HTML page whose body text block holds a table:
// the header row names the locations, and every following row is a time slot whose cells
// list the sessions held at each location, with a descriptor paragraph naming the speakers.
// Pages can be fetched over HTTP or read from a directory of saved copies.
package scraper
