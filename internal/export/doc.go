// Package export writes the Plone bulk-import CSV.
//
// Writer encodes schedule rows against the fixed import header. Emitter walks parsed
// schedule days in order, writing each location the first time it is seen, then the
// sessions held there, each followed by its speakers.
package export
