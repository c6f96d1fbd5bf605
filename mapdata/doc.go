// Package mapdata maps the generic element tree onto typed map objects.
//
// Decoding is loss-tolerant and forward compatible: recognized attributes are
// coerced and defaulted, and anything unrecognized is kept verbatim in the
// Extra/ExtraChildren fields so it survives a round trip. Encoding is the exact
// inverse, omitting a handful of attributes when they hold their default value.
package mapdata
