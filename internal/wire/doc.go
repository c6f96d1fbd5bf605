// Package wire owns the primitive encodings of the map format.
//
// Ownership boundary:
// - base-128 variable-length integers
// - length-prefixed and run-length encoded strings
// - little-endian fixed-width scalars
package wire
