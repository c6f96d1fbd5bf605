// Package element implements the generic tree layer of the binary map format.
//
// A document is a header, a package name, a string table and one root Element.
// Elements carry a name, an unordered set of tagged attribute Values and an
// ordered list of children. Decoding is a single forward pass over the stream;
// encoding buffers the tree while it fills the string table, then writes the
// table ahead of the buffered bytes.
package element
