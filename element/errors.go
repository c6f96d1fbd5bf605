package element

import (
	"errors"
	"fmt"
)

var ErrTooDeep = errors.New("element: nesting exceeds depth limit")

// HeaderError reports a document that does not start with the expected literal.
type HeaderError struct {
	Got string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("element: invalid file header: %q", e.Got)
}

// StringIndexError reports a string-table reference past the end of the table.
type StringIndexError struct {
	Index int
	Len   int
}

func (e *StringIndexError) Error() string {
	return fmt.Sprintf("element: out-of-bounds index into string table: %d (table has %d entries)", e.Index, e.Len)
}

// ValueTypeError reports an unrecognized value tag.
type ValueTypeError struct {
	Tag byte
}

func (e *ValueTypeError) Error() string {
	return fmt.Sprintf("element: invalid value type: %d", e.Tag)
}

// CapacityError reports a tree that cannot be represented within the wire format limits.
type CapacityError struct {
	What  string
	Limit int
	Got   int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("element: too many %s: %d exceeds limit of %d", e.What, e.Got, e.Limit)
}

// MissingAttributeError reports a required attribute that is absent.
type MissingAttributeError struct {
	Element string
	Name    string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("element: %q is missing required attribute %q", e.Element, e.Name)
}
