package mapdata

import (
	"errors"
	"fmt"

	"github.com/danmuck/mapbin/element"
)

var ErrNegativeSize = errors.New("mapdata: level size cannot be negative")

// FieldTypeError reports an attribute holding a value of the wrong kind.
type FieldTypeError struct {
	Field string
	Value element.Value
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("mapdata: field %q has invalid type %s: %v", e.Field, e.Value.Kind(), e.Value)
}

// FieldDataError reports an attribute whose content is malformed. Err is the
// underlying cause, if any.
type FieldDataError struct {
	Field string
	Data  string
	Err   error
}

func (e *FieldDataError) Error() string {
	return fmt.Sprintf("mapdata: field %q has malformed data: %s", e.Field, e.Data)
}

func (e *FieldDataError) Unwrap() error {
	return e.Err
}

// ElementNameError reports an element found where another name was expected.
type ElementNameError struct {
	Got  string
	Want string
}

func (e *ElementNameError) Error() string {
	return fmt.Sprintf("mapdata: found unexpected element %q when looking for %q", e.Got, e.Want)
}

func checkName(el element.Element, want string) error {
	if el.Name != want {
		return &ElementNameError{Got: el.Name, Want: want}
	}
	return nil
}
