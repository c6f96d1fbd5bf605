package mapdata

import (
	"math"
	"strconv"

	"github.com/danmuck/mapbin/element"
)

// fields consumes recognized attributes from a copy of an element's attribute
// map. The first error sticks; later reads return their defaults.
type fields struct {
	attrs map[string]element.Value
	err   error
}

func readFields(el element.Element) *fields {
	attrs := make(map[string]element.Value, len(el.Attributes))
	for k, v := range el.Attributes {
		attrs[k] = v
	}
	return &fields{attrs: attrs}
}

func (f *fields) take(name string) (element.Value, bool) {
	if f.err != nil {
		return element.Value{}, false
	}
	v, ok := f.attrs[name]
	if ok {
		delete(f.attrs, name)
	}
	return v, ok
}

func (f *fields) fail(err error) {
	if f.err == nil {
		f.err = err
	}
}

func (f *fields) text(name, def string) string {
	v, ok := f.take(name)
	if !ok {
		return def
	}
	s, ok := v.Text()
	if !ok {
		f.fail(&FieldTypeError{Field: name, Value: v})
		return def
	}
	return s
}

func (f *fields) float(name string, def float32) float32 {
	v, ok := f.take(name)
	if !ok {
		return def
	}
	if x, ok := v.Float(); ok {
		return x
	}
	if x, ok := v.Int(); ok {
		return float32(x)
	}
	f.fail(&FieldTypeError{Field: name, Value: v})
	return def
}

func (f *fields) optInteger(name string) *int32 {
	v, ok := f.take(name)
	if !ok {
		return nil
	}
	if x, ok := v.Int(); ok {
		return &x
	}
	if x, ok := v.Float(); ok {
		n := truncate(x)
		return &n
	}
	f.fail(&FieldTypeError{Field: name, Value: v})
	return nil
}

func (f *fields) integer(name string, def int32) int32 {
	if p := f.optInteger(name); p != nil {
		return *p
	}
	return def
}

func (f *fields) boolean(name string, def bool) bool {
	v, ok := f.take(name)
	if !ok {
		return def
	}
	b, ok := v.Bool()
	if !ok {
		f.fail(&FieldTypeError{Field: name, Value: v})
		return def
	}
	return b
}

// decimal reads an optional integer transported as text; empty text is absent.
func (f *fields) decimal(name string) *int32 {
	s := f.text(name, "")
	if s == "" || f.err != nil {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		f.fail(&FieldDataError{Field: name, Data: s})
		return nil
	}
	v := int32(n)
	return &v
}

// rest returns the unconsumed attributes, or nil when none are left.
func (f *fields) rest() map[string]element.Value {
	if len(f.attrs) == 0 {
		return nil
	}
	return f.attrs
}

// truncate converts toward zero, saturating at the int32 range.
func truncate(x float32) int32 {
	switch {
	case math.IsNaN(float64(x)):
		return 0
	case x >= math.MaxInt32:
		return math.MaxInt32
	case x <= math.MinInt32:
		return math.MinInt32
	default:
		return int32(x)
	}
}

func formatDecimal(v *int32) element.Value {
	if v == nil {
		return element.String("")
	}
	return element.String(strconv.FormatInt(int64(*v), 10))
}

func cloneAttrs(attrs map[string]element.Value, extra int) map[string]element.Value {
	out := make(map[string]element.Value, len(attrs)+extra)
	for k, v := range attrs {
		out[k] = v
	}
	return out
}
