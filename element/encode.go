package element

import (
	"fmt"
	"math"
	"sort"

	"github.com/danmuck/mapbin/internal/wire"
)

// Strings of at least this many bytes are written inline instead of being
// interned, since they are unlikely to repeat (tilemap bodies, for example).
const internCutoff = 64

func appendValue(dst []byte, v Value, table *StringTable) ([]byte, error) {
	switch v.kind {
	case KindBool:
		b := byte(0)
		if v.b {
			b = 1
		}
		return append(dst, tagBool, b), nil
	case KindInt:
		switch {
		case v.i >= 0 && v.i <= math.MaxUint8:
			return append(dst, tagUint8, byte(v.i)), nil
		case v.i >= math.MinInt16 && v.i <= math.MaxInt16:
			dst = append(dst, tagInt16)
			return wire.AppendI16(dst, int16(v.i)), nil
		default:
			dst = append(dst, tagInt32)
			return wire.AppendI32(dst, v.i), nil
		}
	case KindFloat:
		dst = append(dst, tagFloat32)
		return wire.AppendF32(dst, v.f), nil
	case KindString:
		if len(v.s) < internCutoff {
			if index, ok := table.Insert(v.s); ok {
				dst = append(dst, tagLookup)
				return wire.AppendU16(dst, uint16(index)), nil
			}
		}
		dst = append(dst, tagString)
		return wire.AppendString(dst, v.s), nil
	case KindRLEString:
		dst = append(dst, tagRLEString)
		return wire.AppendRLE(dst, v.s)
	default:
		return dst, &ValueTypeError{Tag: byte(v.kind)}
	}
}

func appendName(dst []byte, name string, table *StringTable) ([]byte, error) {
	index, ok := table.Insert(name)
	if !ok {
		return dst, &CapacityError{What: "unique strings", Limit: MaxStrings, Got: MaxStrings + 1}
	}
	return wire.AppendU16(dst, uint16(index)), nil
}

// encodeElement appends e and its subtree to dst, interning names into table.
// Attributes are written in sorted key order so output is deterministic.
func encodeElement(dst []byte, e Element, table *StringTable) ([]byte, error) {
	dst, err := appendName(dst, e.Name, table)
	if err != nil {
		return dst, err
	}

	if len(e.Attributes) > math.MaxUint8 {
		return dst, &CapacityError{What: "attributes on " + e.Name, Limit: math.MaxUint8, Got: len(e.Attributes)}
	}
	dst = append(dst, byte(len(e.Attributes)))

	keys := make([]string, 0, len(e.Attributes))
	for k := range e.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if dst, err = appendName(dst, k, table); err != nil {
			return dst, err
		}
		if dst, err = appendValue(dst, e.Attributes[k], table); err != nil {
			return dst, fmt.Errorf("element %q: attribute %q: %w", e.Name, k, err)
		}
	}

	if len(e.Children) > math.MaxUint16 {
		return dst, &CapacityError{What: "children on " + e.Name, Limit: math.MaxUint16, Got: len(e.Children)}
	}
	dst = wire.AppendU16(dst, uint16(len(e.Children)))
	for _, child := range e.Children {
		if dst, err = encodeElement(dst, child, table); err != nil {
			return dst, err
		}
	}
	return dst, nil
}
