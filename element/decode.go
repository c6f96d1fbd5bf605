package element

import (
	"fmt"

	"github.com/danmuck/mapbin/internal/wire"
)

const (
	tagBool      byte = 0
	tagUint8     byte = 1
	tagInt16     byte = 2
	tagInt32     byte = 3
	tagFloat32   byte = 4
	tagLookup    byte = 5
	tagString    byte = 6
	tagRLEString byte = 7
)

func lookupString(r *wire.Reader, lookup []string) (string, error) {
	index, err := r.ReadU16()
	if err != nil {
		return "", err
	}
	if int(index) >= len(lookup) {
		return "", &StringIndexError{Index: int(index), Len: len(lookup)}
	}
	return lookup[index], nil
}

func decodeValue(r *wire.Reader, lookup []string) (Value, error) {
	tag, err := r.ReadU8()
	if err != nil {
		return Value{}, err
	}
	switch tag {
	case tagBool:
		b, err := r.ReadU8()
		if err != nil {
			return Value{}, err
		}
		return Bool(b > 0), nil
	case tagUint8:
		b, err := r.ReadU8()
		if err != nil {
			return Value{}, err
		}
		return Int(int32(b)), nil
	case tagInt16:
		v, err := r.ReadI16()
		if err != nil {
			return Value{}, err
		}
		return Int(int32(v)), nil
	case tagInt32:
		v, err := r.ReadI32()
		if err != nil {
			return Value{}, err
		}
		return Int(v), nil
	case tagFloat32:
		v, err := r.ReadF32()
		if err != nil {
			return Value{}, err
		}
		return Float(v), nil
	case tagLookup:
		s, err := lookupString(r, lookup)
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	case tagString:
		s, err := r.ReadString()
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	case tagRLEString:
		s, err := r.ReadRLE()
		if err != nil {
			return Value{}, err
		}
		return RLEString(s), nil
	default:
		return Value{}, &ValueTypeError{Tag: tag}
	}
}

// decodeElement reads one element at the given depth and its subtree,
// resolving names against lookup. A repeated attribute name keeps the last
// value read.
func decodeElement(r *wire.Reader, lookup []string, depth int) (Element, error) {
	if limit := r.Limits().MaxDepth; depth > limit {
		return Element{}, fmt.Errorf("%w: %d at offset %d", ErrTooDeep, limit, r.Offset())
	}
	name, err := lookupString(r, lookup)
	if err != nil {
		return Element{}, err
	}

	attrCount, err := r.ReadU8()
	if err != nil {
		return Element{}, err
	}
	attrs := make(map[string]Value, attrCount)
	for i := 0; i < int(attrCount); i++ {
		key, err := lookupString(r, lookup)
		if err != nil {
			return Element{}, fmt.Errorf("element %q: attribute %d: %w", name, i, err)
		}
		value, err := decodeValue(r, lookup)
		if err != nil {
			return Element{}, fmt.Errorf("element %q: attribute %q: %w", name, key, err)
		}
		attrs[key] = value
	}

	childCount, err := r.ReadU16()
	if err != nil {
		return Element{}, err
	}
	// childCount is untrusted input and is not used to preallocate.
	var children []Element
	for i := 0; i < int(childCount); i++ {
		child, err := decodeElement(r, lookup, depth+1)
		if err != nil {
			return Element{}, err
		}
		children = append(children, child)
	}

	return Element{Name: name, Attributes: attrs, Children: children}, nil
}
