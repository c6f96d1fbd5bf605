package wire

// Limits constrains decode memory and stack use. Zero fields take the
// matching DefaultLimits value.
type Limits struct {
	MaxStringBytes uint64
	// MaxDepth bounds element nesting. The root element is at depth 1.
	MaxDepth int
}

func DefaultLimits() Limits {
	return Limits{
		MaxStringBytes: 64 * 1024 * 1024,
		MaxDepth:       256,
	}
}

func (l Limits) withDefaults() Limits {
	def := DefaultLimits()
	if l.MaxStringBytes == 0 {
		l.MaxStringBytes = def.MaxStringBytes
	}
	if l.MaxDepth <= 0 {
		l.MaxDepth = def.MaxDepth
	}
	return l
}
