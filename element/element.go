package element

// Element is a named tree node. Attribute order is not significant; child order is.
type Element struct {
	Name       string
	Attributes map[string]Value
	Children   []Element
}

func New(name string) Element {
	return Element{Name: name, Attributes: make(map[string]Value)}
}

// Attr returns the named attribute.
func (e Element) Attr(name string) (Value, bool) {
	v, ok := e.Attributes[name]
	return v, ok
}

// Require returns the named attribute or a MissingAttributeError.
func (e Element) Require(name string) (Value, error) {
	v, ok := e.Attributes[name]
	if !ok {
		return Value{}, &MissingAttributeError{Element: e.Name, Name: name}
	}
	return v, nil
}

// Set stores an attribute, allocating the map on first use.
func (e *Element) Set(name string, v Value) {
	if e.Attributes == nil {
		e.Attributes = make(map[string]Value)
	}
	e.Attributes[name] = v
}

// Child returns the first child with the given name.
func (e Element) Child(name string) (Element, bool) {
	for _, child := range e.Children {
		if child.Name == name {
			return child, true
		}
	}
	return Element{}, false
}

// Clone returns a deep copy of e.
func (e Element) Clone() Element {
	out := Element{Name: e.Name}
	if e.Attributes != nil {
		out.Attributes = make(map[string]Value, len(e.Attributes))
		for k, v := range e.Attributes {
			out.Attributes[k] = v
		}
	}
	if e.Children != nil {
		out.Children = make([]Element, len(e.Children))
		for i, child := range e.Children {
			out.Children[i] = child.Clone()
		}
	}
	return out
}
