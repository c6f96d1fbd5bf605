package element

import (
	"sort"
	"strings"
)

// InnerText is the attribute that holds an element's body text.
const InnerText = "innerText"

// String renders e as indented markup for debugging. Attributes are sorted by
// name, children are sorted by name, and innerText is printed as the body.
func (e Element) String() string {
	var b strings.Builder
	e.format(&b, 0)
	return b.String()
}

func (e Element) format(b *strings.Builder, depth int) {
	indent := strings.Repeat("\t", depth)
	b.WriteString(indent)
	b.WriteByte('<')
	b.WriteString(e.Name)

	keys := make([]string, 0, len(e.Attributes))
	for k := range e.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var inner string
	hasInner := false
	for _, k := range keys {
		v := e.Attributes[k]
		if k == InnerText {
			if s, ok := v.Text(); ok {
				inner = s
			} else {
				inner = v.String()
			}
			hasInner = true
			continue
		}
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(v.String())
	}

	if len(e.Children) == 0 && !hasInner {
		b.WriteString(" />")
		return
	}
	b.WriteString(">\n")

	children := make([]Element, len(e.Children))
	copy(children, e.Children)
	sort.SliceStable(children, func(i, j int) bool { return children[i].Name < children[j].Name })
	for _, child := range children {
		child.format(b, depth+1)
		b.WriteByte('\n')
	}
	if hasInner {
		for _, line := range strings.Split(inner, "\n") {
			b.WriteString(indent)
			b.WriteByte('\t')
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	b.WriteString(indent)
	b.WriteString("</")
	b.WriteString(e.Name)
	b.WriteByte('>')
}
