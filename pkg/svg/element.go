package svg

import "strings"

// xmlns is the SVG 1.1 namespace set on every root element.
const xmlns = "http://www.w3.org/2000/svg"

// attr is one attribute name/value pair. The position of the first write
// determines serialization order; later writes to the same name overwrite
// the value in place.
type attr struct {
	name  string
	value string
}

// Element is one markup tag instance: a tag name, ordered attributes,
// ordered children and optional inline text content. Elements are created
// by builders and become effectively immutable once appended to a parent.
type Element struct {
	Tag      string
	Children []*Element
	Text     string

	attrs []attr
}

func newElement(tag string) *Element {
	return &Element{Tag: tag}
}

// containerTags are the kinds serialized as <tag>...</tag> even when empty.
// Everything else self-closes.
var containerTags = map[string]bool{
	"svg":            true,
	"g":              true,
	"defs":           true,
	"clipPath":       true,
	"mask":           true,
	"symbol":         true,
	"text":           true,
	"tspan":          true,
	"linearGradient": true,
	"radialGradient": true,
}

// SetAttr writes an attribute value, overwriting any earlier write to the
// same name while keeping its original position in the serialization order.
func (e *Element) SetAttr(name, value string) {
	for i := range e.attrs {
		if e.attrs[i].name == name {
			e.attrs[i].value = value
			return
		}
	}
	e.attrs = append(e.attrs, attr{name: name, value: value})
}

// Attr returns the current value of an attribute and whether it is set.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.name == name {
			return a.value, true
		}
	}
	return "", false
}

func (e *Element) appendChild(c *Element) {
	e.Children = append(e.Children, c)
}

// escaper rewrites the five reserved markup characters in a single pass, so
// ampersands introduced by one substitution are never re-escaped by another.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Render serializes the element and its subtree as markup text.
func (e *Element) Render() string {
	var b strings.Builder
	e.writeTo(&b)
	return b.String()
}

func (e *Element) writeTo(b *strings.Builder) {
	b.WriteByte('<')
	b.WriteString(e.Tag)
	for _, a := range e.attrs {
		b.WriteByte(' ')
		b.WriteString(a.name)
		b.WriteString(`="`)
		b.WriteString(escaper.Replace(a.value))
		b.WriteByte('"')
	}
	if !containerTags[e.Tag] {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	if e.Text != "" {
		b.WriteString(escaper.Replace(e.Text))
	}
	for _, c := range e.Children {
		c.writeTo(b)
	}
	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteByte('>')
}
