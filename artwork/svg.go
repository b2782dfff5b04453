// Package artwork generates derived icon renditions from default
// artwork: drop-shadow composites, flat-color remaps, and loyalty
// numerals rendered from font outlines.
//
// Generators are maintenance tools run against an icon-set directory.
// They read the set's default artwork (plus component templates named
// with a leading underscore, which the build never stages) and write
// the derived files the configured styles expect.
package artwork

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/chromana/chromana/errors"
)

const (
	svgNS   = "http://www.w3.org/2000/svg"
	xlinkNS = "http://www.w3.org/1999/xlink"
)

// Attr is a single element attribute. Name is the local name, with
// xlink attributes written in prefixed form.
type Attr struct {
	Name  string
	Value string
}

// Element is one node of a parsed SVG document. Text holds the
// element's character data; artwork files are shape trees so text
// ordering relative to children is not preserved.
type Element struct {
	Name     string
	Attrs    []Attr
	Text     string
	Children []*Element
}

// Attr returns the value of the named attribute, or "".
func (e *Element) Attr(name string) string {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// HasAttr reports whether the named attribute is present.
func (e *Element) HasAttr(name string) bool {
	for _, a := range e.Attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

// SetAttr sets or replaces the named attribute.
func (e *Element) SetAttr(name, value string) {
	for i, a := range e.Attrs {
		if a.Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// FirstChild returns the first child element with the given local
// name, or nil.
func (e *Element) FirstChild(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ParseElement parses an SVG document into an element tree. Namespace
// declarations are dropped; Marshal re-emits canonical ones.
func ParseElement(data []byte) (*Element, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, errors.New("document has no root element")
		}
		if err != nil {
			return nil, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return parseTree(dec, start)
		}
	}
}

// ParseFile reads and parses an artwork file.
func ParseFile(path string) (*Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewAssetError(path, "failed to read artwork: %v", err)
	}
	root, err := ParseElement(data)
	if err != nil {
		return nil, errors.NewAssetError(path, "failed to parse artwork: %v", err)
	}
	return root, nil
}

func parseTree(dec *xml.Decoder, start xml.StartElement) (*Element, error) {
	elem := &Element{Name: start.Name.Local}
	for _, a := range start.Attr {
		switch a.Name.Space {
		case "", svgNS:
			if a.Name.Local == "xmlns" {
				continue
			}
			elem.Attrs = append(elem.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
		case xlinkNS:
			elem.Attrs = append(elem.Attrs, Attr{Name: "xlink:" + a.Name.Local, Value: a.Value})
		case "xmlns":
			// prefix declaration, re-emitted canonically on write
		default:
			elem.Attrs = append(elem.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
		}
	}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := parseTree(dec, t)
			if err != nil {
				return nil, err
			}
			elem.Children = append(elem.Children, child)
		case xml.EndElement:
			return elem, nil
		case xml.CharData:
			elem.Text += strings.TrimSpace(string(t))
		}
	}
}

// Marshal serializes the tree as a standalone SVG document. The root
// element carries the SVG namespace, plus the xlink namespace when any
// attribute in the tree uses it.
func (e *Element) Marshal() []byte {
	var b bytes.Buffer
	b.WriteString(xml.Header)
	e.write(&b, true)
	b.WriteByte('\n')
	return b.Bytes()
}

// WriteFile marshals the tree to path.
func WriteFile(path string, root *Element) error {
	if err := os.WriteFile(path, root.Marshal(), 0o644); err != nil {
		return errors.NewAssetError(path, "failed to write artwork: %v", err)
	}
	return nil
}

func (e *Element) write(b *bytes.Buffer, root bool) {
	b.WriteByte('<')
	b.WriteString(e.Name)
	if root {
		writeAttr(b, "xmlns", svgNS)
		if e.usesXlink() {
			writeAttr(b, "xmlns:xlink", xlinkNS)
		}
	}
	for _, a := range e.Attrs {
		writeAttr(b, a.Name, a.Value)
	}
	if e.Text == "" && len(e.Children) == 0 {
		b.WriteString("/>")
		return
	}
	b.WriteByte('>')
	if e.Text != "" {
		_ = xml.EscapeText(b, []byte(e.Text))
	}
	for _, c := range e.Children {
		c.write(b, false)
	}
	b.WriteString("</")
	b.WriteString(e.Name)
	b.WriteByte('>')
}

func (e *Element) usesXlink() bool {
	for _, a := range e.Attrs {
		if strings.HasPrefix(a.Name, "xlink:") {
			return true
		}
	}
	for _, c := range e.Children {
		if c.usesXlink() {
			return true
		}
	}
	return false
}

func writeAttr(b *bytes.Buffer, name, value string) {
	b.WriteByte(' ')
	b.WriteString(name)
	b.WriteString(`="`)
	_ = xml.EscapeText(b, []byte(value))
	b.WriteByte('"')
}

// group wraps children in a <g> element, optionally transformed.
func group(transform string, children []*Element) *Element {
	g := &Element{Name: "g", Children: children}
	if transform != "" {
		g.SetAttr("transform", transform)
	}
	return g
}
