package taxon

import (
	"encoding/xml"
	"strings"
)

// Node is one element of an XML document. Repeated children are kept as
// separate nodes in document order, so the multiplicity of any field is
// preserved.
type Node struct {
	// Name is the local name of the element.
	Name string

	// Text is the character data directly inside the element.
	Text string

	// Children are nested elements in document order.
	Children []*Node
}

// UnmarshalXML implements xml.Unmarshaler.
func (n *Node) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	n.Name = start.Name.Local
	var text strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child := &Node{}
			if err = d.DecodeElement(child, &t); err != nil {
				return err
			}
			n.Children = append(n.Children, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			n.Text = text.String()
			return nil
		}
	}
}

// FindAll returns all descendants that match a slash-separated path of
// element names relative to the node. Only direct parent/child steps are
// followed: "LineageEx/Taxon" never matches the node's own children
// named "Taxon".
func (n *Node) FindAll(path string) []*Node {
	if n == nil {
		return nil
	}
	current := []*Node{n}
	for _, step := range strings.Split(path, "/") {
		var next []*Node
		for _, c := range current {
			for _, child := range c.Children {
				if child.Name == step {
					next = append(next, child)
				}
			}
		}
		if len(next) == 0 {
			return nil
		}
		current = next
	}
	return current
}

// Find returns the first node matching the path or nil.
func (n *Node) Find(path string) *Node {
	res := n.FindAll(path)
	if len(res) == 0 {
		return nil
	}
	return res[0]
}
