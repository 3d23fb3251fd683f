package core

import "fmt"

type NodeKind int

const (
	ElementNode NodeKind = iota
	TextNode
)

func (k NodeKind) String() string {
	if k == TextNode {
		return "text"
	}
	return "element"
}

func (k NodeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *NodeKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "text":
		*k = TextNode
	case "element":
		*k = ElementNode
	default:
		return fmt.Errorf("unknown node kind %q", b)
	}
	return nil
}

type Role string

const (
	RolePage           Role = "page"
	RoleSection        Role = "section"
	RoleHeading        Role = "heading"
	RoleGrid           Role = "grid"
	RoleSurface        Role = "surface"
	RoleSurfaceContent Role = "surface-content"
	RoleAction         Role = "action"
	RoleActionRow      Role = "action-row"
	RoleSkill          Role = "skill"
	RoleBullets        Role = "bullets"
)

type Attr struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Node is one element or text run of the rendered page. Attribute, class and
// child order is insertion order; serializers must keep it.
type Node struct {
	Kind     NodeKind `json:"kind"`
	Tag      string   `json:"tag,omitempty"`
	Role     Role     `json:"role,omitempty"`
	Text     string   `json:"text,omitempty"`
	Attrs    []Attr   `json:"attrs,omitempty"`
	Class    []string `json:"class,omitempty"`
	Children []*Node  `json:"children,omitempty"`
}

func Element(tag string, children ...*Node) *Node {
	return &Node{Kind: ElementNode, Tag: tag, Children: children}
}

func Text(s string) *Node {
	return &Node{Kind: TextNode, Text: s}
}

func (n *Node) WithRole(role Role) *Node {
	n.Role = role
	return n
}

func (n *Node) WithAttr(key, value string) *Node {
	n.Attrs = append(n.Attrs, Attr{Key: key, Value: value})
	return n
}

func (n *Node) WithClass(tokens ...string) *Node {
	n.Class = append(n.Class, tokens...)
	return n
}

func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

func (n *Node) HasClass(token string) bool {
	for _, c := range n.Class {
		if c == token {
			return true
		}
	}
	return false
}

// TextContent concatenates every text run below n in document order.
func (n *Node) TextContent() string {
	if n == nil {
		return ""
	}
	if n.Kind == TextNode {
		return n.Text
	}
	var out string
	for _, c := range n.Children {
		out += c.TextContent()
	}
	return out
}

// Find returns every node below n (n included) whose role matches, in
// document order.
func (n *Node) Find(role Role) []*Node {
	var found []*Node
	n.Walk(func(m *Node) {
		if m.Role == role {
			found = append(found, m)
		}
	})
	return found
}

func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
