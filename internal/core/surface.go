package core

// Surface frames children in the panel look. Extra tokens are appended to
// the base style, never replacing it. Children are attached as given.
func Surface(children []*Node, extra ...string) *Node {
	n := Element("div", children...).WithRole(RoleSurface).WithClass(surfaceBase...)
	return n.WithClass(extra...)
}

// SurfaceContent is the inner padding wrapper; nest it directly in a Surface.
func SurfaceContent(children []*Node, extra ...string) *Node {
	n := Element("div", children...).WithRole(RoleSurfaceContent).WithClass(surfaceContentBase...)
	return n.WithClass(extra...)
}
