package core

import "testing"

func TestSurfaceAppendsExtraTokens(t *testing.T) {
	child := Text("hello")
	n := Surface([]*Node{child}, "max-w-2xl", "mx-auto")

	if n.Role != RoleSurface {
		t.Errorf("Expected role surface, got %q", n.Role)
	}
	for _, token := range surfaceBase {
		if !n.HasClass(token) {
			t.Errorf("Expected base token %q to be kept", token)
		}
	}
	if !n.HasClass("max-w-2xl") || !n.HasClass("mx-auto") {
		t.Errorf("Expected extra tokens to be appended, got %v", n.Class)
	}
	if len(n.Children) != 1 || n.Children[0] != child {
		t.Error("Expected children to be attached untouched")
	}
}

func TestSurfaceContentNesting(t *testing.T) {
	inner := SurfaceContent([]*Node{Text("x")})
	outer := Surface([]*Node{inner})

	if outer.Children[0].Role != RoleSurfaceContent {
		t.Errorf("Expected surface-content directly inside surface, got %q", outer.Children[0].Role)
	}
	if !inner.HasClass("p-6") {
		t.Error("Expected surface content padding")
	}
}
