package core

import (
	"net/url"
	"strings"
)

// RenderAction turns one ActionSpec into a link or a button. Extra attributes
// are appended after the computed ones. An extra "class" adds tokens instead
// of replacing the variant style, and an extra whose key is already set
// (href, target, rel, type, or an earlier extra) is ignored.
func RenderAction(spec ActionSpec, extra ...Attr) *Node {
	var n *Node
	style := append(StyleSet(nil), actionBase...)
	style = append(style, VariantStyle(spec.Variant)...)

	switch kind := spec.Kind.(type) {
	case Link:
		n = Element("a").WithAttr("href", kind.Target)
		if IsExternalTarget(kind.Target) {
			n.WithAttr("target", "_blank").WithAttr("rel", "noopener noreferrer")
		}
		style = append(style, linkLayout...)
	default:
		n = Element("button").WithAttr("type", "button")
		if t, ok := kind.(Trigger); ok && t.Handler != "" {
			n.WithAttr("data-handler", t.Handler)
		}
	}

	n.WithRole(RoleAction).WithClass(style...)
	for _, a := range extra {
		if a.Key == "class" {
			n.WithClass(strings.Fields(a.Value)...)
			continue
		}
		if _, set := n.Attr(a.Key); set {
			continue
		}
		n.WithAttr(a.Key, a.Value)
	}
	return n.Append(Text(spec.Label))
}

// IsExternalTarget reports whether target leaves the site: an absolute URL
// or protocol-relative URL with a host, and not mailto or tel.
func IsExternalTarget(target string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "mailto", "tel":
		return false
	}
	return u.Host != ""
}

func renderActionRow(actions []ActionSpec) *Node {
	row := Element("div").WithRole(RoleActionRow).WithClass(actionRowStyle...)
	for _, a := range actions {
		row.Append(RenderAction(a))
	}
	return row
}
