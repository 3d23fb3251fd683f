package core

import (
	"fmt"
	"strings"
)

type validator struct {
	issues []FieldError
}

func (v *validator) require(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.fail(field, "is required")
	}
}

func (v *validator) fail(field, msg string) {
	v.issues = append(v.issues, FieldError{Field: field, Message: msg})
}

func (v *validator) actions(field string, actions []ActionSpec) {
	for i, a := range actions {
		prefix := fmt.Sprintf("%s[%d]", field, i)
		v.require(prefix+".label", a.Label)
		if !a.Variant.Valid() {
			v.fail(prefix+".variant", fmt.Sprintf("unknown variant %s", a.Variant))
		}
		switch kind := a.Kind.(type) {
		case Link:
			if strings.TrimSpace(kind.Target) == "" {
				v.fail(prefix+".target", "must not be empty when present")
			}
		case Trigger:
		default:
			v.fail(prefix, "action kind is not resolved")
		}
	}
}

func (v *validator) bullets(field string, items []string) {
	for i, b := range items {
		v.require(fmt.Sprintf("%s[%d]", field, i), b)
	}
}

// Validate checks every required field and sequence rule. It returns nil or
// a *ValidationError listing all issues in content order.
func Validate(c Content) error {
	v := &validator{}

	v.require("hero.title", c.Hero.Title)
	v.require("hero.subtitle", c.Hero.Subtitle)
	v.require("hero.avatar", c.Hero.AvatarRef)
	v.actions("hero.actions", c.Hero.Actions)

	for i, s := range c.Skills {
		prefix := fmt.Sprintf("skills[%d]", i)
		v.require(prefix+".name", s.Name)
		v.require(prefix+".icon", s.IconRef)
	}

	for i, p := range c.Projects {
		prefix := fmt.Sprintf("projects[%d]", i)
		v.require(prefix+".title", p.Title)
		v.require(prefix+".description", p.Description)
		v.require(prefix+".image", p.ImageRef)
		v.bullets(prefix+".bullets", p.Bullets)
		v.actions(prefix+".actions", p.Actions)
	}

	for i, o := range c.Offerings {
		prefix := fmt.Sprintf("offerings[%d]", i)
		v.require(prefix+".title", o.Title)
		v.require(prefix+".icon", o.IconRef)
		v.bullets(prefix+".bullets", o.Bullets)
	}

	v.require("contact.email", c.Contact.Email)
	v.actions("contact.actions", c.Contact.Actions)

	if len(v.issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: v.issues}
}
