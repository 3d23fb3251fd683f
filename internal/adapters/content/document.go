package content

import (
	"fmt"

	"github.com/3-lines-studio/folio/internal/core"
)

type document struct {
	Meta      meta       `yaml:"meta" json:"meta"`
	Headings  headings   `yaml:"headings" json:"headings"`
	Hero      hero       `yaml:"hero" json:"hero"`
	Skills    []skill    `yaml:"skills" json:"skills"`
	Projects  []project  `yaml:"projects" json:"projects"`
	Offerings []offering `yaml:"offerings" json:"offerings"`
	Contact   contact    `yaml:"contact" json:"contact"`
}

type meta struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Lang        string `yaml:"lang" json:"lang"`
}

type heading struct {
	Title string `yaml:"title" json:"title"`
	Icon  string `yaml:"icon" json:"icon"`
}

type headings struct {
	Skills    heading `yaml:"skills" json:"skills"`
	Projects  heading `yaml:"projects" json:"projects"`
	Offerings heading `yaml:"offerings" json:"offerings"`
	Contact   heading `yaml:"contact" json:"contact"`
}

// action keeps target as a pointer: absent and empty are different inputs.
type action struct {
	Label   string  `yaml:"label" json:"label"`
	Target  *string `yaml:"target" json:"target"`
	Handler string  `yaml:"handler" json:"handler"`
	Variant string  `yaml:"variant" json:"variant"`
}

type hero struct {
	Title     string   `yaml:"title" json:"title"`
	Subtitle  string   `yaml:"subtitle" json:"subtitle"`
	Avatar    string   `yaml:"avatar" json:"avatar"`
	AvatarAlt string   `yaml:"avatar_alt" json:"avatar_alt"`
	Actions   []action `yaml:"actions" json:"actions"`
}

type skill struct {
	Name string `yaml:"name" json:"name"`
	Icon string `yaml:"icon" json:"icon"`
}

type project struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description"`
	Image       string   `yaml:"image" json:"image"`
	Bullets     []string `yaml:"bullets" json:"bullets"`
	Actions     []action `yaml:"actions" json:"actions"`
}

type offering struct {
	Title   string   `yaml:"title" json:"title"`
	Icon    string   `yaml:"icon" json:"icon"`
	Bullets []string `yaml:"bullets" json:"bullets"`
}

type contact struct {
	Email   string   `yaml:"email" json:"email"`
	Message string   `yaml:"message" json:"message"`
	Actions []action `yaml:"actions" json:"actions"`
}

func (d document) toCore() (core.Content, error) {
	c := core.Content{
		Meta: core.Meta{Title: d.Meta.Title, Description: d.Meta.Description, Lang: d.Meta.Lang},
		Headings: core.Headings{
			Skills:    core.Heading(d.Headings.Skills),
			Projects:  core.Heading(d.Headings.Projects),
			Offerings: core.Heading(d.Headings.Offerings),
			Contact:   core.Heading(d.Headings.Contact),
		},
		Hero: core.Hero{
			Title:     d.Hero.Title,
			Subtitle:  d.Hero.Subtitle,
			AvatarRef: d.Hero.Avatar,
			AvatarAlt: d.Hero.AvatarAlt,
		},
		Contact: core.Contact{Email: d.Contact.Email, Message: d.Contact.Message},
	}

	var err error
	if c.Hero.Actions, err = toActions("hero.actions", d.Hero.Actions); err != nil {
		return core.Content{}, err
	}
	if c.Contact.Actions, err = toActions("contact.actions", d.Contact.Actions); err != nil {
		return core.Content{}, err
	}

	for _, s := range d.Skills {
		c.Skills = append(c.Skills, core.Skill{Name: s.Name, IconRef: s.Icon})
	}

	for i, p := range d.Projects {
		actions, err := toActions(fmt.Sprintf("projects[%d].actions", i), p.Actions)
		if err != nil {
			return core.Content{}, err
		}
		c.Projects = append(c.Projects, core.Project{
			Title:       p.Title,
			Description: p.Description,
			ImageRef:    p.Image,
			Bullets:     p.Bullets,
			Actions:     actions,
		})
	}

	for _, o := range d.Offerings {
		c.Offerings = append(c.Offerings, core.Offering{Title: o.Title, IconRef: o.Icon, Bullets: o.Bullets})
	}

	return c, nil
}

func toActions(field string, in []action) ([]core.ActionSpec, error) {
	var out []core.ActionSpec
	var issues []core.FieldError
	for i, a := range in {
		variant, err := core.ParseVariant(a.Variant)
		if err != nil {
			issues = append(issues, core.FieldError{Field: fmt.Sprintf("%s[%d].variant", field, i), Message: err.Error()})
			continue
		}
		spec := core.NewActionSpec(a.Label, a.Target, variant)
		if a.Target == nil && a.Handler != "" {
			spec.Kind = core.Trigger{Handler: a.Handler}
		}
		out = append(out, spec)
	}
	if len(issues) > 0 {
		return nil, &core.ValidationError{Issues: issues}
	}
	return out, nil
}
