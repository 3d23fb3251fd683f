package core

type ComposerOption func(*Composer)

// WithInlineFormatter sets how bullets and descriptions become inline nodes.
func WithInlineFormatter(f InlineFormatter) ComposerOption {
	return func(c *Composer) {
		if f != nil {
			c.format = f
		}
	}
}

// Composer assembles the page from one injected Content Model. Compose is a
// pure function of that model and safe for concurrent use.
type Composer struct {
	content Content
	format  InlineFormatter
}

func NewComposer(content Content, opts ...ComposerOption) *Composer {
	c := &Composer{
		content: content,
		format:  PlainText,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Composer) Content() Content {
	return c.content
}

// Compose validates the model and renders Hero, Skills, Projects, Offerings
// and Contact in that order. On validation failure no tree is returned.
func (c *Composer) Compose() (*Node, error) {
	if err := Validate(c.content); err != nil {
		return nil, err
	}

	root := Element("main").WithRole(RolePage).WithClass(pageStyle...)
	for _, s := range SectionOrder {
		root.Append(c.renderSection(s))
	}
	return root, nil
}

func (c *Composer) renderSection(s Section) *Node {
	m := c.content
	switch s {
	case SectionHero:
		return RenderHero(m.Hero)
	case SectionSkills:
		return RenderSkills(headingOr(m.Headings.Skills, DefaultHeadings.Skills), m.Skills)
	case SectionProjects:
		return RenderProjects(headingOr(m.Headings.Projects, DefaultHeadings.Projects), m.Projects, c.format)
	case SectionOfferings:
		return RenderOfferings(headingOr(m.Headings.Offerings, DefaultHeadings.Offerings), m.Offerings, c.format)
	case SectionContact:
		return RenderContact(headingOr(m.Headings.Contact, DefaultHeadings.Contact), m.Contact)
	}
	return nil
}

// DocumentTitle is the page title: Meta.Title, else the hero title.
func (c *Composer) DocumentTitle() string {
	return orDefault(c.content.Meta.Title, c.content.Hero.Title)
}

func (c *Composer) Lang() string {
	return orDefault(c.content.Meta.Lang, "en")
}

// Document composes the page and attaches its metadata.
func (c *Composer) Document() (Document, error) {
	root, err := c.Compose()
	if err != nil {
		return Document{}, err
	}
	return Document{
		Root:        root,
		Title:       c.DocumentTitle(),
		Description: c.content.Meta.Description,
		Lang:        c.Lang(),
	}, nil
}
