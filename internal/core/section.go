package core

type Section string

const (
	SectionHero      Section = "hero"
	SectionSkills    Section = "skills"
	SectionProjects  Section = "projects"
	SectionOfferings Section = "offerings"
	SectionContact   Section = "contact"
)

// SectionOrder is the fixed page order.
var SectionOrder = []Section{SectionHero, SectionSkills, SectionProjects, SectionOfferings, SectionContact}

// InlineFormatter turns a bullet or description string into inline nodes.
type InlineFormatter func(string) []*Node

func PlainText(s string) []*Node {
	return []*Node{Text(s)}
}

func section(name Section, style StyleSet) *Node {
	return Element("section").
		WithRole(RoleSection).
		WithAttr("id", string(name)).
		WithClass(style...)
}

func heading(h Heading) *Node {
	n := Element("h2").WithRole(RoleHeading).WithClass(headingStyle...)
	if h.Icon != "" {
		n.Append(Element("span", Text(h.Icon)).WithAttr("role", "img").WithAttr("aria-hidden", "true"))
		n.Append(Text(" "))
	}
	return n.Append(Text(h.Title))
}

func image(src, alt string, tokens ...string) *Node {
	return Element("img").WithAttr("src", src).WithAttr("alt", alt).WithClass(tokens...)
}

func bullets(items []string, format InlineFormatter) *Node {
	ul := Element("ul").WithRole(RoleBullets).WithClass(bulletStyle...)
	for _, item := range items {
		ul.Append(Element("li", format(item)...))
	}
	return ul
}

func RenderHero(h Hero) *Node {
	s := section(SectionHero, heroStyle)
	s.Append(
		image(h.AvatarRef, orDefault(h.AvatarAlt, h.Title), "w-28", "h-28", "sm:w-36", "sm:h-36", "rounded-full", "object-cover", "mb-6"),
		Element("h1", Text(h.Title)).WithClass("text-3xl", "sm:text-5xl", "md:text-6xl", "font-extrabold", "mb-4"),
		Element("p", Text(h.Subtitle)).WithClass("text-base", "sm:text-xl", "max-w-2xl", "mx-auto", "mb-4"),
		renderActionRow(h.Actions).WithClass("justify-center", "mt-4"),
	)
	return s
}

// RenderSkills emits one compact cell per skill, in order.
func RenderSkills(h Heading, skills []Skill) *Node {
	grid := Element("div").WithRole(RoleGrid).WithClass(skillGridStyle...)
	for _, sk := range skills {
		cell := Surface([]*Node{
			image(sk.IconRef, sk.Name, "w-7", "h-7", "sm:w-8", "sm:h-8", "rounded"),
			Element("span", Text(sk.Name)).WithClass("font-medium"),
		}, skillCellStyle...)
		grid.Append(cell.WithAttr("data-skill", sk.Name))
	}
	return section(SectionSkills, sectionStyle).Append(heading(h), grid)
}

func RenderProjects(h Heading, projects []Project, format InlineFormatter) *Node {
	grid := Element("div").WithRole(RoleGrid).WithClass(cardGridStyle...)
	for _, p := range projects {
		body := SurfaceContent([]*Node{
			Element("h3", Text(p.Title)).WithClass("text-lg", "sm:text-xl", "font-bold", "mb-2"),
			Element("p", format(p.Description)...).WithClass("text-sm", "mb-4"),
			bullets(p.Bullets, format),
			renderActionRow(p.Actions),
		})
		grid.Append(Surface([]*Node{
			image(p.ImageRef, p.Title, "w-full", "h-44", "sm:h-56", "object-cover", "rounded-t-2xl"),
			body,
		}))
	}
	return section(SectionProjects, sectionStyle).Append(heading(h), grid)
}

func RenderOfferings(h Heading, offerings []Offering, format InlineFormatter) *Node {
	grid := Element("div").WithRole(RoleGrid).WithClass(cardGridStyle...)
	for _, o := range offerings {
		title := Element("h3",
			image(o.IconRef, o.Title, "w-6", "h-6", "sm:w-7", "sm:h-7"),
			Text(o.Title),
		).WithClass("text-lg", "sm:text-xl", "font-bold", "mb-2", "flex", "items-center", "gap-2")
		grid.Append(Surface([]*Node{
			SurfaceContent([]*Node{title, bullets(o.Bullets, format)}),
		}))
	}
	return section(SectionOfferings, sectionStyle).Append(heading(h), grid)
}

func RenderContact(h Heading, c Contact) *Node {
	msg := Element("p",
		Text(orDefault(c.Message, DefaultContactMessage)+" "),
		Element("span", Text(c.Email)).WithClass("font-medium"),
	).WithClass("mb-2")
	card := Surface([]*Node{
		SurfaceContent([]*Node{msg, renderActionRow(c.Actions)}),
	}, "max-w-2xl", "mx-auto")
	return section(SectionContact, sectionStyle).Append(heading(h), card)
}
