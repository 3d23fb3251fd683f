package core

import "fmt"

type Variant int

const (
	VariantPrimary Variant = iota
	VariantOutline
)

var variantNames = map[Variant]string{
	VariantPrimary: "primary",
	VariantOutline: "outline",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

func (v Variant) Valid() bool {
	_, ok := variantNames[v]
	return ok
}

// ParseVariant maps a content-file variant name; empty means primary.
func ParseVariant(name string) (Variant, error) {
	switch name {
	case "", "primary":
		return VariantPrimary, nil
	case "outline":
		return VariantOutline, nil
	default:
		return 0, fmt.Errorf("unknown variant %q", name)
	}
}

type ActionKind interface {
	isActionKind()
}

// Link navigates to Target.
type Link struct {
	Target string
}

// Trigger is a non-navigating button; Handler names an optional local
// handler for the display layer.
type Trigger struct {
	Handler string
}

func (Link) isActionKind()    {}
func (Trigger) isActionKind() {}

type ActionSpec struct {
	Label   string
	Kind    ActionKind
	Variant Variant
}

// NewActionSpec resolves link-or-button once: a present target is a Link,
// an absent one a Trigger.
func NewActionSpec(label string, target *string, variant Variant) ActionSpec {
	spec := ActionSpec{Label: label, Variant: variant, Kind: Trigger{}}
	if target != nil {
		spec.Kind = Link{Target: *target}
	}
	return spec
}

type Meta struct {
	Title       string
	Description string
	Lang        string
}

type Heading struct {
	Title string
	Icon  string
}

type Headings struct {
	Skills    Heading
	Projects  Heading
	Offerings Heading
	Contact   Heading
}

type Hero struct {
	Title     string
	Subtitle  string
	AvatarRef string
	AvatarAlt string
	Actions   []ActionSpec
}

type Skill struct {
	Name    string
	IconRef string
}

type Project struct {
	Title       string
	Description string
	ImageRef    string
	Bullets     []string
	Actions     []ActionSpec
}

type Offering struct {
	Title   string
	IconRef string
	Bullets []string
}

type Contact struct {
	Email   string
	Message string
	Actions []ActionSpec
}

// Content is the whole page. It is read-only once handed to a Composer.
type Content struct {
	Meta      Meta
	Headings  Headings
	Hero      Hero
	Skills    []Skill
	Projects  []Project
	Offerings []Offering
	Contact   Contact
}

var DefaultHeadings = Headings{
	Skills:    Heading{Title: "Tech Stack", Icon: "🛠"},
	Projects:  Heading{Title: "Projects", Icon: "💡"},
	Offerings: Heading{Title: "What I Bring", Icon: "🚀"},
	Contact:   Heading{Title: "Contact", Icon: "📬"},
}

const DefaultContactMessage = "Let's collaborate! Reach out at"

func headingOr(h, fallback Heading) Heading {
	if h.Title == "" {
		return fallback
	}
	return h
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
