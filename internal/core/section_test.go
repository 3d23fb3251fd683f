package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridOf(t *testing.T, section *Node) *Node {
	t.Helper()
	grids := section.Find(RoleGrid)
	require.Len(t, grids, 1)
	return grids[0]
}

func TestRenderSkillsSingle(t *testing.T) {
	s := RenderSkills(DefaultHeadings.Skills, []Skill{{Name: "Python", IconRef: "icon://python"}})

	grid := gridOf(t, s)
	require.Len(t, grid.Children, 1)

	cell := grid.Children[0]
	assert.Equal(t, RoleSurface, cell.Role)
	img := cell.Children[0]
	assert.Equal(t, "img", img.Tag)
	src, _ := img.Attr("src")
	assert.Equal(t, "icon://python", src)
	assert.Equal(t, "Python", cell.TextContent())
}

func TestRenderSkillsPreservesOrder(t *testing.T) {
	var skills []Skill
	for i := 0; i < 25; i++ {
		skills = append(skills, Skill{Name: fmt.Sprintf("skill-%02d", 24-i), IconRef: "icon"})
	}
	skills = append(skills, skills[3])

	grid := gridOf(t, RenderSkills(DefaultHeadings.Skills, skills))

	require.Len(t, grid.Children, len(skills))
	for i, cell := range grid.Children {
		assert.Equal(t, skills[i].Name, cell.TextContent(), "cell %d", i)
	}
}

func TestRenderProjectTwoBulletsNoActions(t *testing.T) {
	p := Project{Title: "T", Description: "D", ImageRef: "/t.png", Bullets: []string{"a", "b"}}
	s := RenderProjects(DefaultHeadings.Projects, []Project{p}, PlainText)

	grid := gridOf(t, s)
	require.Len(t, grid.Children, 1)
	card := grid.Children[0]
	assert.Equal(t, RoleSurface, card.Role)

	lists := card.Find(RoleBullets)
	require.Len(t, lists, 1)
	assert.Equal(t, "ul", lists[0].Tag)
	require.Len(t, lists[0].Children, 2)
	assert.Equal(t, "a", lists[0].Children[0].TextContent())
	assert.Equal(t, "b", lists[0].Children[1].TextContent())

	rows := card.Find(RoleActionRow)
	require.Len(t, rows, 1)
	assert.Empty(t, rows[0].Children)
	assert.Empty(t, card.Find(RoleAction))
}

func TestRenderProjectActionsInOrder(t *testing.T) {
	p := sampleContent().Projects[0]
	s := RenderProjects(DefaultHeadings.Projects, []Project{p}, PlainText)

	actions := s.Find(RoleAction)
	require.Len(t, actions, 2)
	assert.Equal(t, "GitHub", actions[0].TextContent())
	assert.Equal(t, "Demo", actions[1].TextContent())
}

func TestRenderOfferings(t *testing.T) {
	offerings := sampleContent().Offerings
	s := RenderOfferings(DefaultHeadings.Offerings, offerings, PlainText)

	grid := gridOf(t, s)
	require.Len(t, grid.Children, len(offerings))
	for i, card := range grid.Children {
		assert.Contains(t, card.TextContent(), offerings[i].Title)
		lists := card.Find(RoleBullets)
		require.Len(t, lists, 1)
		assert.Len(t, lists[0].Children, len(offerings[i].Bullets))
	}
}

func TestRenderContact(t *testing.T) {
	c := sampleContent().Contact
	s := RenderContact(DefaultHeadings.Contact, c)

	surfaces := s.Find(RoleSurface)
	require.Len(t, surfaces, 1)
	assert.Contains(t, surfaces[0].TextContent(), "jane@example.com")
	assert.Contains(t, surfaces[0].TextContent(), DefaultContactMessage)

	actions := s.Find(RoleAction)
	require.Len(t, actions, 1)
	assert.Equal(t, "a", actions[0].Tag)
}

func TestRenderEmptyCategories(t *testing.T) {
	sections := []*Node{
		RenderSkills(DefaultHeadings.Skills, nil),
		RenderProjects(DefaultHeadings.Projects, nil, PlainText),
		RenderOfferings(DefaultHeadings.Offerings, nil, PlainText),
	}

	for _, s := range sections {
		assert.Len(t, s.Find(RoleHeading), 1)
		assert.Empty(t, gridOf(t, s).Children)
	}
}

func TestRenderEmptyBullets(t *testing.T) {
	s := RenderOfferings(DefaultHeadings.Offerings, []Offering{{Title: "x", IconRef: "i"}}, PlainText)

	lists := s.Find(RoleBullets)
	require.Len(t, lists, 1)
	assert.Empty(t, lists[0].Children)
}

func TestInlineFormatterIsApplied(t *testing.T) {
	upper := func(s string) []*Node {
		return []*Node{Element("strong", Text(s))}
	}
	s := RenderOfferings(DefaultHeadings.Offerings, []Offering{{Title: "x", IconRef: "i", Bullets: []string{"n8n"}}}, upper)

	li := s.Find(RoleBullets)[0].Children[0]
	require.Len(t, li.Children, 1)
	assert.Equal(t, "strong", li.Children[0].Tag)
}
