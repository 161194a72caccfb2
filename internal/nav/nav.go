// Package nav derives the floating navigation and scrolls to page sections.
package nav

import (
	"strings"

	"github.com/davidfer1112/portfolio/internal/content"
)

// Section ids, in page order.
const (
	Hero       = "hero"
	About      = "about"
	Skills     = "skills"
	Experience = "experience"
	Roadmap    = "roadmap"
	Contact    = "contact"
)

// Sections lists every section id of the page in vertical order.
var Sections = []string{Hero, About, Skills, Experience, Roadmap, Contact}

// Item is one entry of the floating navigation.
type Item struct {
	Label  string
	Anchor string
}

// Href returns the in-page link for the item.
func (i Item) Href() string { return "#" + i.Anchor }

// Items builds the navigation for c. It is recomputed on every render so
// the labels always follow the active language.
func Items(c *content.Content) []Item {
	return []Item{
		{Label: c.Nav.Home, Anchor: Hero},
		{Label: c.Nav.About, Anchor: About},
		{Label: c.Nav.Skills, Anchor: Skills},
		{Label: c.Nav.Experience, Anchor: Experience},
		{Label: c.Nav.Education, Anchor: Roadmap},
		{Label: c.Nav.Contact, Anchor: Contact},
	}
}

// Scroller brings a section into view. Implementations are supplied by
// the rendering host.
type Scroller interface {
	ScrollIntoView(id string)
}

// ScrollerFunc adapts a function to Scroller.
type ScrollerFunc func(id string)

func (f ScrollerFunc) ScrollIntoView(id string) { f(id) }

// Navigator resolves anchors against the sections mounted on the page.
type Navigator struct {
	sections map[string]struct{}
}

// NewNavigator returns a navigator over the given section ids.
func NewNavigator(sections ...string) *Navigator {
	n := &Navigator{sections: make(map[string]struct{}, len(sections))}
	for _, id := range sections {
		n.sections[id] = struct{}{}
	}
	return n
}

// Resolve normalises anchor ("about" or "#about") and reports whether a
// section with that id exists.
func (n *Navigator) Resolve(anchor string) (string, bool) {
	id := strings.TrimPrefix(strings.TrimSpace(anchor), "#")
	if id == "" {
		return "", false
	}
	_, ok := n.sections[id]
	return id, ok
}

// NavigateTo scrolls to the section matching anchor. Unknown anchors are
// ignored and the scroller is not called.
func (n *Navigator) NavigateTo(anchor string, s Scroller) bool {
	id, ok := n.Resolve(anchor)
	if !ok || s == nil {
		return false
	}
	s.ScrollIntoView(id)
	return true
}
