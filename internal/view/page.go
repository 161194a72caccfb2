package view

import (
	"github.com/davidfer1112/portfolio/internal/content"
	"github.com/davidfer1112/portfolio/internal/decor"
	"github.com/davidfer1112/portfolio/internal/locale"
	"github.com/davidfer1112/portfolio/internal/nav"
)

// LanguageOption is one button of the language switch.
type LanguageOption struct {
	Code   string
	Label  string
	Active bool
}

// ExperienceItem is one card of the experience list.
type ExperienceItem struct {
	Index    int
	Entry    content.Entry
	Selected bool
}

// ExperienceView is the data of the experience section.
type ExperienceView struct {
	Text     content.Experience
	Items    []ExperienceItem
	Selected int
	Detail   content.Entry
}

// Links are the outbound contact actions.
type Links struct {
	GitHub   string
	LinkedIn string
	Mail     string
	CV       string
}

// Page is everything the page template renders, sections in page order.
type Page struct {
	SessionID  string
	Lang       string
	Languages  []LanguageOption
	Nav        []nav.Item
	Text       *content.Content
	Skills     []content.SkillGroup
	Experience ExperienceView
	Links      Links
	Decor      decor.Frame
}

// Composer builds page view models.
type Composer struct {
	Links Links
	Decor decor.Layer
}

// Page builds the view model for s from a single snapshot of its state.
func (c *Composer) Page(s *Session) Page {
	snap := s.Snapshot()
	return Page{
		SessionID:  s.ID,
		Lang:       snap.Lang.String(),
		Languages:  Languages(snap.Lang),
		Nav:        nav.Items(snap.Text),
		Text:       snap.Text,
		Skills:     snap.Text.Skills.ByCategory(),
		Experience: Experience(snap),
		Links:      c.Links,
		Decor:      c.Decor.At(0),
	}
}

// Languages lists the switch options with active marked.
func Languages(active locale.Language) []LanguageOption {
	all := locale.All()
	opts := make([]LanguageOption, 0, len(all))
	for _, l := range all {
		opts = append(opts, LanguageOption{Code: l.String(), Label: l.Label(), Active: l == active})
	}
	return opts
}

// Experience builds the experience section from a session snapshot.
func Experience(snap Snapshot) ExperienceView {
	items := make([]ExperienceItem, len(snap.Entries))
	for i, e := range snap.Entries {
		items[i] = ExperienceItem{Index: i, Entry: e, Selected: i == snap.Selected}
	}
	return ExperienceView{
		Text:     snap.Text.Experience,
		Items:    items,
		Selected: snap.Selected,
		Detail:   snap.Current,
	}
}
