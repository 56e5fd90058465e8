package render

import (
	"github.com/vibast-solutions/ms-go-vps-showcase/app/entity"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/motion"
)

// Section is one plan group laid out as a heading block above a card grid. Both the
// heading and the grid reveal once when the section first enters the view; there is no
// replay setting.
type Section struct {
	ID          string
	Heading     string
	Tag         string
	Description string
	Accent      string
	Columns     Columns
	Cards       []Card
	Callout     string
	Badges      []string
	Notes       []string

	HeadingMotion motion.Spec
	TagMotion     motion.Spec
	TrailerMotion motion.Spec
}

func NewSection(g entity.PlanGroup) Section {
	return Section{
		ID:            g.ID,
		Heading:       g.Heading,
		Tag:           g.Tag,
		Description:   g.Description,
		Accent:        accentOrDefault(g.Accent),
		Columns:       LayoutFor(g.Layout),
		Cards:         NewCards(g.Plans),
		Callout:       g.Callout,
		Badges:        g.Badges,
		Notes:         g.Notes,
		HeadingMotion: motion.FadeInUp(0, motion.TriggerInViewOnce),
		TagMotion:     motion.BadgeIn(),
		TrailerMotion: motion.FadeInUp(0, motion.TriggerInViewOnce),
	}
}

func (s Section) HasTrailer() bool {
	return s.Callout != "" || len(s.Badges) > 0 || len(s.Notes) > 0
}

func accentOrDefault(accent string) string {
	if accent == "" {
		return "indigo"
	}
	return accent
}
