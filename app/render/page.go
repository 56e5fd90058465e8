package render

import (
	"time"

	"github.com/vibast-solutions/ms-go-vps-showcase/app/entity"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/motion"
)

const (
	AnchorPlans     = "plans"
	AnchorRecommend = "recommend"
)

type Blob struct {
	Name   string
	Motion motion.Spec
}

type Page struct {
	Title          string
	Background     []Blob
	Hero           entity.Hero
	HeroMotion     motion.Spec
	Sections       []Section
	Recommendation entity.Recommendation
	Footer         entity.Footer
	BlockMotion    motion.Spec
	ListStagger    motion.Stagger
}

func NewPage(c *entity.Catalog) *Page {
	p := &Page{
		Title: c.Hero.Brand,
		Background: []Blob{
			{Name: "blob-top", Motion: motion.Drift(-20, 14*time.Second)},
			{Name: "blob-bottom", Motion: motion.Drift(20, 16*time.Second)},
		},
		Hero:           c.Hero,
		HeroMotion:     motion.FadeInUp(0, motion.TriggerMount),
		Sections:       make([]Section, 0, len(c.Groups)),
		Recommendation: c.Recommendation,
		Footer:         c.Footer,
		BlockMotion:    motion.FadeInUp(0, motion.TriggerInViewOnce),
		ListStagger:    motion.RowStagger,
	}
	if p.Title == "" {
		p.Title = "VPS Showcase"
	}

	for _, g := range c.Groups {
		p.Sections = append(p.Sections, NewSection(g))
	}
	return p
}

func (p *Page) CardCount() int {
	n := 0
	for _, s := range p.Sections {
		n += len(s.Cards)
	}
	return n
}
