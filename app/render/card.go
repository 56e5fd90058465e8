package render

import (
	"time"

	"github.com/vibast-solutions/ms-go-vps-showcase/app/entity"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/motion"
)

const (
	MissingPrice = "-"
	MarkerText   = "Best Value"
)

type Row struct {
	Icon   string
	Label  string
	Value  string
	Motion motion.Spec
}

type Ribbon struct {
	Text   string
	Motion motion.Spec
}

type Marker struct {
	Text   string
	Motion motion.Spec
}

// Card is the rendered form of one plan entry. Backends draw it; they do not re-derive
// timing from the entry.
type Card struct {
	Index    int
	Title    string
	Subtitle string
	Price    string
	Icon     string
	Spec     string
	Rows     []Row
	Ribbon   *Ribbon
	Marker   *Marker
	Entrance motion.Spec
	IconPop  motion.Spec
	Hover    motion.Spec
	Press    motion.Spec
}

func (c Card) Compact() bool {
	return len(c.Rows) == 0 && c.Spec != ""
}

// RevealAt is the time after the section reveal at which every row of the card has started.
func (c Card) RevealAt() time.Duration {
	if len(c.Rows) == 0 {
		return c.Entrance.Transition.Delay
	}
	return c.Rows[len(c.Rows)-1].Motion.Transition.Delay
}

// NewCard renders plan p at zero-based position i within its group.
func NewCard(p entity.PlanEntry, i int) Card {
	if i < 0 {
		i = 0
	}

	card := Card{
		Index:    i,
		Title:    p.Title,
		Subtitle: p.Subtitle,
		Price:    p.PriceLabel,
		Icon:     p.EmphasisIcon,
		Spec:     p.Spec,
		Entrance: motion.FadeInUp(motion.CardStagger.Delay(i), motion.TriggerInViewOnce),
		IconPop:  motion.IconPop(),
		Hover:    motion.Lift(),
		Press:    motion.Press(),
	}
	if card.Price == "" {
		card.Price = MissingPrice
	}

	if len(p.Features) > 0 {
		card.Rows = make([]Row, 0, len(p.Features))
		for j, f := range p.Features {
			card.Rows = append(card.Rows, Row{
				Icon:   f.Icon,
				Label:  f.Label,
				Value:  f.Value,
				Motion: motion.FadeInUp(motion.CardRows.Delay(i, j), motion.TriggerInViewOnce),
			})
		}
	}

	if p.TagText != "" {
		card.Ribbon = &Ribbon{Text: p.TagText, Motion: motion.RibbonDrop()}
	}
	if p.Highlighted {
		card.Marker = &Marker{Text: MarkerText, Motion: motion.BadgeIn()}
	}

	if p.IsFlat() {
		card.Hover = motion.Nudge()
	}
	return card
}

func NewCards(plans []entity.PlanEntry) []Card {
	cards := make([]Card, 0, len(plans))
	for i, p := range plans {
		cards = append(cards, NewCard(p, i))
	}
	return cards
}
