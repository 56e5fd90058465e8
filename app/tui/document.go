package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/motion"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/render"
)

const (
	// cellPx approximates one terminal column in CSS pixels for breakpoint lookup.
	cellPx = 8
	gutter = 1

	// driftStep is the blob drift in CSS pixels per terminal column of shift.
	driftStep = 5

	heroID   = "hero"
	footerID = "footer"
)

// A section heading and its grid reveal independently, each when it enters the view.
func headingID(section string) string { return section + "/heading" }
func gridID(section string) string    { return section + "/grid" }
func trailerID(section string) string { return section + "/trailer" }

// playback records when each element was revealed on the frame clock.
type playback struct {
	clock      time.Duration
	revealedAt map[string]time.Duration
}

func newPlayback() *playback {
	return &playback{revealedAt: make(map[string]time.Duration)}
}

func (p *playback) Play(id string) {
	p.revealedAt[id] = p.clock
}

func (p *playback) since(id string) (time.Duration, bool) {
	at, ok := p.revealedAt[id]
	if !ok {
		return 0, false
	}
	return p.clock - at, true
}

type document struct {
	content string
	extents []motion.Extent
}

type docBuilder struct {
	page    *render.Page
	width   int
	play    *playback
	focus   int
	pressed bool

	blocks  []string
	offset  int
	extents []motion.Extent
}

func buildDocument(page *render.Page, width int, play *playback, focus int, pressed bool) document {
	b := &docBuilder{page: page, width: max(width, 20), play: play, focus: focus, pressed: pressed}

	b.add("", b.backdrop())
	b.add(heroID, b.hero())
	cardBase := 0
	for _, s := range page.Sections {
		b.section(s, cardBase)
		cardBase += len(s.Cards)
	}
	b.add(render.AnchorRecommend, b.recommendation())
	b.add(footerID, b.footer())

	return document{content: strings.Join(b.blocks, "\n"), extents: b.extents}
}

func (b *docBuilder) add(id, block string) {
	h := lipgloss.Height(block)
	if id != "" {
		b.extents = append(b.extents, motion.Extent{ID: id, Offset: b.offset, Height: h})
	}
	b.blocks = append(b.blocks, block)
	b.offset += h
}

func (b *docBuilder) backdrop() string {
	lines := make([]string, 0, len(b.page.Background))
	for _, blob := range b.page.Background {
		frames := blob.Motion.Keyframes()
		peak := frames[len(frames)/2].Y
		span := int(abs(peak) / driftStep)

		p := motion.Progress(blob.Motion, b.play.clock)
		phase := 1 - 2*abs(p-0.5)
		shift := int(phase * float64(span))
		if peak > 0 {
			shift = span - shift
		}
		pattern := strings.Repeat(" ", shift) + strings.Repeat("·   ", b.width/4+1)
		lines = append(lines, driftStyle.Render(truncate(pattern, b.width)))
	}
	return strings.Join(lines, "\n")
}

func (b *docBuilder) hero() string {
	h := b.page.Hero
	badges := make([]string, 0, len(h.Badges))
	for _, badge := range h.Badges {
		badges = append(badges, badgeStyle(badge.Accent).Render(badge.Text))
	}

	actions := make([]string, 0, len(h.Actions))
	for _, a := range h.Actions {
		label := fmt.Sprintf("[ %s → %s ]", a.Label, a.Href)
		if a.Primary {
			label = badgeStyle("violet").Render(label)
		}
		actions = append(actions, label)
	}

	stats := make([]string, 0, len(h.Stats))
	for _, st := range h.Stats {
		stats = append(stats, fmt.Sprintf("%s %s: %s", st.Icon, mutedStyle.Render(st.Label), priceStyle.Render(st.Value)))
	}

	parts := []string{
		"",
		brandStyle.Render(strings.TrimSpace(h.BrandIcon+" "+h.Brand)) + "  " + strings.Join(badges, " "),
		"",
	}
	if h.Kicker != "" {
		parts = append(parts, badgeStyle("violet").Render(h.Kicker))
	}
	for _, line := range h.Headline {
		parts = append(parts, headlineStyle.Render(line))
	}
	if h.Subhead != "" {
		parts = append(parts, lipgloss.NewStyle().Width(b.width).Render(mutedStyle.Render(h.Subhead)))
	}
	parts = append(parts, "", strings.Join(actions, "  "))
	if len(stats) > 0 {
		parts = append(parts, "", strings.Join(stats, "   "))
	}

	block := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if _, ok := b.play.since(heroID); !ok {
		return blank(block)
	}
	return block
}

func (b *docBuilder) section(s render.Section, cardBase int) {
	headParts := []string{""}
	if s.Tag != "" {
		headParts = append(headParts, badgeStyle(s.Accent).Render(s.Tag))
	}
	headParts = append(headParts, headlineStyle.Render(s.Heading))
	if s.Description != "" {
		headParts = append(headParts, lipgloss.NewStyle().Width(b.width).Render(mutedStyle.Render(s.Description)))
	}
	heading := lipgloss.JoinVertical(lipgloss.Left, headParts...)
	if _, ok := b.play.since(headingID(s.ID)); !ok {
		heading = blank(heading)
	}
	b.add(headingID(s.ID), heading)

	elapsed, revealed := b.play.since(gridID(s.ID))
	b.add(gridID(s.ID), b.grid(s, cardBase, elapsed, revealed))

	if s.HasTrailer() {
		trailer := b.trailer(s)
		if _, ok := b.play.since(trailerID(s.ID)); !ok {
			trailer = blank(trailer)
		}
		b.add(trailerID(s.ID), trailer)
	}
}

func (b *docBuilder) grid(s render.Section, cardBase int, elapsed time.Duration, revealed bool) string {
	cols := s.Columns.At(render.ClassForWidth(b.width * cellPx))
	cardWidth := (b.width - gutter*(cols-1)) / cols

	rows := make([]string, 0, len(s.Cards)/cols+1)
	for start := 0; start < len(s.Cards); start += cols {
		end := min(start+cols, len(s.Cards))

		height := 0
		for i := start; i < end; i++ {
			height = max(height, lipgloss.Height(b.card(s.Cards[i], s.Accent, cardWidth, 0, elapsed, cardBase+i)))
		}

		cells := make([]string, 0, 2*(end-start))
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, strings.Repeat(" ", gutter))
			}
			c := s.Cards[i]
			visible := revealed && elapsed >= c.Entrance.Transition.Delay
			cell := b.card(c, s.Accent, cardWidth, height, elapsed, cardBase+i)
			if !visible {
				cell = blank(cell)
			}
			cells = append(cells, cell)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// card draws c in a cell of the given width; elapsed is measured from the section
// reveal. A zero height means natural height. Rows and decorations keep their slots
// while hidden so the cell size never depends on playback progress.
func (b *docBuilder) card(c render.Card, accent string, width, height int, elapsed time.Duration, index int) string {

	lines := make([]string, 0, len(c.Rows)+6)
	if c.Ribbon != nil {
		lines = append(lines, ribbonStyle.Render(c.Ribbon.Text))
	} else {
		lines = append(lines, "")
	}

	if c.Compact() {
		if c.Title != "" {
			lines = append(lines, c.Title)
		}
		lines = append(lines, mutedStyle.Render(c.Spec))
		lines = append(lines, priceStyle.Render(c.Price))
	} else {
		lines = append(lines, strings.TrimSpace(c.Icon+" "+headlineStyle.Render(c.Title)))
		if c.Subtitle != "" {
			lines = append(lines, mutedStyle.Render(c.Subtitle))
		}
		lines = append(lines, mutedStyle.Render("Harga ")+priceStyle.Render(c.Price))
		for _, r := range c.Rows {
			if elapsed >= r.Motion.Transition.Delay {
				lines = append(lines, fmt.Sprintf("%s %s %s", r.Icon, mutedStyle.Render(r.Label+":"), r.Value))
			} else {
				lines = append(lines, "")
			}
		}
	}

	if c.Marker != nil {
		lines = append(lines, markerStyle.Render(c.Marker.Text))
	} else {
		lines = append(lines, "")
	}

	focused := index == b.focus
	style := cardStyle(accent, focused, focused && b.pressed).Width(max(width-2, 4))
	if height > 0 {
		// one line is reserved for the lift offset
		style = style.Height(max(height-3, 1))
	}
	if focused && !b.pressed {
		style = style.MarginBottom(1)
	} else {
		style = style.MarginTop(1)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (b *docBuilder) trailer(s render.Section) string {
	parts := []string{""}
	if s.Callout != "" {
		parts = append(parts, panelStyle.Width(max(b.width-2, 4)).Render(mutedStyle.Render(s.Callout)))
	}
	if len(s.Badges) > 0 {
		badges := make([]string, 0, len(s.Badges))
		for _, badge := range s.Badges {
			badges = append(badges, badgeStyle(s.Accent).Render(badge))
		}
		parts = append(parts, strings.Join(badges, " "))
	}
	for _, n := range s.Notes {
		parts = append(parts, mutedStyle.Render(n))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (b *docBuilder) recommendation() string {
	r := b.page.Recommendation
	elapsed, revealed := b.play.since(render.AnchorRecommend)

	parts := []string{""}
	if r.Badge != "" {
		parts = append(parts, badgeStyle("violet").Render(r.Badge))
	}
	parts = append(parts, headlineStyle.Render(r.Heading), mutedStyle.Render(r.Intro))
	for i, item := range r.Items {
		line := lipgloss.NewStyle().Width(max(b.width-4, 4)).Render("• " + brandStyle.Render(item.Label+":") + " " + item.Text)
		if !revealed || elapsed < b.page.ListStagger.Delay(i) {
			line = blank(line)
		}
		parts = append(parts, line)
	}
	if r.Footnote != "" {
		parts = append(parts, mutedStyle.Render(r.Footnote))
	}

	block := panelStyle.Width(max(b.width-2, 4)).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
	if !revealed {
		return blank(block)
	}
	return block
}

func (b *docBuilder) footer() string {
	f := b.page.Footer
	contacts := make([]string, 0, len(f.Contacts))
	for _, c := range f.Contacts {
		label := "[ " + c.Label + " ]"
		if c.Primary {
			label = badgeStyle("emerald").Render(label)
		}
		contacts = append(contacts, label)
	}

	block := panelStyle.Width(max(b.width-2, 4)).Render(lipgloss.JoinVertical(lipgloss.Left,
		headlineStyle.Render(f.Heading),
		mutedStyle.Render(f.Text),
		strings.Join(contacts, "  "),
		mutedStyle.Render(f.Fineprint),
	))
	if _, ok := b.play.since(footerID); !ok {
		return blank(block)
	}
	return block
}

func blank(block string) string {
	w := lipgloss.Width(block)
	h := lipgloss.Height(block)
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width])
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
