package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/motion"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/render"
)

const (
	frameInterval = 60 * time.Millisecond
	helpText      = "↑/↓ scroll • tab focus • enter press • q quit"
)

type frameMsg time.Time

// Model is the terminal preview of a rendered page. Sections reveal once when the
// scrolled view first reaches them and stay revealed after scrolling away.
type Model struct {
	page  *render.Page
	cards int

	vp       viewport.Model
	observer *motion.Viewport
	reveal   *motion.RevealOnce
	play     *playback
	extents  []motion.Extent

	width    int
	height   int
	ready    bool
	focus   int
	pressAt time.Duration
}

func New(page *render.Page) Model {
	play := newPlayback()
	reveal := motion.NewRevealOnce(play)
	// the hero plays on mount, not on view
	reveal.Observe(heroID, true)

	return Model{
		page:   page,
		cards:  page.CardCount(),
		play:   play,
		reveal:  reveal,
		focus:   -1,
		pressAt: -1,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.vp = viewport.New(msg.Width, m.viewHeight())
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = m.viewHeight()
		}
		m.layout()
		return m, nil

	case frameMsg:
		m.play.clock += frameInterval
		released := m.pressAt >= 0 && !m.pressing()
		if released {
			m.pressAt = -1
		}
		if released || m.animating() {
			m.refresh()
		}
		return m, tick()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.moveFocus(1)
			m.refresh()
			return m, nil
		case "shift+tab":
			m.moveFocus(-1)
			m.refresh()
			return m, nil
		case "enter":
			if m.focus >= 0 {
				m.pressAt = m.play.clock
				m.refresh()
			}
			return m, nil
		}
	}

	if m.ready {
		m.vp, cmd = m.vp.Update(msg)
		m.scrolled()
	}
	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "loading…"
	}
	return m.vp.View() + "\n" + helpStyle.Render(helpText)
}

// ScrollTo moves the view to line offset and reports the new visibility.
func (m *Model) ScrollTo(offset int) {
	if !m.ready {
		return
	}
	m.vp.SetYOffset(offset)
	m.scrolled()
}

// Revealed reports whether the block with the given id has played its entrance.
func (m Model) Revealed(id string) bool {
	_, ok := m.play.since(id)
	return ok
}

func (m Model) Extents() []motion.Extent {
	return m.extents
}

func (m Model) viewHeight() int {
	return max(m.height-1, 1)
}

// layout rebuilds the document for the current width and attaches a fresh observer.
// Reveal state survives resizes.
func (m *Model) layout() {
	doc := m.document()
	m.extents = doc.extents
	m.vp.SetContent(doc.content)

	m.observer = motion.NewViewport(m.vp.Height, m.vp.Height/5, doc.extents)
	m.reveal.Attach(m.observer)
	m.scrolled()
}

func (m *Model) refresh() {
	if !m.ready {
		return
	}
	doc := m.document()
	m.vp.SetContent(doc.content)
}

func (m *Model) scrolled() {
	if m.observer == nil {
		return
	}
	m.observer.Scroll(m.vp.YOffset)
	m.refresh()
}

func (m *Model) document() document {
	return buildDocument(m.page, m.width, m.play, m.focus, m.pressing())
}

func (m Model) pressing() bool {
	return m.focus >= 0 && m.pressAt >= 0 && !motion.Done(motion.Press(), m.play.clock-m.pressAt)
}

// animating reports whether the next frame can differ from the last one drawn.
func (m Model) animating() bool {
	if m.pressing() {
		return true
	}
	if m.observer != nil && len(m.extents) > 0 && m.observer.Offset() < m.extents[0].Offset {
		return true
	}

	for _, s := range m.page.Sections {
		elapsed, ok := m.play.since(gridID(s.ID))
		if !ok {
			continue
		}
		for _, c := range s.Cards {
			if elapsed <= c.RevealAt() {
				return true
			}
		}
	}

	if elapsed, ok := m.play.since(render.AnchorRecommend); ok {
		if n := len(m.page.Recommendation.Items); n > 0 && elapsed <= m.page.ListStagger.Delay(n-1) {
			return true
		}
	}
	return false
}

func (m *Model) moveFocus(step int) {
	if m.cards == 0 {
		return
	}
	m.focus = ((m.focus+step)%m.cards + m.cards) % m.cards
	m.pressAt = -1
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
