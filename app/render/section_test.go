package render

import (
	"testing"

	"github.com/vibast-solutions/ms-go-vps-showcase/app/catalog"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/entity"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/motion"
)

func TestColumnsFixedTables(t *testing.T) {
	cases := []struct {
		layout string
		px     int
		want   int
	}{
		{"triple", 320, 1},
		{"triple", 700, 2},
		{"triple", 800, 2},
		{"triple", 1100, 3},
		{"triple", 1400, 3},
		{"wide", 1400, 4},
		{"quad", 1100, 4},
		{"pair", 1400, 2},
		{"unknown", 1100, 3},
	}
	for _, tc := range cases {
		if got := LayoutFor(tc.layout).At(ClassForWidth(tc.px)); got != tc.want {
			t.Fatalf("%s at %dpx: expected %d, got %d", tc.layout, tc.px, tc.want, got)
		}
	}
}

func TestNewSectionCardsMatchGroup(t *testing.T) {
	for _, g := range catalog.Default().Groups {
		s := NewSection(g)
		if len(s.Cards) != len(g.Plans) {
			t.Fatalf("%s: expected %d cards, got %d", g.ID, len(g.Plans), len(s.Cards))
		}
		for i, c := range s.Cards {
			if len(c.Rows) != len(g.Plans[i].Features) {
				t.Fatalf("%s card %d: expected %d rows, got %d", g.ID, i, len(g.Plans[i].Features), len(c.Rows))
			}
		}
	}
}

func TestSectionRevealsOnce(t *testing.T) {
	s := NewSection(entity.PlanGroup{ID: "vultr", Heading: "VULTR VPS", Layout: "wide"})
	if s.HeadingMotion.Trigger != motion.TriggerInViewOnce {
		t.Fatalf("expected in-view-once heading, got %v", s.HeadingMotion.Trigger)
	}
	if s.Columns.Name != "wide" || s.Accent != "indigo" {
		t.Fatalf("unexpected section: %+v", s)
	}
	if s.HasTrailer() {
		t.Fatal("expected no trailer")
	}
}
