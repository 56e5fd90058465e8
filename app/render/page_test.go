package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vibast-solutions/ms-go-vps-showcase/app/catalog"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/entity"
	"github.com/vibast-solutions/ms-go-vps-showcase/app/motion"
)

func TestNewPageFromDefaultCatalog(t *testing.T) {
	c := catalog.Default()
	p := NewPage(c)

	if len(p.Sections) != len(c.Groups) {
		t.Fatalf("expected %d sections, got %d", len(c.Groups), len(p.Sections))
	}
	if p.CardCount() != c.PlanCount() {
		t.Fatalf("expected %d cards, got %d", c.PlanCount(), p.CardCount())
	}
	if len(p.Background) != 2 {
		t.Fatalf("expected 2 background blobs, got %d", len(p.Background))
	}
	for _, b := range p.Background {
		if b.Motion.Trigger != motion.TriggerLoop || !b.Motion.Transition.Repeat {
			t.Fatalf("expected looping blob, got %+v", b.Motion)
		}
	}
	if len(p.Recommendation.Items) != 4 {
		t.Fatalf("expected 4 recommendations, got %d", len(p.Recommendation.Items))
	}
}

func TestWriteHTMLCountsElements(t *testing.T) {
	c := &entity.Catalog{
		Hero: entity.Hero{Brand: "Test", Actions: []entity.Link{{Label: "Plans", Href: "#plans"}}},
		Groups: []entity.PlanGroup{{
			ID:      "g1",
			Heading: "Group",
			Tag:     "Tag",
			Plans:   samplePlans(),
		}},
	}

	var buf bytes.Buffer
	if err := WriteHTML(&buf, NewPage(c)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	out := buf.String()

	if got := strings.Count(out, "data-card="); got != 3 {
		t.Fatalf("expected 3 cards, got %d", got)
	}
	if got := strings.Count(out, "data-row "); got != 5 {
		t.Fatalf("expected 5 rows, got %d", got)
	}
	if got := strings.Count(out, "data-ribbon "); got != 1 {
		t.Fatalf("expected 1 ribbon, got %d", got)
	}
	if got := strings.Count(out, "data-marker "); got != 1 {
		t.Fatalf("expected 1 marker, got %d", got)
	}
	if !strings.Contains(out, ">Popular</div>") {
		t.Fatal("expected ribbon text Popular")
	}
	for _, anchor := range []string{`id="plans"`, `id="recommend"`} {
		if !strings.Contains(out, anchor) {
			t.Fatalf("expected anchor %s", anchor)
		}
	}
	if !strings.Contains(out, "--delay:120ms") {
		t.Fatal("expected third card delay")
	}
	if !strings.Contains(out, "observer.unobserve") {
		t.Fatal("expected reveal-once script")
	}
}

func TestWriteHTMLIsDeterministic(t *testing.T) {
	p := NewPage(catalog.Default())

	var a, b bytes.Buffer
	if err := WriteHTML(&a, p); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := WriteHTML(&b, p); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if a.String() != b.String() {
		t.Fatal("expected identical output")
	}
	if got := strings.Count(a.String(), "data-card="); got != 30 {
		t.Fatalf("expected 30 cards, got %d", got)
	}
}

func TestMotionVars(t *testing.T) {
	got := string(motionVars(motion.FadeInUp(motion.CardStagger.Delay(2), motion.TriggerInViewOnce)))
	for _, want := range []string{"--from-opacity:0;", "--from-y:24px;", "--to-y:0px;", "--duration:600ms;", "--ease:cubic-bezier(0.22, 1, 0.36, 1);", "--delay:120ms"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}

	ribbon := string(motionVars(motion.RibbonDrop()))
	if !strings.Contains(ribbon, "--duration:444ms;") || !strings.Contains(ribbon, motion.Overshoot.CSS()) {
		t.Fatalf("unexpected spring vars: %q", ribbon)
	}
}

func TestWriteHTMLStatTilesKeepEntranceTransition(t *testing.T) {
	c := &entity.Catalog{
		Hero: entity.Hero{
			Brand: "Test",
			Stats: []entity.Stat{
				{Icon: "⚡", Label: "Uptime", Value: "99.9%"},
				{Icon: "🌏", Label: "Regions", Value: "12"},
			},
		},
	}

	var buf bytes.Buffer
	if err := WriteHTML(&buf, NewPage(c)); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	stats := 0
	for _, line := range strings.Split(buf.String(), "\n") {
		if !strings.Contains(line, "data-stat") {
			continue
		}
		stats++
		if strings.Contains(line, `class="card"`) {
			t.Fatalf("expected stat tile outside the card hover rule, got %s", line)
		}
		if !strings.Contains(line, "data-motion=") {
			t.Fatalf("expected stat tile entrance, got %s", line)
		}
	}
	if stats != 2 {
		t.Fatalf("expected 2 stat tiles, got %d", stats)
	}
	for _, delay := range []string{"--delay:80ms", "--delay:140ms"} {
		if !strings.Contains(buf.String(), delay) {
			t.Fatalf("expected staggered stat delay %s", delay)
		}
	}
}
