package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/vibast-solutions/ms-go-vps-showcase/app/motion"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(
	template.New("page.html.tmpl").Funcs(template.FuncMap{
		"motionVars":      motionVars,
		"affordanceVars":  affordanceVars,
		"columnVars":      columnVars,
		"accentVars":      accentVars,
		"trigger":         func(s motion.Spec) string { return s.Trigger.String() },
		"gridCSS":         gridCSS,
		"staggered":       staggered,
		"anchorPlans":     func() string { return AnchorPlans },
		"anchorRecommend": func() string { return AnchorRecommend },
	}).ParseFS(templateFS, "templates/*.tmpl"),
)

// WriteHTML renders p as a single self-contained document. Output is deterministic.
func WriteHTML(w io.Writer, p *Page) error {
	if err := pageTemplate.Execute(w, p); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

var accentColors = map[string][2]string{
	"indigo":  {"#6366f1", "#0ea5e9"},
	"violet":  {"#8b5cf6", "#d946ef"},
	"sky":     {"#0ea5e9", "#3b82f6"},
	"cyan":    {"#06b6d4", "#10b981"},
	"emerald": {"#10b981", "#14b8a6"},
	"amber":   {"#f59e0b", "#ec4899"},
	"fuchsia": {"#d946ef", "#f43f5e"},
	"slate":   {"#94a3b8", "#64748b"},
}

func accentVars(accent string) template.CSS {
	c, ok := accentColors[accent]
	if !ok {
		c = accentColors["indigo"]
	}
	return template.CSS(fmt.Sprintf("--accent-from:%s;--accent-to:%s", c[0], c[1]))
}

func motionVars(s motion.Spec) template.CSS {
	t := s.Transition
	var b strings.Builder
	writeState(&b, "from", s.Initial)
	writeState(&b, "to", s.Target)
	fmt.Fprintf(&b, "--duration:%s;--ease:%s;--delay:%s", ms(t.Settle()), t.Curve().CSS(), ms(t.Delay))
	return template.CSS(b.String())
}

func staggered(base motion.Spec, st motion.Stagger, i int) motion.Spec {
	base.Transition = base.Transition.WithDelay(st.Delay(i))
	return base
}

func affordanceVars(hover, press motion.Spec) template.CSS {
	return template.CSS(fmt.Sprintf(
		"--hover-y:%gpx;--hover-scale:%g;--hover-duration:%s;--press-scale:%g",
		hover.Target.Y, hover.Target.Scale, ms(hover.Transition.Settle()), press.Target.Scale,
	))
}

func columnVars(c Columns) template.CSS {
	return template.CSS(fmt.Sprintf(
		"--cols-base:%d;--cols-sm:%d;--cols-md:%d;--cols-lg:%d;--cols-xl:%d",
		c.At(WidthBase), c.At(WidthSM), c.At(WidthMD), c.At(WidthLG), c.At(WidthXL),
	))
}

func gridCSS() template.CSS {
	var b strings.Builder
	b.WriteString(".grid{grid-template-columns:repeat(var(--cols-base),minmax(0,1fr))}")
	names := map[WidthClass]string{WidthSM: "sm", WidthMD: "md", WidthLG: "lg", WidthXL: "xl"}
	for i := len(widthBreakpoints) - 1; i >= 0; i-- {
		bp := widthBreakpoints[i]
		fmt.Fprintf(&b, "@media (min-width:%dpx){.grid{grid-template-columns:repeat(var(--cols-%s),minmax(0,1fr))}}", bp.minPx, names[bp.class])
	}
	return template.CSS(b.String())
}

func writeState(b *strings.Builder, prefix string, s motion.State) {
	fmt.Fprintf(b, "--%s-opacity:%g;--%s-y:%gpx;--%s-scale:%g;--%s-rotate:%gdeg;",
		prefix, s.Opacity, prefix, s.Y, prefix, s.Scale, prefix, s.Rotate)
}

func ms(d time.Duration) string {
	return fmt.Sprintf("%dms", d.Milliseconds())
}
