package render

type WidthClass int

const (
	WidthBase WidthClass = iota
	WidthSM
	WidthMD
	WidthLG
	WidthXL
)

var widthBreakpoints = []struct {
	class WidthClass
	minPx int
}{
	{WidthXL, 1280},
	{WidthLG, 1024},
	{WidthMD, 768},
	{WidthSM, 640},
}

func ClassForWidth(px int) WidthClass {
	for _, bp := range widthBreakpoints {
		if px >= bp.minPx {
			return bp.class
		}
	}
	return WidthBase
}

// Columns is a fixed breakpoint table. Zero entries inherit from the next smaller class.
type Columns struct {
	Name string
	Base int
	SM   int
	MD   int
	LG   int
	XL   int
}

var (
	LayoutPair   = Columns{Name: "pair", Base: 1, SM: 2}
	LayoutTriple = Columns{Name: "triple", Base: 1, SM: 2, LG: 3}
	LayoutQuad   = Columns{Name: "quad", Base: 1, SM: 2, LG: 4}
	LayoutWide   = Columns{Name: "wide", Base: 1, SM: 2, LG: 3, XL: 4}
)

var layouts = map[string]Columns{
	LayoutPair.Name:   LayoutPair,
	LayoutTriple.Name: LayoutTriple,
	LayoutQuad.Name:   LayoutQuad,
	LayoutWide.Name:   LayoutWide,
}

func LayoutFor(name string) Columns {
	if c, ok := layouts[name]; ok {
		return c
	}
	return LayoutTriple
}

func (c Columns) At(class WidthClass) int {
	steps := []int{c.Base, c.SM, c.MD, c.LG, c.XL}
	n := 1
	for i := 0; i <= int(class) && i < len(steps); i++ {
		if steps[i] > 0 {
			n = steps[i]
		}
	}
	return n
}
