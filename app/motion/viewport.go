package motion

// Extent is the vertical span of an element in document coordinates.
type Extent struct {
	ID     string
	Offset int
	Height int
}

// Viewport is an intersection-style visibility source over a scrolling window. Margin
// shrinks (positive) or grows (negative) the window on both edges before intersecting.
type Viewport struct {
	height   int
	margin   int
	offset   int
	extents  []Extent
	visible  map[string]bool
	handlers []VisibilityFunc
}

func NewViewport(height, margin int, extents []Extent) *Viewport {
	return &Viewport{
		height:  height,
		margin:  margin,
		extents: extents,
		visible: make(map[string]bool, len(extents)),
	}
}

func (v *Viewport) Subscribe(fn VisibilityFunc) {
	v.handlers = append(v.handlers, fn)
}

func (v *Viewport) Offset() int { return v.offset }

// Resize changes the window height and re-evaluates visibility.
func (v *Viewport) Resize(height int) {
	v.height = height
	v.Scroll(v.offset)
}

// Scroll moves the window top to offset and emits a signal for every element whose
// visibility changed. Every element is reported on the first call.
func (v *Viewport) Scroll(offset int) {
	if offset < 0 {
		offset = 0
	}
	v.offset = offset

	top := offset + v.margin
	bottom := offset + v.height - v.margin
	for _, e := range v.extents {
		in := e.Offset < bottom && e.Offset+max(e.Height, 1) > top
		prev, seen := v.visible[e.ID]
		if seen && prev == in {
			continue
		}
		v.visible[e.ID] = in
		for _, fn := range v.handlers {
			fn(e.ID, in)
		}
	}
}

func (v *Viewport) Visible(id string) bool {
	return v.visible[id]
}
