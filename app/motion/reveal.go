package motion

import "sync"

// Sink plays the entrance animation of the element with the given id.
type Sink interface {
	Play(id string)
}

type SinkFunc func(id string)

func (f SinkFunc) Play(id string) { f(id) }

// VisibilityFunc receives intersection changes from a visibility source.
type VisibilityFunc func(id string, visible bool)

// Source is anything that reports when elements enter or leave the view.
type Source interface {
	Subscribe(fn VisibilityFunc)
}

// RevealOnce forwards the first visible signal of each id to its sink and drops the rest.
type RevealOnce struct {
	sink Sink

	mu       sync.Mutex
	revealed map[string]bool
}

func NewRevealOnce(sink Sink) *RevealOnce {
	return &RevealOnce{sink: sink, revealed: make(map[string]bool)}
}

// Attach subscribes r to src and returns r for chaining.
func (r *RevealOnce) Attach(src Source) *RevealOnce {
	src.Subscribe(r.Observe)
	return r
}

func (r *RevealOnce) Observe(id string, visible bool) {
	if !visible {
		return
	}

	r.mu.Lock()
	if r.revealed[id] {
		r.mu.Unlock()
		return
	}
	r.revealed[id] = true
	r.mu.Unlock()

	r.sink.Play(id)
}

func (r *RevealOnce) Revealed(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.revealed[id]
}
