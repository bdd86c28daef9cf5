package gui

import "sync"

// Cleanable is implemented by stores that drop entries no widget touched
// during the previous frame.
type Cleanable interface {
	Cleanup(frame uint64)
}

var (
	registryMu       sync.Mutex
	registeredStores []Cleanable
	currentFrame     uint64
)

func registerStore(store Cleanable) {
	registryMu.Lock()
	registeredStores = append(registeredStores, store)
	registryMu.Unlock()
}

// NextFrame advances the global frame counter and cleans every FrameStore.
// Context.Reset calls it once per frame.
func NextFrame() {
	registryMu.Lock()
	currentFrame++
	frame := currentFrame
	stores := registeredStores
	registryMu.Unlock()

	for _, store := range stores {
		store.Cleanup(frame)
	}
}

type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore keeps typed per-widget state between frames. Entries that were
// not read during the previous frame are removed, so state of widgets that
// stopped being drawn does not accumulate.
//
// Declare one store per state type at package level:
//
//	var colorEditStore = NewFrameStore[colorEditState]()
type FrameStore[T any] struct {
	mu     sync.Mutex
	states map[ID]*stateEntry[T]
}

// NewFrameStore creates a store and registers it with NextFrame.
func NewFrameStore[T any]() *FrameStore[T] {
	s := &FrameStore[T]{states: make(map[ID]*stateEntry[T])}
	registerStore(s)
	return s
}

// Get returns the state for id, creating it from defaultVal when missing,
// and marks it used in the current frame.
func (s *FrameStore[T]) Get(id ID, defaultVal T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.states[id]
	if !ok {
		entry = &stateEntry[T]{value: defaultVal}
		s.states[id] = entry
	}
	entry.lastFrame = currentFrame
	return &entry.value
}

// Cleanup implements Cleanable.
func (s *FrameStore[T]) Cleanup(frame uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if frame == 0 {
		return
	}
	threshold := frame - 1
	for id, entry := range s.states {
		if entry.lastFrame < threshold {
			delete(s.states, id)
		}
	}
}

// Len returns the number of live entries.
func (s *FrameStore[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}
