package components

import (
	"maps"
	"slices"

	"github.com/alexisbeaulieu97/playerui/internal/ports"
)

// signal is an ordered listener list for widget-local notifications such as
// clicks and selection changes.
type signal[T any] struct {
	fns  map[int]func(T)
	next int
}

func (s *signal[T]) subscribe(fn func(T)) ports.Subscription {
	if fn == nil {
		return subscriptionFunc(nil)
	}
	if s.fns == nil {
		s.fns = make(map[int]func(T))
	}
	s.next++
	id := s.next
	s.fns[id] = fn
	return subscriptionFunc(func() { delete(s.fns, id) })
}

func (s *signal[T]) emit(v T) {
	for _, id := range slices.Sorted(maps.Keys(s.fns)) {
		if fn, ok := s.fns[id]; ok {
			fn(v)
		}
	}
}

func (s *signal[T]) reset() {
	s.fns = nil
}

type subscriptionFunc func()

func (f subscriptionFunc) Unsubscribe() {
	if f != nil {
		f()
	}
}
