package session

import "sync"

type subscription struct {
	id int
	fn Listener
}

// broadcaster keeps listeners in subscription order.
type broadcaster struct {
	mu   sync.Mutex
	next int
	subs []subscription
}

func (b *broadcaster) add(fn Listener) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.next++
	id := b.next
	b.subs = append(b.subs, subscription{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *broadcaster) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

// snapshot returns the listeners registered right now. A round delivers to
// exactly this list even if listeners come or go while it runs.
func (b *broadcaster) snapshot() []Listener {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Listener, len(b.subs))
	for i, s := range b.subs {
		out[i] = s.fn
	}
	return out
}

func (b *broadcaster) len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func deliver(listeners []Listener, s *Session) {
	for _, fn := range listeners {
		fn(s)
	}
}

func (b *broadcaster) publish(s *Session) {
	deliver(b.snapshot(), s)
}
