package impl

import "sync"

// observer wraps a state-change callback with a liveness flag so that a
// cancelled registration is guaranteed to receive no further callbacks,
// even if a notification is already in flight.
type observer struct {
	mu     sync.Mutex
	closed bool
	fn     func()
}

func (o *observer) call() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.closed {
		o.fn()
	}
}

func (o *observer) close() {
	o.mu.Lock()
	o.closed = true
	o.mu.Unlock()
}

// observerSet is a registry of observers keyed by insertion order.
type observerSet struct {
	mu   sync.Mutex
	next int
	set  map[int]*observer
}

func newObserverSet() *observerSet {
	return &observerSet{set: make(map[int]*observer)}
}

// add registers fn and returns a cancel function. After cancel returns,
// fn will not be called again.
func (s *observerSet) add(fn func()) func() {
	obs := &observer{fn: fn}

	s.mu.Lock()
	id := s.next
	s.next++
	s.set[id] = obs
	s.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() {
			obs.close()

			s.mu.Lock()
			delete(s.set, id)
			s.mu.Unlock()
		})
	}
}

// notify invokes every live observer. Callbacks run outside the set lock.
func (s *observerSet) notify() {
	s.mu.Lock()
	observers := make([]*observer, 0, len(s.set))
	for _, obs := range s.set {
		observers = append(observers, obs)
	}
	s.mu.Unlock()

	for _, obs := range observers {
		obs.call()
	}
}
