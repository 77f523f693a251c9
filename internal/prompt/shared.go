package prompt

import "sync"

// Shared is the single prompt instance reachable from both the input side and
// the chain. Its lock is always acquired after the scene lock; the renderer
// only ever tries it once per frame.
type Shared struct {
	mu sync.Mutex
	p  Prompt
}

// NewShared returns an empty shared prompt.
func NewShared() *Shared {
	return &Shared{}
}

// Edit runs fn with the prompt locked, blocking until the lock is free.
func (s *Shared) Edit(fn func(p *Prompt)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.p)
}

// TryView runs fn only if the lock can be taken without waiting and reports
// whether it ran.
func (s *Shared) TryView(fn func(p *Prompt)) bool {
	if !s.mu.TryLock() {
		return false
	}
	defer s.mu.Unlock()
	fn(&s.p)
	return true
}
