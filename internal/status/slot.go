// Package status holds the covert tool's single status line.
//
// The slot keeps only the latest message: every write overwrites the
// previous one and nothing is queued. Writers may be concurrent workflows;
// whichever writes last wins.
package status

import (
	"fmt"
	"sync"
)

// Slot is a single-message status display. The zero value is ready to use.
type Slot struct {
	mu       sync.Mutex
	text     string
	onChange []func(string)
}

// New returns an empty slot.
func New() *Slot { return &Slot{} }

// OnChange registers fn to be called after every write, outside the lock.
func (s *Slot) OnChange(fn func(string)) {
	s.mu.Lock()
	s.onChange = append(s.onChange, fn)
	s.mu.Unlock()
}

// Set replaces the status text.
func (s *Slot) Set(text string) {
	s.mu.Lock()
	s.text = text
	fns := s.onChange
	s.mu.Unlock()
	for _, fn := range fns {
		fn(text)
	}
}

// Setf replaces the status text with a formatted message.
func (s *Slot) Setf(format string, args ...any) { s.Set(fmt.Sprintf(format, args...)) }

// Text returns the current status text.
func (s *Slot) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}
