package hygiene

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
	"gopkg.in/op/go-logging.v1"

	"stegcalc/internal/domain"
	"stegcalc/internal/log"
	"stegcalc/internal/status"
)

const (
	// ClearDelay is how long copied plaintext stays on the clipboard.
	ClearDelay = 30 * time.Second

	scrubText = " "

	msgCopied     = "Copied to clipboard! It will be cleared in 30 seconds."
	msgCopyFailed = "Error: could not access clipboard."
)

// Scrub is one scheduled clipboard overwrite.
type Scrub struct {
	ID       uint64
	Deadline time.Time

	done chan struct{}
	err  error
}

// Done is closed once the overwrite has run.
func (s *Scrub) Done() <-chan struct{} { return s.done }

// Err returns the overwrite's error. It is only meaningful after Done.
func (s *Scrub) Err() error { return s.err }

// Option configures a Service.
type Option func(*Service)

// WithClock replaces the wall clock, for tests.
func WithClock(c clock.Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithLogger sets the service logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Service) { s.log = l }
}

// Service is the clipboard hygiene timer.
type Service struct {
	clipboard domain.Clipboard
	status    *status.Slot
	clock     clock.Clock
	log       *logging.Logger

	seq     atomic.Uint64
	pending sync.WaitGroup
	count   atomic.Int64
}

// New returns a Service writing to cb and reporting to st.
func New(cb domain.Clipboard, st *status.Slot, opts ...Option) *Service {
	s := &Service{
		clipboard: cb,
		status:    st,
		clock:     clock.New(),
	}
	for _, o := range opts {
		o(s)
	}
	if s.log == nil {
		s.log = log.Discard("hygiene")
	}
	return s
}

// Copy puts text on the clipboard and schedules its overwrite.
func (s *Service) Copy(text string) (*Scrub, error) {
	if err := s.clipboard.WriteText(text); err != nil {
		s.status.Set(msgCopyFailed)
		s.log.Warningf("copy failed: %v", err)
		return nil, fmt.Errorf("hygiene: copy: %w", err)
	}
	s.status.Set(msgCopied)

	sc := &Scrub{
		ID:       s.seq.Add(1),
		Deadline: s.clock.Now().Add(ClearDelay),
		done:     make(chan struct{}),
	}
	s.pending.Add(1)
	s.count.Add(1)
	s.clock.AfterFunc(ClearDelay, func() { s.scrub(sc) })
	s.log.Debugf("scrub %d scheduled for %s", sc.ID, sc.Deadline.Format(time.TimeOnly))
	return sc, nil
}

// Pending returns the number of scrubs that have not run yet.
func (s *Service) Pending() int { return int(s.count.Load()) }

// Wait blocks until every scheduled scrub has run or ctx is done.
func (s *Service) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.pending.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) scrub(sc *Scrub) {
	defer close(sc.done)
	defer s.pending.Done()
	defer s.count.Add(-1)

	if err := s.clipboard.WriteText(scrubText); err != nil {
		sc.err = err
		s.log.Warningf("scrub %d failed: %v", sc.ID, err)
		return
	}
	s.log.Debugf("scrub %d done", sc.ID)
}
