package observe

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"minicrypt/internal/domain"
)

// Zap logs every event as one entry at a fixed level.
type Zap struct {
	log   *zap.Logger
	level zapcore.Level
}

// NewZap returns an observer writing to log at level.
func NewZap(log *zap.Logger, level zapcore.Level) *Zap {
	return &Zap{log: log, level: level}
}

// Observe implements domain.Observer.
func (z *Zap) Observe(ev domain.Event) {
	if ce := z.log.Check(z.level, ev.Name); ce != nil {
		ce.Write(zap.String("stage", ev.Stage), zap.Any("value", ev.Value))
	}
}

// Recorder keeps events in arrival order.
type Recorder struct {
	mu     sync.Mutex
	events []domain.Event
}

// Observe implements domain.Observer.
func (r *Recorder) Observe(ev domain.Event) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []domain.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Multi fans each event out to every non-nil observer.
type Multi []domain.Observer

// Observe implements domain.Observer.
func (m Multi) Observe(ev domain.Event) {
	for _, o := range m {
		if o != nil {
			o.Observe(ev)
		}
	}
}

// Nop discards events.
type Nop struct{}

// Observe implements domain.Observer.
func (Nop) Observe(domain.Event) {}

var (
	_ domain.Observer = (*Zap)(nil)
	_ domain.Observer = (*Recorder)(nil)
	_ domain.Observer = Multi(nil)
	_ domain.Observer = Nop{}
)
