package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const (
	ActionParlourAdded         = "parlour_added"
	ActionServiceAdded         = "service_added"
	ActionAppointmentBooked    = "appointment_booked"
	ActionAppointmentCancelled = "appointment_cancelled"
)

const defaultQueueSize = 100

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Sink accepts events without blocking the caller.
type Sink interface {
	Dispatch(ev Event)
}

type Recorder interface {
	Log(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	recorder Recorder
	log      *slog.Logger
	queue    chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(recorder Recorder, log *slog.Logger, size int) *Dispatcher {
	if size <= 0 {
		size = defaultQueueSize
	}

	d := &Dispatcher{
		recorder: recorder,
		log:      log,
		queue:    make(chan Event, size),
		done:     make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.recorder.Log(ctx, ev); err != nil {
			d.log.Error("audit write failed",
				slog.String("action", ev.Action),
				slog.Any("err", err),
			)
		}
		cancel()
	}
}

// Dispatch drops the event when the queue is full or the dispatcher is closed.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", slog.String("action", ev.Action))
	}
}

// Close stops accepting events and waits for queued ones to be written.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}

// Discard is a Sink that drops everything.
type Discard struct{}

func (Discard) Dispatch(Event) {}

var (
	_ Sink = (*Dispatcher)(nil)
	_ Sink = Discard{}
)
