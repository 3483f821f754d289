package audit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/parlour-booking/internal/logger"
	"github.com/BruksfildServices01/parlour-booking/internal/testutil"
)

type captureRecorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *captureRecorder) Log(_ context.Context, ev Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func uintPtr(v uint) *uint { return &v }

func TestDispatcher_CloseDrainsQueue(t *testing.T) {
	rec := &captureRecorder{}
	d := NewDispatcher(rec, logger.Discard(), 10)

	for i := 0; i < 5; i++ {
		d.Dispatch(Event{Action: ActionAppointmentBooked})
	}
	d.Close()

	assert.Len(t, rec.events, 5)

	// after close, events are dropped and Close stays safe
	d.Dispatch(Event{Action: ActionAppointmentBooked})
	d.Close()
	assert.Len(t, rec.events, 5)
}

func TestLogger_WriteAndList(t *testing.T) {
	ctx := context.Background()
	l := New(testutil.TestDB(t, false))

	require.NoError(t, l.Log(ctx, Event{
		UserID: uintPtr(1), Action: ActionParlourAdded, Entity: "parlour", EntityID: uintPtr(4),
		Metadata: map[string]string{"name": "Studio"},
	}))
	require.NoError(t, l.Log(ctx, Event{
		UserID: uintPtr(2), Action: ActionAppointmentBooked, Entity: "appointment", EntityID: uintPtr(1),
	}))
	require.NoError(t, l.Log(ctx, Event{
		UserID: uintPtr(2), Action: ActionAppointmentBooked, Entity: "appointment", EntityID: uintPtr(2),
	}))

	logs, total, err := l.List(ctx, Filter{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	require.Len(t, logs, 3)
	assert.Equal(t, uint(2), *logs[0].EntityID, "newest first")

	logs, total, err = l.List(ctx, Filter{Action: ActionParlourAdded})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, logs, 1)
	assert.JSONEq(t, `{"name":"Studio"}`, logs[0].Metadata)

	logs, total, err = l.List(ctx, Filter{Entity: "appointment", Limit: 1, Page: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, logs, 1)
	assert.Equal(t, uint(1), *logs[0].EntityID)

	tomorrow := time.Now().Add(24 * time.Hour)
	logs, _, err = l.List(ctx, Filter{From: &tomorrow})
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestFilter_Normalize(t *testing.T) {
	f := Filter{Page: -1, Limit: 1000}
	f.Normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, defaultPageSize, f.Limit)
}
