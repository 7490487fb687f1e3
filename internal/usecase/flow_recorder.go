package usecase

import (
	"context"
	"sync"

	"github.com/groupbuy-labs/groupbuy-cli/internal/domain/models"
)

// FlowRecorder is a FlowSink that remembers the latest status, giving the
// controller its UI-facing flow state. A terminal status sticks until the
// UI acknowledges it with Reset. It also owns the single mutating-flow
// slot: TryAcquire claims it atomically, so a flow holds the slot from
// intent, not from first submission.
type FlowRecorder struct {
	mu      sync.RWMutex
	status  models.FlowStatus
	pending bool
}

// NewFlowRecorder creates a recorder starting at Idle.
func NewFlowRecorder() *FlowRecorder {
	return &FlowRecorder{status: models.FlowStatusIdle()}
}

// OnFlow stores the transition. A terminal status frees the flow slot.
func (r *FlowRecorder) OnFlow(_ context.Context, status models.FlowStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = status
	if status.Terminal() {
		r.pending = false
	}
}

// Status returns the latest recorded status.
func (r *FlowRecorder) Status() models.FlowStatus {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.status
}

// TryAcquire claims the single mutating-flow slot. It fails while another
// flow holds the slot, whether that flow has submitted anything yet or
// not. On success any stale terminal status is cleared.
func (r *FlowRecorder) TryAcquire() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pending || r.status.InFlight() {
		return false
	}
	r.pending = true
	r.status = models.FlowStatusIdle()
	return true
}

// Release frees the slot for a flow that ended without reaching a
// terminal status, such as a validation failure before submission.
func (r *FlowRecorder) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = false
}

// Reset discards a terminal status once the UI has acknowledged it.
func (r *FlowRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = models.FlowStatusIdle()
	r.pending = false
}

// BroadcastSink fans one flow transition out to several sinks.
type BroadcastSink struct {
	sinks []FlowSink
}

// NewBroadcastSink creates a fan-out sink.
func NewBroadcastSink(sinks ...FlowSink) *BroadcastSink {
	return &BroadcastSink{sinks: sinks}
}

// OnFlow forwards the status to every sink in order.
func (b *BroadcastSink) OnFlow(ctx context.Context, status models.FlowStatus) {
	for _, s := range b.sinks {
		s.OnFlow(ctx, status)
	}
}
