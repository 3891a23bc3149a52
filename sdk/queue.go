package sdk

import (
	"sort"
	"sync"
	"time"

	"github.com/taptap/tapsdk-go/events"
)

// eventQueue buffers decoded events between polls. The vendor library may
// fire callbacks from its own threads, so pushes are locked; drains hand the
// whole backing slice to the consumer.
type eventQueue struct {
	mu  sync.Mutex
	buf []events.Event
}

func (q *eventQueue) push(ev events.Event) {
	q.mu.Lock()
	q.buf = append(q.buf, ev)
	q.mu.Unlock()
}

func (q *eventQueue) drain() []events.Event {
	q.mu.Lock()
	out := q.buf
	q.buf = nil
	q.mu.Unlock()
	return out
}

// PendingRequest describes one asynchronous request awaiting its response
// event.
type PendingRequest struct {
	ID    int64
	Op    string
	Since time.Time
}

type pendingSet struct {
	mu sync.Mutex
	m  map[int64]PendingRequest
}

func (p *pendingSet) track(requestID int64, op string) {
	p.mu.Lock()
	if p.m == nil {
		p.m = make(map[int64]PendingRequest)
	}
	p.m[requestID] = PendingRequest{ID: requestID, Op: op, Since: time.Now()}
	p.mu.Unlock()
}

func (p *pendingSet) resolve(requestID int64) bool {
	p.mu.Lock()
	_, ok := p.m[requestID]
	delete(p.m, requestID)
	p.mu.Unlock()
	return ok
}

func (p *pendingSet) snapshot() []PendingRequest {
	p.mu.Lock()
	out := make([]PendingRequest, 0, len(p.m))
	for _, req := range p.m {
		out = append(out, req)
	}
	p.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (p *pendingSet) clear() {
	p.mu.Lock()
	p.m = nil
	p.mu.Unlock()
}
