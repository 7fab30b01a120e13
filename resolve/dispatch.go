package resolve

import (
	"context"
	"sync"
)

//Dispatcher keeps overlapping resolutions ordered. Rapid user input can have
//several requests in flight at once, and a slow old response must not land
//after a fast new one: of all the requests submitted, only the most recently
//issued may deliver its result, and anything older is discarded on arrival.
//Discarding is the only cancellation done; in-flight HTTP calls are left to
//finish on their own.
type Dispatcher struct {
	r Resolver

	mu        sync.Mutex
	issued    uint64
	delivered uint64
}

func NewDispatcher(r Resolver) *Dispatcher {
	return &Dispatcher{r: r}
}

//Submit starts resolving query in the background and calls deliver with the
//outcome, unless a newer Submit supersedes this one first, in which case
//deliver is never called. deliver runs on the resolving goroutine.
func (d *Dispatcher) Submit(ctx context.Context, query string, deliver func(*Record, error)) {
	d.mu.Lock()
	d.issued++
	seq := d.issued
	d.mu.Unlock()
	go func() {
		rec, err := d.r.Resolve(ctx, query)
		d.mu.Lock()
		fresh := seq == d.issued && seq > d.delivered
		if fresh {
			d.delivered = seq
		}
		d.mu.Unlock()
		if fresh {
			deliver(rec, err)
		}
	}()
}
