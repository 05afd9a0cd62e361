/*
Package watch broadcasts rebuild events of scapegoat trees to any number of
subscribers.

A Broadcaster is installed as the rebuild hook of one or more trees:

	b := watch.New(ctx)
	tree := scapegoat.NewOrdered(scapegoat.WithRebuildHook[int](b.Publish))
	events, _ := b.Subscribe(ctx, 16)

Publishing blocks until every subscriber has room for the event, so
subscribers have to keep reading their channels or cancel their contexts.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package watch

import (
	"context"
	"errors"
	"sync"

	"github.com/guiguan/caster"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/scapegoat"
)

// tracer writes to trace with key 'scapegoat'
func tracer() tracing.Trace {
	return tracing.Select("scapegoat")
}

// ErrClosed is returned for subscriptions to a closed broadcaster.
var ErrClosed = errors.New("watch: broadcaster closed")

// Broadcaster fans out rebuild events. It is safe for concurrent use.
type Broadcaster struct {
	cast   *caster.Caster
	done   chan struct{} // closed by Close
	mx     sync.RWMutex // guards closed
	closed bool
}

// New creates a broadcaster. It is closed when ctx is done, or by Close.
// ctx may be nil.
func New(ctx context.Context) *Broadcaster {
	return &Broadcaster{cast: caster.New(ctx), done: make(chan struct{})}
}

// Publish sends ev to all current subscribers. Its signature fits
// scapegoat.Config.OnRebuild. Events published after Close are dropped.
// Publish does not hold the lock while the caster delivers, so Close can
// always interrupt a Publish blocked on a stalled subscriber.
func (b *Broadcaster) Publish(ev scapegoat.RebuildEvent) {
	b.mx.RLock()
	closed := b.closed
	b.mx.RUnlock()
	if closed || !b.cast.Pub(ev) {
		tracer().Debugf("watch: dropping event on closed broadcaster: %s", ev)
	}
}

// Subscribe returns a channel receiving all events published from now on.
// The channel is closed when ctx is done or the broadcaster is closed.
func (b *Broadcaster) Subscribe(ctx context.Context, capacity uint) (<-chan scapegoat.RebuildEvent, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	b.mx.RLock()
	closed := b.closed
	b.mx.RUnlock()
	if closed {
		return nil, ErrClosed
	}
	raw, ok := b.cast.Sub(ctx, capacity)
	if !ok {
		return nil, ErrClosed
	}
	out := make(chan scapegoat.RebuildEvent, capacity)
	go func() {
		defer close(out)
		for {
			var msg interface{}
			select {
			case m, open := <-raw:
				if !open {
					return
				}
				msg = m
			case <-ctx.Done():
				return
			case <-b.done:
				discard(raw)
				return
			}
			ev, isEvent := msg.(scapegoat.RebuildEvent)
			if !isEvent {
				tracer().Errorf("watch: unexpected message of type %T", msg)
				continue
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			case <-b.done:
				discard(raw)
				return
			}
		}
	}()
	return out, nil
}

// Close closes the broadcaster and all subscriber channels. Calling Close
// more than once is a no-op.
func (b *Broadcaster) Close() {
	b.mx.Lock()
	defer b.mx.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	close(b.done)
	b.cast.Close()
}

// discard keeps draining raw until the caster closes it, so that a delivery
// in flight cannot stall the caster's shutdown.
func discard(raw <-chan interface{}) {
	go func() {
		for range raw {
		}
	}()
}
