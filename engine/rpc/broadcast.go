package rpc

import (
	"sync"

	"github.com/hiveworld/simcore/internal/sliceutil"
)

// streamBufferSize is the default per-subscriber channel capacity (the
// "world-stream channel capacity" environment knob from spec section 6).
const streamBufferSize = 8

// Broadcaster fans a tick's StreamPayload out to every WorldStream
// subscriber. Publish is non-blocking: a subscriber whose channel is full
// has its send dropped rather than stalling the tick loop (spec section 5:
// "Send is non-blocking; a dropped send ... is logged, not fatal").
type Broadcaster struct {
	mu          sync.Mutex
	subscribers map[int]chan StreamPayload
	// order records subscriber ids in registration order so Publish fans
	// out deterministically instead of following Go's randomised map
	// iteration, matching the tick loop's own insistence on determinism.
	order  []int
	nextID int
	onDrop func(subscriberID int)
}

// NewBroadcaster constructs an empty Broadcaster. onDrop, if non-nil, is
// called whenever a publish is dropped for a full subscriber channel.
func NewBroadcaster(onDrop func(subscriberID int)) *Broadcaster {
	return &Broadcaster{subscribers: make(map[int]chan StreamPayload), onDrop: onDrop}
}

// Subscribe registers a new WorldStream client, returning its id (for
// Unsubscribe) and the channel it should receive payloads on.
func (b *Broadcaster) Subscribe() (int, <-chan StreamPayload) {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextID
	b.nextID++
	ch := make(chan StreamPayload, streamBufferSize)
	b.subscribers[id] = ch
	b.order = append(b.order, id)
	return id, ch
}

// Unsubscribe removes and closes a subscriber's channel.
func (b *Broadcaster) Unsubscribe(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.subscribers[id]; ok {
		close(ch)
		delete(b.subscribers, id)
		b.order = sliceutil.DeleteVal(b.order, id)
	}
}

// Publish sends p to every current subscriber, best-effort, in subscription
// order.
func (b *Broadcaster) Publish(p StreamPayload) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, id := range b.order {
		select {
		case b.subscribers[id] <- p:
		default:
			if b.onDrop != nil {
				b.onDrop(id)
			}
		}
	}
}
