// Package relay provides a replay-latest broadcast cell: it always holds a value,
// hands it to new subscribers first and then fans every accepted value out to all
// current subscribers synchronously, in acceptance order.
//
// A Relay is meant to be driven from one logical timeline and does no locking.
package relay

type Observable[T any] interface {
	// Value returns the latest accepted value.
	Value() T

	// Subscribe calls handler with the latest value right away and then with every accepted value.
	Subscribe(handler func(T)) Subscription

	// Listen calls handler with every value accepted after the call, without replaying the latest one.
	Listen(handler func(T)) Subscription
}

type Subscription interface {
	Dispose()
	Disposed() bool
}

type Relay[T any] struct {
	value       T
	seq         uint64
	subscribers []*subscriber[T]

	delivering bool
	pending    []accepted[T]
}

type accepted[T any] struct {
	value T
	seq   uint64
}

func NewRelay[T any](value T) *Relay[T] {
	return &Relay[T]{
		value: value,
	}
}

func (impl *Relay[T]) Value() T {
	return impl.value
}

// Accept stores value and delivers it to the current subscribers. A value accepted
// from inside a handler is queued and delivered once the running delivery is done,
// so every subscriber sees values in acceptance order. Subscribers added while a
// delivery runs do not receive the values accepted before they were added;
// subscribers disposed while it runs are skipped.
func (impl *Relay[T]) Accept(value T) {
	impl.value = value
	impl.seq++

	if len(impl.subscribers) == 0 && !impl.delivering {
		return
	}

	impl.pending = append(impl.pending, accepted[T]{value: value, seq: impl.seq})

	if impl.delivering {
		return
	}

	impl.delivering = true

	defer func() {
		impl.delivering = false
		impl.pending = nil
	}()

	for len(impl.pending) > 0 {
		a := impl.pending[0]
		impl.pending = impl.pending[1:]

		impl.deliver(a)
	}
}

func (impl *Relay[T]) deliver(a accepted[T]) {
	subscribers := make([]*subscriber[T], len(impl.subscribers))
	copy(subscribers, impl.subscribers)

	for _, s := range subscribers {
		if s.disposed || s.since >= a.seq {
			continue
		}

		s.handler(a.value)
	}
}

func (impl *Relay[T]) Subscribe(handler func(T)) Subscription {
	s := impl.add(handler)

	handler(impl.value)

	return s
}

func (impl *Relay[T]) Listen(handler func(T)) Subscription {
	return impl.add(handler)
}

// SubscriberCount returns the number of live subscriptions.
func (impl *Relay[T]) SubscriberCount() int {
	return len(impl.subscribers)
}

func (impl *Relay[T]) add(handler func(T)) *subscriber[T] {
	s := &subscriber[T]{
		relay:   impl,
		handler: handler,
		since:   impl.seq,
	}

	impl.subscribers = append(impl.subscribers, s)

	return s
}

func (impl *Relay[T]) remove(s *subscriber[T]) {
	for idx, item := range impl.subscribers {
		if item == s {
			impl.subscribers = append(impl.subscribers[:idx:idx], impl.subscribers[idx+1:]...)

			return
		}
	}
}

type subscriber[T any] struct {
	relay   *Relay[T]
	handler func(T)
	// since is the seq of the latest value when the subscriber was added.
	since    uint64
	disposed bool
}

func (impl *subscriber[T]) Dispose() {
	if impl.disposed {
		return
	}

	impl.disposed = true
	impl.relay.remove(impl)
	impl.relay = nil
	impl.handler = nil
}

func (impl *subscriber[T]) Disposed() bool {
	return impl.disposed
}
