package relay

// DisposeBag collects subscriptions so they can be disposed together.
type DisposeBag struct {
	subscriptions []Subscription
}

func NewDisposeBag() *DisposeBag {
	return &DisposeBag{}
}

// Add keeps subscription in the bag. Subscriptions that were disposed on their own are dropped here.
func (impl *DisposeBag) Add(subscription Subscription) {
	if subscription == nil {
		return
	}

	live := impl.subscriptions[:0]

	for _, s := range impl.subscriptions {
		if !s.Disposed() {
			live = append(live, s)
		}
	}

	impl.subscriptions = append(live, subscription)
}

func (impl *DisposeBag) Len() int {
	return len(impl.subscriptions)
}

func (impl *DisposeBag) Dispose() {
	subscriptions := impl.subscriptions
	impl.subscriptions = nil

	for _, s := range subscriptions {
		s.Dispose()
	}
}
