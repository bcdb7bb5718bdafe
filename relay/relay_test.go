package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubscribeReplaysLatest(t *testing.T) {
	r := NewRelay(1)
	r.Accept(2)

	var got []int

	s := r.Subscribe(func(v int) {
		got = append(got, v)
	})

	r.Accept(3)
	r.Accept(4)

	assert.Equal(t, []int{2, 3, 4}, got)
	assert.Equal(t, 4, r.Value())

	s.Dispose()
	assert.True(t, s.Disposed())

	r.Accept(5)
	assert.Equal(t, []int{2, 3, 4}, got)
	assert.Equal(t, 0, r.SubscriberCount())
}

func TestListenSkipsLatest(t *testing.T) {
	r := NewRelay("a")

	var got []string

	r.Listen(func(v string) {
		got = append(got, v)
	})

	assert.Empty(t, got)

	r.Accept("b")
	assert.Equal(t, []string{"b"}, got)
}

func TestDisposeDuringDelivery(t *testing.T) {
	r := NewRelay(0)

	var second Subscription

	var firstGot, secondGot []int

	r.Listen(func(v int) {
		firstGot = append(firstGot, v)

		if second != nil {
			second.Dispose()
		}
	})

	second = r.Listen(func(v int) {
		secondGot = append(secondGot, v)
	})

	r.Accept(1)

	assert.Equal(t, []int{1}, firstGot)
	assert.Empty(t, secondGot)
	assert.Equal(t, 1, r.SubscriberCount())
}

func TestListenDuringDelivery(t *testing.T) {
	r := NewRelay(0)

	var lateGot []int

	var late Subscription

	r.Listen(func(v int) {
		if late == nil {
			late = r.Listen(func(v int) {
				lateGot = append(lateGot, v)
			})
		}
	})

	r.Accept(1)
	assert.Empty(t, lateGot)

	r.Accept(2)
	assert.Equal(t, []int{2}, lateGot)
}

func TestAcceptDuringDeliveryKeepsOrder(t *testing.T) {
	r := NewRelay(0)

	r.Listen(func(v int) {
		if v == 1 {
			r.Accept(2)
		}
	})

	var got []int

	r.Listen(func(v int) {
		got = append(got, v)
	})

	r.Accept(1)

	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 2, r.Value())

	r.Accept(3)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestSubscribeDuringDeliveryGetsQueuedValueOnce(t *testing.T) {
	r := NewRelay(0)

	var late []int

	r.Listen(func(v int) {
		if v != 1 {
			return
		}

		r.Accept(2)

		r.Subscribe(func(v int) {
			late = append(late, v)
		})
	})

	r.Accept(1)
	assert.Equal(t, []int{2}, late)

	r.Accept(3)
	assert.Equal(t, []int{2, 3}, late)
}

func TestDisposeTwice(t *testing.T) {
	r := NewRelay(0)

	s1 := r.Listen(func(int) {})
	s2 := r.Listen(func(int) {})

	s1.Dispose()
	s1.Dispose()

	assert.Equal(t, 1, r.SubscriberCount())
	assert.False(t, s2.Disposed())
}

func TestDisposeBag(t *testing.T) {
	r := NewRelay(0)
	bag := NewDisposeBag()

	count := 0

	s1 := r.Listen(func(int) { count++ })
	bag.Add(s1)
	bag.Add(r.Listen(func(int) { count++ }))
	bag.Add(nil)

	assert.Equal(t, 2, bag.Len())

	s1.Dispose()
	bag.Add(r.Listen(func(int) { count++ }))
	assert.Equal(t, 2, bag.Len())

	r.Accept(1)
	assert.Equal(t, 2, count)

	bag.Dispose()
	assert.Equal(t, 0, bag.Len())
	assert.Equal(t, 0, r.SubscriberCount())

	r.Accept(2)
	assert.Equal(t, 2, count)
}
