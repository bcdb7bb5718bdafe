package datasource

import (
	"errors"
	"testing"

	"github.com/sgostarter/libdatasource/datachange"
	"github.com/sgostarter/libdatasource/tracker"
	"github.com/stretchr/testify/assert"
)

func TestProxyForwards(t *testing.T) {
	leaf := newLeaf("a", 2)
	ds := NewProxyDataSource(leaf, false)
	log := record(ds)

	assert.Equal(t, 1, ds.NumberOfSections())
	assert.Equal(t, "a1", ds.Item(datachange.NewIndexPath(0, 1)))

	leaf.DeleteItem(0)
	assert.Equal(t, []datachange.DataChange{
		datachange.NewBatch(datachange.NewDeleteItems(datachange.NewIndexPath(0, 0))),
	}, log.take())
}

func TestProxySwitchReloads(t *testing.T) {
	old := newLeaf("a", 2)
	ds := NewProxyDataSource(old, false)
	log := record(ds)

	next := newSections("b", 3)
	ds.SetInnerDataSource(next)

	assert.Equal(t, []datachange.DataChange{datachange.NewReloadData()}, log.take())
	assert.Equal(t, 3, ds.NumberOfSections())
	assert.Same(t, next, ds.InnerDataSource())

	old.InsertItem("x", 0)
	assert.Empty(t, log.take())
	assert.Equal(t, 0, old.changes.SubscriberCount())

	next.Delete(0)
	assert.Equal(t, []datachange.DataChange{datachange.NewDeleteSections(0)}, log.take())
}

func TestProxySwitchAnimates(t *testing.T) {
	ds := NewProxyDataSource(newSections("a", 2), true)
	log := record(ds)

	ds.SetInnerDataSource(newLeaf("b", 1))
	assert.Equal(t, []datachange.DataChange{
		datachange.NewBatch(datachange.NewDeleteSections(0, 1), datachange.NewInsertSections(0)),
	}, log.take())

	ds.SetInnerDataSource(nil)
	assert.Equal(t, []datachange.DataChange{datachange.NewBatch(datachange.NewDeleteSections(0))}, log.take())
	assert.Equal(t, 0, ds.NumberOfSections())

	ds.SetInnerDataSource(NewMutableCompositeDataSource(nil))
	assert.Equal(t, []datachange.DataChange{datachange.NewBatch()}, log.take())

	ds.SetInnerDataSource(newLeaf("c", 0))
	assert.Equal(t, []datachange.DataChange{datachange.NewBatch(datachange.NewInsertSections(0))}, log.take())
}

func TestProxyOfNothing(t *testing.T) {
	ds := NewProxyDataSource(nil, true)

	assert.Equal(t, 0, ds.NumberOfSections())
	assert.True(t, errors.Is(panicError(func() { ds.Item(datachange.NewIndexPath(0, 0)) }), ErrEmptyDataSource))
}

func TestProxyObservables(t *testing.T) {
	ds := NewProxyDataSource(nil, false)

	var animates []bool
	ds.ObserveAnimatesChanges().Subscribe(func(v bool) {
		animates = append(animates, v)
	})

	var inners []int
	ds.ObserveInnerDataSource().Subscribe(func(inner DataSource) {
		inners = append(inners, inner.NumberOfSections())
	})

	ds.SetAnimatesChanges(true)
	ds.SetInnerDataSource(newSections("a", 2))

	assert.True(t, ds.AnimatesChanges())
	assert.Equal(t, []bool{false, true}, animates)
	assert.Equal(t, []int{0, 2}, inners)
}

func TestProxyDispose(t *testing.T) {
	leaf := newLeaf("a", 1)
	ds := NewProxyDataSource(leaf, false)
	log := record(ds)

	ds.Dispose()
	leaf.InsertItem("b", 0)

	assert.Empty(t, log.take())
}

func TestProxyKeepsTrackerInStep(t *testing.T) {
	for _, animates := range []bool{false, true} {
		ds := NewProxyDataSource(newLeaf("a", 2), animates)
		tr := tracker.New(ds)
		tr.Attach(ds)

		composite := NewMutableCompositeDataSource([]DataSource{newLeaf("b", 1), newSections("c", 2)})
		ds.SetInnerDataSource(composite)
		assert.NoError(t, tr.Verify(ds))

		composite.Insert(1, newLeaf("d", 4))
		assert.NoError(t, tr.Verify(ds))

		ds.SetInnerDataSource(nil)
		assert.NoError(t, tr.Verify(ds))
	}
}
