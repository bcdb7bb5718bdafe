package tracker

import (
	"errors"
	"testing"

	"github.com/sgostarter/libdatasource/datachange"
	"github.com/stretchr/testify/assert"
)

func TestSectionChanges(t *testing.T) {
	tr := New(Counts{1, 2, 3})

	tr.Bind(Counts{7, 1, 8, 2, 3})
	tr.Apply(datachange.NewInsertSections(2, 0))
	assert.Equal(t, Counts{7, 1, 8, 2, 3}, tr.Counts())

	tr.Apply(datachange.NewDeleteSections(0, 2))
	assert.Equal(t, Counts{1, 2, 3}, tr.Counts())

	tr.Apply(datachange.NewMoveSection(0, 2))
	assert.Equal(t, Counts{2, 3, 1}, tr.Counts())

	tr.Bind(Counts{2, 9, 1})
	tr.Apply(datachange.NewReloadSections(1))
	assert.Equal(t, Counts{2, 9, 1}, tr.Counts())
	assert.NoError(t, tr.Err())
}

func TestItemChanges(t *testing.T) {
	tr := New(Counts{3, 0})

	tr.Apply(datachange.NewBatch(
		datachange.NewInsertItems(datachange.ItemPaths(0, 1, 3)...),
		datachange.NewDeleteItems(datachange.NewIndexPath(0, 0), datachange.NewIndexPath(0, 4)),
		datachange.NewMoveItem(datachange.NewIndexPath(0, 0), datachange.NewIndexPath(1, 0)),
		datachange.NewReloadItems(datachange.NewIndexPath(1, 0)),
	))

	assert.Equal(t, Counts{2, 1}, tr.Counts())
	assert.NoError(t, tr.Verify(Counts{2, 1}))
}

func TestReloadData(t *testing.T) {
	tr := New(Counts{3})

	tr.Bind(Counts{1, 1})
	tr.Apply(datachange.NewReloadData())

	assert.Equal(t, Counts{1, 1}, tr.Counts())
}

func TestSectionMoveRunIsOnePermutation(t *testing.T) {
	tr := New(Counts{10, 11, 20})

	tr.Apply(datachange.NewBatch(
		datachange.NewMoveSection(0, 1),
		datachange.NewMoveSection(1, 2),
	))

	assert.Equal(t, Counts{20, 10, 11}, tr.Counts())
	assert.NoError(t, tr.Err())
}

func TestInconsistent(t *testing.T) {
	tr := New(Counts{1})

	tr.Apply(datachange.NewDeleteItems(datachange.NewIndexPath(0, 1)))
	assert.True(t, errors.Is(tr.Err(), ErrInconsistent))

	first := tr.Err()
	tr.Apply(datachange.NewDeleteSections(5))
	assert.Equal(t, first, tr.Err())
	assert.Equal(t, first, tr.Verify(Counts{1}))
}

func TestVerifyMismatch(t *testing.T) {
	tr := New(Counts{1, 2})

	assert.NoError(t, tr.Verify(Counts{1, 2}))
	assert.True(t, errors.Is(tr.Verify(Counts{2, 1}), ErrInconsistent))
}
