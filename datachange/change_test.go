package datachange

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordTarget struct {
	ops []string
}

func (t *recordTarget) InsertSections(sections []int) {
	t.ops = append(t.ops, fmt.Sprintf("insertSections %v", sections))
}

func (t *recordTarget) DeleteSections(sections []int) {
	t.ops = append(t.ops, fmt.Sprintf("deleteSections %v", sections))
}

func (t *recordTarget) ReloadSections(sections []int) {
	t.ops = append(t.ops, fmt.Sprintf("reloadSections %v", sections))
}

func (t *recordTarget) MoveSection(from, to int) {
	t.ops = append(t.ops, fmt.Sprintf("moveSection %d %d", from, to))
}

func (t *recordTarget) InsertItems(indexPaths []IndexPath) {
	t.ops = append(t.ops, fmt.Sprintf("insertItems %v", indexPaths))
}

func (t *recordTarget) DeleteItems(indexPaths []IndexPath) {
	t.ops = append(t.ops, fmt.Sprintf("deleteItems %v", indexPaths))
}

func (t *recordTarget) ReloadItems(indexPaths []IndexPath) {
	t.ops = append(t.ops, fmt.Sprintf("reloadItems %v", indexPaths))
}

func (t *recordTarget) MoveItem(from, to IndexPath) {
	t.ops = append(t.ops, fmt.Sprintf("moveItem %v %v", from, to))
}

func (t *recordTarget) ReloadData() {
	t.ops = append(t.ops, "reloadData")
}

func allVariants() []DataChange {
	return []DataChange{
		NewInsertSections(0, 2),
		NewDeleteSections(1),
		NewReloadSections(3),
		NewMoveSection(0, 4),
		NewInsertItems(NewIndexPath(0, 1), NewIndexPath(2, 0)),
		NewDeleteItems(NewIndexPath(1, 1)),
		NewReloadItems(NewIndexPath(3, 5)),
		NewMoveItem(NewIndexPath(0, 0), NewIndexPath(1, 3)),
		NewReloadData(),
	}
}

func TestApply(t *testing.T) {
	target := &recordTarget{}

	NewBatch(allVariants()...).Apply(target)

	assert.Equal(t, []string{
		"insertSections [0 2]",
		"deleteSections [1]",
		"reloadSections [3]",
		"moveSection 0 4",
		"insertItems [[0,1] [2,0]]",
		"deleteItems [[1,1]]",
		"reloadItems [[3,5]]",
		"moveItem [0,0] [1,3]",
		"reloadData",
	}, target.ops)
}

func TestMapSections(t *testing.T) {
	mapped := NewBatch(allVariants()...).MapSections(Offset(10))

	target := &recordTarget{}
	mapped.Apply(target)

	assert.Equal(t, []string{
		"insertSections [10 12]",
		"deleteSections [11]",
		"reloadSections [13]",
		"moveSection 10 14",
		"insertItems [[10,1] [12,0]]",
		"deleteItems [[11,1]]",
		"reloadItems [[13,5]]",
		"moveItem [10,0] [11,3]",
		"reloadData",
	}, target.ops)
}

func TestMapSectionsKeepsReceiver(t *testing.T) {
	change := NewInsertItems(NewIndexPath(1, 1))
	_ = change.MapSections(Offset(3))

	assert.Equal(t, NewIndexPath(1, 1), change.IndexPaths[0])

	move := NewMoveItem(NewIndexPath(0, 1), NewIndexPath(2, 0))
	mapped, ok := move.MapSections(Offset(5)).(MoveItem)
	assert.True(t, ok)
	assert.Equal(t, NewIndexPath(5, 1), mapped.From)
	assert.Equal(t, NewIndexPath(7, 0), mapped.To)
}

func TestMapSectionsCommutesWithFlatten(t *testing.T) {
	variants := allVariants()
	nested := NewBatch(
		variants[0],
		NewBatch(variants[1], NewBatch(variants[2], variants[3])),
		NewBatch(),
		NewBatch(variants[4:]...),
	)

	double := func(section int) int { return section * 2 }

	mappedThenFlattened := Flatten(nested.MapSections(double))

	var flattenedThenMapped []DataChange
	for _, change := range Flatten(nested) {
		flattenedThenMapped = append(flattenedThenMapped, change.MapSections(double))
	}

	assert.Equal(t, flattenedThenMapped, mappedThenFlattened)
	assert.Len(t, mappedThenFlattened, len(variants))
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(nil))
	assert.True(t, IsEmpty(NewBatch()))
	assert.True(t, IsEmpty(NewBatch(NewBatch(), NewBatch(NewBatch()))))
	assert.False(t, IsEmpty(NewBatch(NewReloadData())))
	assert.False(t, IsEmpty(NewDeleteSections()))
}

func TestKindString(t *testing.T) {
	for _, change := range allVariants() {
		kind, err := ParseKind(change.Kind().String())
		assert.Nil(t, err)
		assert.Equal(t, change.Kind(), kind)
	}

	assert.Equal(t, "batch", NewBatch().Kind().String())
	assert.Equal(t, "unknown(99)", Kind(99).String())

	_, err := ParseKind("explode")
	assert.ErrorIs(t, err, ErrBadData)
}
