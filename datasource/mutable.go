package datasource

import (
	"slices"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libdatasource/datachange"
	"github.com/sgostarter/libdatasource/relay"
)

// MutableDataSource is a leaf source holding one section of items. Every mutator
// publishes a batch wrapping exactly one change.
type MutableDataSource[T any] struct {
	logger             l.Wrapper
	changes            *relay.Relay[datachange.DataChange]
	items              *relay.Relay[[]T]
	supplementaryItems map[string]any
}

func NewMutableDataSource[T any](items []T, opts ...Option) *MutableDataSource[T] {
	o := optionNew(opts...)

	supplementaryItems := make(map[string]any, len(o.supplementaryItems))
	for kind, item := range o.supplementaryItems {
		supplementaryItems[kind] = item
	}

	return &MutableDataSource[T]{
		logger:             o.logger.WithFields(l.StringField(l.ClsKey, "mutableDataSource")),
		changes:            relay.NewRelay[datachange.DataChange](datachange.NewBatch()),
		items:              relay.NewRelay(slices.Clone(items)),
		supplementaryItems: supplementaryItems,
	}
}

func (impl *MutableDataSource[T]) NumberOfSections() int {
	return 1
}

func (impl *MutableDataSource[T]) NumberOfItemsInSection(section int) int {
	mustIndex(impl.logger, "NumberOfItemsInSection", section, 1)

	return impl.Count()
}

func (impl *MutableDataSource[T]) SupplementaryItemOfKind(kind string, section int) any {
	mustIndex(impl.logger, "SupplementaryItemOfKind", section, 1)

	return impl.supplementaryItems[kind]
}

func (impl *MutableDataSource[T]) Item(at datachange.IndexPath) any {
	mustIndex(impl.logger, "Item", at.Section, 1)

	return impl.ItemAt(at.Item)
}

func (impl *MutableDataSource[T]) LeafDataSource(at datachange.IndexPath) (DataSource, datachange.IndexPath) {
	mustIndex(impl.logger, "LeafDataSource", at.Section, 1)

	return impl, at
}

func (impl *MutableDataSource[T]) Changes() relay.Observable[datachange.DataChange] {
	return impl.changes
}

// Items returns a copy of the current items.
func (impl *MutableDataSource[T]) Items() []T {
	return slices.Clone(impl.items.Value())
}

func (impl *MutableDataSource[T]) ItemAt(index int) T {
	items := impl.items.Value()

	mustIndex(impl.logger, "ItemAt", index, len(items))

	return items[index]
}

func (impl *MutableDataSource[T]) Count() int {
	return len(impl.items.Value())
}

// ObserveItems publishes the item slice after every mutation. Published slices are never modified afterwards.
func (impl *MutableDataSource[T]) ObserveItems() relay.Observable[[]T] {
	return impl.items
}

func (impl *MutableDataSource[T]) InsertItems(items []T, at int) {
	current := impl.items.Value()

	mustInsertIndex(impl.logger, "InsertItems", at, len(current))

	impl.logger.WithFields(l.IntField("at", at), l.IntField("count", len(items))).Debug("insert items")

	impl.items.Accept(slices.Insert(slices.Clone(current), at, items...))
	impl.publish(datachange.NewInsertItems(datachange.ItemPaths(0, at, at+len(items))...))
}

func (impl *MutableDataSource[T]) InsertItem(item T, at int) {
	impl.InsertItems([]T{item}, at)
}

// DeleteItems removes the items in [start, end).
func (impl *MutableDataSource[T]) DeleteItems(start, end int) {
	current := impl.items.Value()

	mustRange(impl.logger, "DeleteItems", start, end, len(current))

	impl.logger.WithFields(l.IntField("start", start), l.IntField("end", end)).Debug("delete items")

	impl.items.Accept(slices.Delete(slices.Clone(current), start, end))
	impl.publish(datachange.NewDeleteItems(datachange.ItemPaths(0, start, end)...))
}

func (impl *MutableDataSource[T]) DeleteItem(at int) {
	impl.DeleteItems(at, at+1)
}

func (impl *MutableDataSource[T]) ReplaceItem(at int, item T) {
	current := impl.items.Value()

	mustIndex(impl.logger, "ReplaceItem", at, len(current))

	impl.logger.WithFields(l.IntField("at", at)).Debug("replace item")

	items := slices.Clone(current)
	items[at] = item

	impl.items.Accept(items)
	impl.publish(datachange.NewReloadItems(datachange.NewIndexPath(0, at)))
}

func (impl *MutableDataSource[T]) MoveItem(from, to int) {
	current := impl.items.Value()

	mustIndex(impl.logger, "MoveItem", from, len(current))
	mustIndex(impl.logger, "MoveItem", to, len(current))

	impl.logger.WithFields(l.IntField("from", from), l.IntField("to", to)).Debug("move item")

	item := current[from]
	items := slices.Delete(slices.Clone(current), from, from+1)
	items = slices.Insert(items, to, item)

	impl.items.Accept(items)
	impl.publish(datachange.NewMoveItem(datachange.NewIndexPath(0, from), datachange.NewIndexPath(0, to)))
}

// ReplaceItems swaps the whole content and reloads the section.
func (impl *MutableDataSource[T]) ReplaceItems(items []T) {
	impl.logger.WithFields(l.IntField("count", len(items))).Debug("replace items")

	impl.items.Accept(slices.Clone(items))
	impl.publish(datachange.NewReloadSections(0))
}

func (impl *MutableDataSource[T]) publish(change datachange.DataChange) {
	impl.changes.Accept(datachange.NewBatch(change))
}
