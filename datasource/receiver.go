package datasource

import (
	"github.com/sgostarter/libdatasource/datachange"
	"github.com/sgostarter/libdatasource/relay"
)

// ItemHolder is an ItemReceiver keeping the bound item in an observable cell, so
// rendering code can react to every rebinding.
type ItemHolder struct {
	model *relay.Relay[any]
}

func NewItemHolder() *ItemHolder {
	return &ItemHolder{
		model: relay.NewRelay[any](nil),
	}
}

func (impl *ItemHolder) SetItem(item any) {
	impl.model.Accept(item)
}

func (impl *ItemHolder) Item() any {
	return impl.model.Value()
}

func (impl *ItemHolder) Model() relay.Observable[any] {
	return impl.model
}

// BindItem hands the item at at to receiver.
func BindItem(ds DataSource, at datachange.IndexPath, receiver ItemReceiver) {
	receiver.SetItem(ds.Item(at))
}

// BindSupplementaryItem hands the supplementary item of kind for section to receiver.
// It returns false and leaves receiver alone when there is no such item.
func BindSupplementaryItem(ds DataSource, kind string, section int, receiver ItemReceiver) bool {
	item := ds.SupplementaryItemOfKind(kind, section)
	if item == nil {
		return false
	}

	receiver.SetItem(item)

	return true
}
