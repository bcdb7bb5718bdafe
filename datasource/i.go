// Package datasource provides composable, observable data sources for list and grid
// controls. A data source exposes a two-level collection (sections of items) and a
// stream of datachange.DataChange values describing every structural mutation, so an
// adapter can update its widget incrementally.
package datasource

import (
	"github.com/sgostarter/libdatasource/datachange"
	"github.com/sgostarter/libdatasource/relay"
)

// DataSource is implemented by leaf sources that store items and by containers that
// delegate to other sources.
//
// Addressing a section or item that does not exist is a programming error and panics.
type DataSource interface {
	NumberOfSections() int
	NumberOfItemsInSection(section int) int

	// SupplementaryItemOfKind returns the header/footer-like item of kind for section, or nil.
	SupplementaryItemOfKind(kind string, section int) any

	Item(at datachange.IndexPath) any

	// LeafDataSource resolves at through nested containers and returns the source that
	// stores the item together with the item's path local to that source.
	LeafDataSource(at datachange.IndexPath) (DataSource, datachange.IndexPath)

	// Changes always holds a latest value; it starts as an empty batch.
	Changes() relay.Observable[datachange.DataChange]
}

// ItemReceiver is what a renderable cell or view must offer to be handed an item.
type ItemReceiver interface {
	SetItem(item any)
}
