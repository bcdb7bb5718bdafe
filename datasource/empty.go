package datasource

import (
	"fmt"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libdatasource/datachange"
	"github.com/sgostarter/libdatasource/relay"
)

// EmptyDataSource has zero sections and never publishes a change after its baseline.
type EmptyDataSource struct {
	logger  l.Wrapper
	changes *relay.Relay[datachange.DataChange]
}

func NewEmptyDataSource(opts ...Option) *EmptyDataSource {
	o := optionNew(opts...)

	return &EmptyDataSource{
		logger:  o.logger.WithFields(l.StringField(l.ClsKey, "emptyDataSource")),
		changes: relay.NewRelay[datachange.DataChange](datachange.NewBatch()),
	}
}

func (impl *EmptyDataSource) NumberOfSections() int {
	return 0
}

func (impl *EmptyDataSource) NumberOfItemsInSection(section int) int {
	impl.fail("NumberOfItemsInSection", section)

	return 0
}

func (impl *EmptyDataSource) SupplementaryItemOfKind(_ string, section int) any {
	impl.fail("SupplementaryItemOfKind", section)

	return nil
}

func (impl *EmptyDataSource) Item(at datachange.IndexPath) any {
	impl.fail("Item", at.Section)

	return nil
}

func (impl *EmptyDataSource) LeafDataSource(at datachange.IndexPath) (DataSource, datachange.IndexPath) {
	impl.fail("LeafDataSource", at.Section)

	return nil, at
}

func (impl *EmptyDataSource) Changes() relay.Observable[datachange.DataChange] {
	return impl.changes
}

func (impl *EmptyDataSource) fail(op string, section int) {
	misuse(impl.logger, op, fmt.Errorf("%w: %s: section %d", ErrEmptyDataSource, op, section))
}
