package datasource

import (
	"weak"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libdatasource/datachange"
	"github.com/sgostarter/libdatasource/relay"
)

// ProxyDataSource forwards one swappable inner source with identical numbering.
type ProxyDataSource struct {
	logger          l.Wrapper
	changes         *relay.Relay[datachange.DataChange]
	inner           *relay.Relay[DataSource]
	animatesChanges *relay.Relay[bool]
	link            relay.Subscription
}

// NewProxyDataSource forwards inner, or an EmptyDataSource when inner is nil.
func NewProxyDataSource(inner DataSource, animatesChanges bool, opts ...Option) *ProxyDataSource {
	o := optionNew(opts...)

	if inner == nil {
		inner = NewEmptyDataSource(opts...)
	}

	impl := &ProxyDataSource{
		logger:          o.logger.WithFields(l.StringField(l.ClsKey, "proxyDataSource")),
		changes:         relay.NewRelay[datachange.DataChange](datachange.NewBatch()),
		inner:           relay.NewRelay(inner),
		animatesChanges: relay.NewRelay(animatesChanges),
	}

	impl.attach(inner)

	return impl
}

func (impl *ProxyDataSource) NumberOfSections() int {
	return impl.inner.Value().NumberOfSections()
}

func (impl *ProxyDataSource) NumberOfItemsInSection(section int) int {
	return impl.inner.Value().NumberOfItemsInSection(section)
}

func (impl *ProxyDataSource) SupplementaryItemOfKind(kind string, section int) any {
	return impl.inner.Value().SupplementaryItemOfKind(kind, section)
}

func (impl *ProxyDataSource) Item(at datachange.IndexPath) any {
	return impl.inner.Value().Item(at)
}

func (impl *ProxyDataSource) LeafDataSource(at datachange.IndexPath) (DataSource, datachange.IndexPath) {
	return impl.inner.Value().LeafDataSource(at)
}

func (impl *ProxyDataSource) Changes() relay.Observable[datachange.DataChange] {
	return impl.changes
}

func (impl *ProxyDataSource) InnerDataSource() DataSource {
	return impl.inner.Value()
}

func (impl *ProxyDataSource) ObserveInnerDataSource() relay.Observable[DataSource] {
	return impl.inner
}

func (impl *ProxyDataSource) AnimatesChanges() bool {
	return impl.animatesChanges.Value()
}

func (impl *ProxyDataSource) SetAnimatesChanges(animatesChanges bool) {
	impl.animatesChanges.Accept(animatesChanges)
}

func (impl *ProxyDataSource) ObserveAnimatesChanges() relay.Observable[bool] {
	return impl.animatesChanges
}

// SetInnerDataSource switches to dataSource (an EmptyDataSource when nil) and publishes
// the transition: ReloadData, or a batch deleting every old section and inserting every
// new one when changes are animated.
func (impl *ProxyDataSource) SetInnerDataSource(dataSource DataSource) {
	if dataSource == nil {
		dataSource = NewEmptyDataSource(WithLogger(impl.logger))
	}

	old := impl.inner.Value()
	oldSections := old.NumberOfSections()
	newSections := dataSource.NumberOfSections()

	impl.logger.WithFields(l.IntField("oldSections", oldSections), l.IntField("newSections", newSections),
		l.StringField("animates", animatesName(impl.AnimatesChanges()))).Debug("switch inner data source")

	impl.link.Dispose()
	impl.attach(dataSource)
	impl.inner.Accept(dataSource)

	if !impl.AnimatesChanges() {
		impl.changes.Accept(datachange.NewReloadData())

		return
	}

	var changes []datachange.DataChange

	if oldSections > 0 {
		changes = append(changes, datachange.NewDeleteSections(datachange.Sections(0, oldSections)...))
	}

	if newSections > 0 {
		changes = append(changes, datachange.NewInsertSections(datachange.Sections(0, newSections)...))
	}

	impl.changes.Accept(datachange.NewBatch(changes...))
}

// Dispose detaches the proxy from its inner source. It stops forwarding its changes.
func (impl *ProxyDataSource) Dispose() {
	impl.link.Dispose()
}

func (impl *ProxyDataSource) attach(dataSource DataSource) {
	owner := weak.Make(impl)

	var link relay.Subscription

	link = dataSource.Changes().Listen(func(change datachange.DataChange) {
		proxy := owner.Value()
		if proxy == nil {
			link.Dispose()

			return
		}

		proxy.changes.Accept(change)
	})

	impl.link = link
}

func animatesName(animates bool) string {
	if animates {
		return "animated"
	}

	return "reload"
}
