package datasource

import (
	"slices"
	"weak"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libdatasource/datachange"
	"github.com/sgostarter/libdatasource/relay"
)

type innerEntry struct {
	dataSource DataSource
	link       relay.Subscription
}

// MutableCompositeDataSource concatenates the sections of an ordered list of inner
// sources. The first global section of the inner source at position i is the sum of
// the section counts of the sources before it, derived again on every query and on
// every forwarded change.
type MutableCompositeDataSource struct {
	logger  l.Wrapper
	changes *relay.Relay[datachange.DataChange]
	inner   *relay.Relay[[]DataSource]
	entries []*innerEntry
	links   *relay.DisposeBag
}

func NewMutableCompositeDataSource(dataSources []DataSource, opts ...Option) *MutableCompositeDataSource {
	o := optionNew(opts...)

	impl := &MutableCompositeDataSource{
		logger:  o.logger.WithFields(l.StringField(l.ClsKey, "mutableCompositeDataSource")),
		changes: relay.NewRelay[datachange.DataChange](datachange.NewBatch()),
		inner:   relay.NewRelay[[]DataSource](nil),
		links:   relay.NewDisposeBag(),
	}

	impl.entries = impl.newEntries("NewMutableCompositeDataSource", dataSources)
	impl.publishInner()

	return impl
}

func (impl *MutableCompositeDataSource) NumberOfSections() int {
	return countSections(impl.entries)
}

func (impl *MutableCompositeDataSource) NumberOfItemsInSection(section int) int {
	dataSource, local := impl.locate("NumberOfItemsInSection", section)

	return dataSource.NumberOfItemsInSection(local)
}

func (impl *MutableCompositeDataSource) SupplementaryItemOfKind(kind string, section int) any {
	dataSource, local := impl.locate("SupplementaryItemOfKind", section)

	return dataSource.SupplementaryItemOfKind(kind, local)
}

func (impl *MutableCompositeDataSource) Item(at datachange.IndexPath) any {
	dataSource, local := impl.locate("Item", at.Section)

	return dataSource.Item(at.SetSection(local))
}

func (impl *MutableCompositeDataSource) LeafDataSource(at datachange.IndexPath) (DataSource, datachange.IndexPath) {
	dataSource, local := impl.locate("LeafDataSource", at.Section)

	return dataSource.LeafDataSource(at.SetSection(local))
}

func (impl *MutableCompositeDataSource) Changes() relay.Observable[datachange.DataChange] {
	return impl.changes
}

// InnerDataSources returns a copy of the inner source list.
func (impl *MutableCompositeDataSource) InnerDataSources() []DataSource {
	return slices.Clone(impl.inner.Value())
}

func (impl *MutableCompositeDataSource) ObserveInnerDataSources() relay.Observable[[]DataSource] {
	return impl.inner
}

// Insert splices dataSources in at position at and announces their sections.
func (impl *MutableCompositeDataSource) Insert(at int, dataSources ...DataSource) {
	mustInsertIndex(impl.logger, "Insert", at, len(impl.entries))

	impl.logger.WithFields(l.IntField("at", at), l.IntField("count", len(dataSources))).Debug("insert data sources")

	entries := impl.newEntries("Insert", dataSources)
	impl.entries = slices.Insert(impl.entries, at, entries...)
	impl.publishInner()

	base := impl.baseOf(at)
	sections := datachange.Sections(base, base+countSections(entries))

	if len(sections) > 0 {
		impl.changes.Accept(datachange.NewInsertSections(sections...))
	}
}

// DeleteRange removes the inner sources in [start, end).
func (impl *MutableCompositeDataSource) DeleteRange(start, end int) {
	mustRange(impl.logger, "DeleteRange", start, end, len(impl.entries))

	impl.logger.WithFields(l.IntField("start", start), l.IntField("end", end)).Debug("delete data sources")

	base := impl.baseOf(start)
	sections := datachange.Sections(base, base+countSections(impl.entries[start:end]))

	for _, entry := range impl.entries[start:end] {
		entry.link.Dispose()
	}

	impl.entries = slices.Delete(impl.entries, start, end)
	impl.publishInner()

	if len(sections) > 0 {
		impl.changes.Accept(datachange.NewDeleteSections(sections...))
	}
}

func (impl *MutableCompositeDataSource) Delete(at int) {
	mustIndex(impl.logger, "Delete", at, len(impl.entries))

	impl.DeleteRange(at, at+1)
}

// ReplaceDataSource swaps the inner source at position at for dataSource.
func (impl *MutableCompositeDataSource) ReplaceDataSource(at int, dataSource DataSource) {
	mustIndex(impl.logger, "ReplaceDataSource", at, len(impl.entries))

	impl.logger.WithFields(l.IntField("at", at)).Debug("replace data source")

	entry := impl.newEntries("ReplaceDataSource", []DataSource{dataSource})[0]
	base := impl.baseOf(at)
	old := impl.entries[at]

	deleted := datachange.Sections(base, base+old.dataSource.NumberOfSections())
	inserted := datachange.Sections(base, base+dataSource.NumberOfSections())

	old.link.Dispose()
	impl.entries[at] = entry
	impl.publishInner()

	var changes []datachange.DataChange

	if len(deleted) > 0 {
		changes = append(changes, datachange.NewDeleteSections(deleted...))
	}

	if len(inserted) > 0 {
		changes = append(changes, datachange.NewInsertSections(inserted...))
	}

	if len(changes) > 0 {
		impl.changes.Accept(datachange.NewBatch(changes...))
	}
}

// MoveData moves the inner source at from to position to. All moved sections are
// announced in one batch of section moves: sources are given in the numbering before
// the move and destinations in the numbering after it.
func (impl *MutableCompositeDataSource) MoveData(from, to int) {
	mustIndex(impl.logger, "MoveData", from, len(impl.entries))
	mustIndex(impl.logger, "MoveData", to, len(impl.entries))

	impl.logger.WithFields(l.IntField("from", from), l.IntField("to", to)).Debug("move data source")

	oldBase := impl.baseOf(from)
	entry := impl.entries[from]

	impl.entries = slices.Delete(impl.entries, from, from+1)
	impl.entries = slices.Insert(impl.entries, to, entry)
	impl.publishInner()

	newBase := impl.baseOf(to)
	n := entry.dataSource.NumberOfSections()

	if n == 0 {
		return
	}

	changes := make([]datachange.DataChange, 0, n)
	for k := 0; k < n; k++ {
		changes = append(changes, datachange.NewMoveSection(oldBase+k, newBase+k))
	}

	impl.changes.Accept(datachange.NewBatch(changes...))
}

// Dispose detaches the composite from all inner sources. It stops forwarding their changes.
func (impl *MutableCompositeDataSource) Dispose() {
	impl.links.Dispose()
}

func (impl *MutableCompositeDataSource) newEntries(op string, dataSources []DataSource) []*innerEntry {
	entries := make([]*innerEntry, 0, len(dataSources))

	for _, dataSource := range dataSources {
		if dataSource == nil {
			misuse(impl.logger, op, ErrNilDataSource)
		}

		entry := &innerEntry{
			dataSource: dataSource,
		}
		impl.attach(entry)

		entries = append(entries, entry)
	}

	return entries
}

// attach links entry's changes to the composite. The link only holds a weak
// reference to the composite so shared inner sources do not keep it alive.
func (impl *MutableCompositeDataSource) attach(entry *innerEntry) {
	owner := weak.Make(impl)

	entry.link = entry.dataSource.Changes().Listen(func(change datachange.DataChange) {
		composite := owner.Value()
		if composite == nil {
			entry.link.Dispose()

			return
		}

		composite.forward(entry, change)
	})

	impl.links.Add(entry.link)
}

func (impl *MutableCompositeDataSource) forward(entry *innerEntry, change datachange.DataChange) {
	base := 0

	for _, e := range impl.entries {
		if e == entry {
			impl.changes.Accept(change.MapSections(datachange.Offset(base)))

			return
		}

		base += e.dataSource.NumberOfSections()
	}

	impl.logger.WithFields(l.StringField("kind", change.Kind().String())).Debug("drop change of detached data source")
}

// baseOf returns the first global section of the entry at position index.
func (impl *MutableCompositeDataSource) baseOf(index int) int {
	return countSections(impl.entries[:index])
}

// locate maps a global section to the inner source owning it and the section local to that source.
func (impl *MutableCompositeDataSource) locate(op string, section int) (DataSource, int) {
	if section >= 0 {
		local := section

		for _, entry := range impl.entries {
			n := entry.dataSource.NumberOfSections()
			if local < n {
				return entry.dataSource, local
			}

			local -= n
		}
	}

	mustIndex(impl.logger, op, section, impl.NumberOfSections())

	return nil, 0
}

func (impl *MutableCompositeDataSource) publishInner() {
	dataSources := make([]DataSource, 0, len(impl.entries))
	for _, entry := range impl.entries {
		dataSources = append(dataSources, entry.dataSource)
	}

	impl.inner.Accept(dataSources)
}

func countSections(entries []*innerEntry) (n int) {
	for _, entry := range entries {
		n += entry.dataSource.NumberOfSections()
	}

	return
}
