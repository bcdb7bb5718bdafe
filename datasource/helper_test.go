package datasource

import (
	"fmt"

	"github.com/sgostarter/libdatasource/datachange"
)

type changeLog struct {
	changes []datachange.DataChange
}

func record(ds DataSource) *changeLog {
	log := &changeLog{}
	ds.Changes().Listen(func(change datachange.DataChange) {
		log.changes = append(log.changes, change)
	})

	return log
}

func (log *changeLog) take() []datachange.DataChange {
	changes := log.changes
	log.changes = nil

	return changes
}

func panicError(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()

	f()

	return
}

func newLeaf(name string, n int) *MutableDataSource[string] {
	items := make([]string, 0, n)
	for idx := 0; idx < n; idx++ {
		items = append(items, fmt.Sprintf("%s%d", name, idx))
	}

	return NewMutableDataSource(items)
}

// newSections returns a composite of n single-section leaves named name-0 ... name-(n-1).
func newSections(name string, n int) *MutableCompositeDataSource {
	dataSources := make([]DataSource, 0, n)
	for idx := 0; idx < n; idx++ {
		dataSources = append(dataSources, newLeaf(fmt.Sprintf("%s-%d-", name, idx), idx+1))
	}

	return NewMutableCompositeDataSource(dataSources)
}
