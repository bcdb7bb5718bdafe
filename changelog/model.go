// Package changelog records the change stream of a data source into numbered log
// pools, so it can be dumped, replayed into a datachange.Target or verified offline.
package changelog

import (
	"encoding/json"

	"github.com/sgostarter/libdatasource/datachange"
	"github.com/sgostarter/libdatasource/datasource"
)

type Entry struct {
	SeqID   string          `json:"seq_id"`
	Session string          `json:"session,omitempty"`
	Kind    string          `json:"kind"`
	Change  json.RawMessage `json:"change"`

	// Counts is the item count of every section right after the change.
	Counts []int `json:"counts,omitempty"`
	At     int64 `json:"at"`
}

type Recorder interface {
	// Attach records every change ds publishes from now on. A previously attached source is detached.
	Attach(ds datasource.DataSource)
	Detach()

	Record(change datachange.DataChange, counts []int) error

	GetAllEntries(startSeqID string) ([]Entry, error)
	// Replay applies the changes recorded after startSeqID to target, in order.
	Replay(target datachange.Target, startSeqID string) ([]Entry, error)

	Session() string
}

type Storage interface {
	NewLogPool(idx int) (LogPool, error)

	LoadCursor() (poolIndex int, nextIndex uint64, err error)
	SaveCursor(poolIndex int, nextIndex uint64) error
}

type LogPool interface {
	GetID() int

	// AddEntry appends e; index must equal the number of entries already in the pool.
	AddEntry(index uint64, e Entry) error
	// GetEntries returns the entries in [start, end); end 0 means up to the last one.
	GetEntries(start, end uint64) ([]Entry, error)
}
