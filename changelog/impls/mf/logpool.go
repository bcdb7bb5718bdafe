package mf

import (
	"sync"

	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libdatasource/changelog"
	"github.com/sgostarter/libeasygo/ptl"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
)

// NewMFLogPool keeps the entries of one pool in memory, mirrored to file as JSON.
func NewMFLogPool(id int, file string, storage stg.FileStorage) changelog.LogPool {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &logPoolImpl{
		id: id,
		d: mwf.NewMemWithFile[[]changelog.Entry, mwf.Serial, mwf.Lock](make([]changelog.Entry, 0),
			&mwf.JSONSerial{}, &sync.RWMutex{}, file, storage),
	}
}

type logPoolImpl struct {
	id int
	d  *mwf.MemWithFile[[]changelog.Entry, mwf.Serial, mwf.Lock]
}

func (impl *logPoolImpl) GetID() int {
	return impl.id
}

func (impl *logPoolImpl) AddEntry(index uint64, e changelog.Entry) error {
	return impl.d.Change(func(v []changelog.Entry) (newV []changelog.Entry, err error) {
		newV = v

		if newV == nil {
			newV = make([]changelog.Entry, 0, 10)
		}

		if len(newV) != int(index) {
			err = ptl.NewCodeError(ptl.CodeErrLogic)

			return
		}

		newV = append(newV, e)

		return
	})
}

func (impl *logPoolImpl) GetEntries(start, end uint64) (entries []changelog.Entry, _ error) {
	impl.d.Read(func(v []changelog.Entry) {
		n := uint64(len(v))

		if end == 0 || end > n {
			end = n
		}

		if end <= start {
			return
		}

		entries = append(entries, v[int(start):int(end)]...)
	})

	return
}
