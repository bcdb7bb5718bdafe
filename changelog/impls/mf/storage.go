package mf

import (
	"fmt"
	"path"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libdatasource/changelog"
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/kv"
	"github.com/sgostarter/libeasygo/stg/mwf"
	"github.com/spf13/cast"
)

const (
	kvCurLogPoolKey             = "curLogPool"
	kvNextLogIDOnCurrentPoolKey = "nextLogIDOnCurrentPool"
)

// NewMFStorage stores log pools as log-pool_<n>.dat files under dataRoot and the
// write cursor in dataRoot/kv.dat.
func NewMFStorage(dataRoot string, logger l.Wrapper) changelog.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "mfStorageImpl"))

	impl := &storageImpl{
		logger:   logger,
		dataRoot: dataRoot,
	}

	impl.init()

	return impl
}

type storageImpl struct {
	logger   l.Wrapper
	dataRoot string

	kv kv.Storage2
}

func (impl *storageImpl) init() {
	_ = pathutils.MustDirExists(impl.dataRoot)

	impl.kv = mwf.NewKVEx("kv.dat", rawfs.NewFSStorage(impl.dataRoot))
}

func (impl *storageImpl) NewLogPool(idx int) (changelog.LogPool, error) {
	_ = pathutils.MustDirExists(impl.dataRoot)

	return NewMFLogPool(idx, path.Join(impl.dataRoot, fmt.Sprintf("log-pool_%d.dat", idx)), nil), nil
}

func (impl *storageImpl) LoadCursor() (poolIndex int, nextIndex uint64, err error) {
	vs, err := impl.kv.Gets([]string{kvCurLogPoolKey, kvNextLogIDOnCurrentPoolKey})
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err)).Error("load cursor failed")

		return
	}

	poolIndex = cast.ToInt(vs[0])
	nextIndex = cast.ToUint64(vs[1])

	return
}

func (impl *storageImpl) SaveCursor(poolIndex int, nextIndex uint64) error {
	return impl.kv.Sets([]string{kvCurLogPoolKey, kvNextLogIDOnCurrentPoolKey}, poolIndex, nextIndex)
}
