package changelog

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libdatasource/datachange"
	"github.com/sgostarter/libdatasource/datasource"
	"github.com/sgostarter/libdatasource/relay"
	"github.com/sgostarter/libdatasource/tracker"
)

func NewRecorder(store Storage, cfg *Config, logger l.Wrapper) Recorder {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "recorderImpl"))

	if store == nil {
		logger.Fatal("no store")
	}

	if cfg == nil {
		c := DefaultConfig
		cfg = &c
	}

	impl := &recorderImpl{
		logger:    logger,
		store:     store,
		poolSize:  cfg.PoolSize,
		skipEmpty: cfg.SkipEmptyBatches,
		session:   strconv.FormatUint(snowflake.ID(), 36),
	}

	impl.init()

	return impl
}

type recorderImpl struct {
	logger l.Wrapper
	store  Storage

	poolSize  uint64
	skipEmpty bool
	session   string

	poolLock               sync.Mutex
	currentLogPoolIndex    int
	nextLogIDOnCurrentPool uint64

	logPool LogPool

	link relay.Subscription
}

func (impl *recorderImpl) init() {
	var err error

	impl.currentLogPoolIndex, impl.nextLogIDOnCurrentPool, err = impl.store.LoadCursor()
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err)).Fatal("startup failed")
	}

	impl.logPool, err = impl.store.NewLogPool(impl.currentLogPoolIndex)
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err)).Fatal("get log pool")
	}
}

func (impl *recorderImpl) Session() string {
	return impl.session
}

func (impl *recorderImpl) Attach(ds datasource.DataSource) {
	impl.Detach()

	impl.link = ds.Changes().Listen(func(change datachange.DataChange) {
		if err := impl.Record(change, tracker.CountsOf(ds)); err != nil {
			impl.logger.WithFields(l.ErrorField(err), l.StringField("kind", change.Kind().String())).
				Error("record change failed")
		}
	})
}

func (impl *recorderImpl) Detach() {
	if impl.link == nil {
		return
	}

	impl.link.Dispose()
	impl.link = nil
}

func (impl *recorderImpl) Record(change datachange.DataChange, counts []int) error {
	if impl.skipEmpty && datachange.IsEmpty(change) {
		return nil
	}

	d, err := datachange.Marshal(change)
	if err != nil {
		return err
	}

	return impl.addEntry(Entry{
		Session: impl.session,
		Kind:    change.Kind().String(),
		Change:  d,
		Counts:  counts,
		At:      time.Now().Unix(),
	})
}

func (impl *recorderImpl) addEntry(e Entry) (err error) {
	impl.poolLock.Lock()
	defer impl.poolLock.Unlock()

	poolIndex, logIndexOnPool := impl.getPoolIndexOnLock()

	err = impl.mustLogPoolByIndexOnLock(poolIndex)
	if err != nil {
		return
	}

	e.SeqID = SeqIDN2S(impl.seqID(poolIndex, logIndexOnPool))

	err = impl.logPool.AddEntry(logIndexOnPool, e)
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.IntField("pool", poolIndex),
			l.UInt64Field("index", logIndexOnPool)).Error("add entry failed")

		return
	}

	err = impl.savePoolIndexOnLock(poolIndex, logIndexOnPool+1)

	return
}

func (impl *recorderImpl) getPoolIndex() (poolIndex int, logIDonPool uint64) {
	impl.poolLock.Lock()
	defer impl.poolLock.Unlock()

	return impl.getPoolIndexOnLock()
}

func (impl *recorderImpl) getPoolIndexOnLock() (poolIndex int, logIDonPool uint64) {
	if impl.poolSize == 0 {
		return 0, impl.nextLogIDOnCurrentPool
	}

	if impl.nextLogIDOnCurrentPool < impl.poolSize {
		return impl.currentLogPoolIndex, impl.nextLogIDOnCurrentPool
	}

	return impl.currentLogPoolIndex + 1, 0
}

func (impl *recorderImpl) savePoolIndexOnLock(poolIndex int, logIDonPool uint64) error {
	if err := impl.store.SaveCursor(poolIndex, logIDonPool); err != nil {
		return err
	}

	impl.currentLogPoolIndex = poolIndex
	impl.nextLogIDOnCurrentPool = logIDonPool

	return nil
}

func (impl *recorderImpl) mustLogPoolByIndexOnLock(poolIndex int) (err error) {
	if impl.logPool != nil && impl.logPool.GetID() != poolIndex {
		impl.logPool = nil
	}

	if impl.logPool == nil {
		impl.logPool, err = impl.store.NewLogPool(poolIndex)
	}

	return
}

func (impl *recorderImpl) seqID(poolIndex int, logIndexOnPool uint64) uint64 {
	return uint64(poolIndex)*impl.poolSize + logIndexOnPool
}

func (impl *recorderImpl) GetAllEntries(startSeqID string) (entries []Entry, err error) {
	var startSeqIDN uint64

	if startSeqID != "" {
		startSeqIDN, err = SeqIDS2N(startSeqID)
		if err != nil {
			impl.logger.WithFields(l.ErrorField(err), l.StringField("startSeqID", startSeqID)).Error("invalid start seq id")

			err = fmt.Errorf("%w: %s", ErrInvalidSeqID, startSeqID)

			return
		}

		startSeqIDN++
	}

	var startPoolIndex int

	startLogIndexOnPool := startSeqIDN

	if impl.poolSize > 0 {
		startPoolIndex = int(startSeqIDN / impl.poolSize)
		startLogIndexOnPool = startSeqIDN - uint64(startPoolIndex)*impl.poolSize
	}

	entries = make([]Entry, 0, 100)

	lastPoolIndex, logIDonPool := impl.getPoolIndex()
	if logIDonPool == 0 {
		lastPoolIndex--
	}

	for ; startPoolIndex <= lastPoolIndex; startPoolIndex++ {
		var logPool LogPool

		logPool, err = impl.store.NewLogPool(startPoolIndex)
		if err != nil {
			return
		}

		var poolEntries []Entry

		poolEntries, err = logPool.GetEntries(startLogIndexOnPool, 0)
		if err != nil {
			return
		}

		entries = append(entries, poolEntries...)

		startLogIndexOnPool = 0
	}

	return
}

func (impl *recorderImpl) Replay(target datachange.Target, startSeqID string) ([]Entry, error) {
	entries, err := impl.GetAllEntries(startSeqID)
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		change, decodeErr := datachange.Unmarshal(e.Change)
		if decodeErr != nil {
			return nil, fmt.Errorf("entry %s: %w", e.SeqID, decodeErr)
		}

		Apply(target, change)
	}

	return entries, nil
}

// Apply applies change to target, through target's own Apply when it has one.
func Apply(target datachange.Target, change datachange.DataChange) {
	if applier, ok := target.(interface {
		Apply(change datachange.DataChange)
	}); ok {
		applier.Apply(change)

		return
	}

	change.Apply(target)
}
