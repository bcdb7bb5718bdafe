package redislog

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libdatasource/changelog"
	"github.com/sgostarter/libeasygo/ptl"
	"github.com/spf13/cast"
)

// NewRedisStorage keeps every log pool in a redis list and the write cursor in a hash, all under preKey.
func NewRedisStorage(preKey string, redisCli *redis.Client, logger l.Wrapper) changelog.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "redisStorageImpl"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &storageImpl{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
	}
}

type storageImpl struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
}

func (impl *storageImpl) NewLogPool(idx int) (changelog.LogPool, error) {
	return &logPoolImpl{
		id:       idx,
		key:      impl.logPoolKey(idx),
		logger:   impl.logger,
		redisCli: impl.redisCli,
	}, nil
}

func (impl *storageImpl) LoadCursor() (poolIndex int, nextIndex uint64, err error) {
	is, err := impl.redisCli.HMGet(context.Background(), impl.cursorKey(), "pool", "next").Result()
	if err != nil {
		return
	}

	poolIndex = cast.ToInt(is[0])
	nextIndex = cast.ToUint64(is[1])

	return
}

func (impl *storageImpl) SaveCursor(poolIndex int, nextIndex uint64) error {
	return impl.redisCli.HSet(context.Background(), impl.cursorKey(), "pool", poolIndex, "next", nextIndex).Err()
}

func (impl *storageImpl) cursorKey() string {
	return impl.preKey + ":cursor"
}

func (impl *storageImpl) logPoolKey(idx int) string {
	return fmt.Sprintf("%s:log-pool:%d", impl.preKey, idx)
}

type logPoolImpl struct {
	id       int
	key      string
	logger   l.Wrapper
	redisCli *redis.Client
}

func (impl *logPoolImpl) GetID() int {
	return impl.id
}

func (impl *logPoolImpl) AddEntry(index uint64, e changelog.Entry) error {
	d, err := json.Marshal(e)
	if err != nil {
		return err
	}

	err = appendEntryScript.Run(context.Background(), impl.redisCli, []string{impl.key}, index, string(d)).Err()
	if err != nil && strings.Contains(err.Error(), errIndexMismatch) {
		return ptl.NewCodeError(ptl.CodeErrLogic)
	}

	return err
}

func (impl *logPoolImpl) GetEntries(start, end uint64) (entries []changelog.Entry, err error) {
	stop := int64(-1)
	if end > 0 {
		if end <= start {
			return
		}

		stop = int64(end) - 1
	}

	ss, err := impl.redisCli.LRange(context.Background(), impl.key, int64(start), stop).Result()
	if err != nil {
		return
	}

	entries = make([]changelog.Entry, 0, len(ss))

	for _, s := range ss {
		var e changelog.Entry

		if err = json.Unmarshal([]byte(s), &e); err != nil {
			impl.logger.WithFields(l.ErrorField(err), l.IntField("pool", impl.id)).Error("invalid entry on log pool")

			return
		}

		entries = append(entries, e)
	}

	return
}
