package datasource

import (
	"errors"
	"fmt"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
)

var (
	ErrEmptyDataSource = errors.New("empty data source has no sections")
	ErrNilDataSource   = errors.New("nil data source")
)

// misuse reports a caller contract violation and panics with err.
func misuse(logger l.Wrapper, op string, err error) {
	logger.WithFields(l.StringField("op", op), l.ErrorField(err)).Error("caller contract violation")

	panic(err)
}

// mustIndex panics unless 0 <= index < count.
func mustIndex(logger l.Wrapper, op string, index, count int) {
	if index < 0 || index >= count {
		misuse(logger, op, fmt.Errorf("%w: %s: index %d not in [0, %d)", commerr.ErrOutOfRange, op, index, count))
	}
}

// mustInsertIndex panics unless 0 <= index <= count.
func mustInsertIndex(logger l.Wrapper, op string, index, count int) {
	if index < 0 || index > count {
		misuse(logger, op, fmt.Errorf("%w: %s: index %d not in [0, %d]", commerr.ErrOutOfRange, op, index, count))
	}
}

// mustRange panics unless 0 <= start <= end <= count.
func mustRange(logger l.Wrapper, op string, start, end, count int) {
	if start < 0 || end < start || end > count {
		misuse(logger, op, fmt.Errorf("%w: %s: range [%d, %d) not in [0, %d)", commerr.ErrOutOfRange, op, start, end, count))
	}
}
