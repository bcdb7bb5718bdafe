package changelog

import "errors"

var (
	ErrInvalidSeqID  = errors.New("invalid seq id")
	ErrInvalidConfig = errors.New("invalid config")
)
