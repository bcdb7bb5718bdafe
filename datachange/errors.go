package datachange

import "errors"

var (
	ErrBadData = errors.New("bad data")
)
