package tracker

import "errors"

var ErrInconsistent = errors.New("change does not match tracked counts")
