package category

import "errors"

var ErrUnknown = errors.New("unknown category")
