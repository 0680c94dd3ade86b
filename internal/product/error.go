package product

import "errors"

var ErrEmptyHandle = errors.New("product handle is empty")
