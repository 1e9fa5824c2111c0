package cuckoomap

import "errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotEnoughSpace is returned by Put when the displacement chain hit
	// MaxEvictions. Note the unusual contract: the requested key/value pair
	// IS stored when this error is returned, but some unrelated previously
	// stored entry was evicted to make room. See Map.Put.
	ErrNotEnoughSpace = errors.New("not enough space")
)
