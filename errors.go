package bloom

import "errors"

var (
	ErrZeroElements = errors.New("bloom: expected element count must be positive")
	ErrZeroBits     = errors.New("bloom: bit budget must be positive")
	ErrZeroHashes   = errors.New("bloom: hash count must be positive")
	ErrSizeOverflow = errors.New("bloom: size computation overflow")
)
