package ir

import "errors"

var (
	// ErrType signals an operation applied to the wrong container kind.
	ErrType = errors.New("wrong node type")
)
