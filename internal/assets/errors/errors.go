package errors

import "errors"

var (
	ErrIncompleteRecord = errors.New("stored asset is missing its id or timestamps")
)
