package errors

import "errors"

var (
	ErrEmptyUserID = errors.New("user id cannot be empty")

	ErrIncompleteRecord = errors.New("stored booking is missing its id or creation time")
)
