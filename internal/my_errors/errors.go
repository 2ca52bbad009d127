package my_errors

import "errors"

var (
	// Store my_errors
	ErrUnsupportedDriver = errors.New("unsupported database driver")
	ErrDanglingAssignee  = errors.New("task assignee does not resolve to a user")

	// Config my_errors
	ErrEmptyField   = errors.New("required field is empty")
	ErrInvalidInput = errors.New("invalid input")
)
