package domain

import "errors"

var (
	// ErrMissingQuery is returned when a search has no query text, platform filter or genre filter.
	ErrMissingQuery = errors.New("search requires a query, platform filter or genre filter")

	// ErrMissingCommand is returned when a command request carries no command.
	ErrMissingCommand = errors.New("command is required")
)
