package session

import "errors"

var (
	ErrMissingCredentials   = errors.New("session: username and password are required")
	ErrInvalidServerSession = errors.New("session: server returned an incomplete session")
)
