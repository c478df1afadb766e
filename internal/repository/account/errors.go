package account

import "errors"

var (
	ErrActorNotFound = errors.New("actor not found")
	ErrUnknownRole   = errors.New("unknown role")
)
