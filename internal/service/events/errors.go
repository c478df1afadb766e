package events

import "errors"

var (
	ErrEventNotFound     = errors.New("order event not found")
	ErrStoreUnavailable  = errors.New("order events store unavailable")
	ErrInvalidRelayParam = errors.New("invalid relay parameters")
)
