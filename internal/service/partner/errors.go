package partner

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrPermissionDenied      = errors.New("permission denied")

	ErrPartnerNotFound  = errors.New("partner not found")
	ErrStatusUnchanged  = errors.New("partner status precondition not met")
	ErrUndefinedStatus  = errors.New("undefined order status")
	ErrStoreUnavailable = errors.New("partner store unavailable")
)
