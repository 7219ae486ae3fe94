package domain

import "errors"

// Error taxonomy (sentinels). Adapters wrap these with fmt.Errorf("%w: ...")
// and the HTTP edge maps them to envelope codes via errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrRateLimited     = errors.New("rate limited")
	ErrPayloadTooLarge = errors.New("payload too large")
	ErrUpstreamTimeout = errors.New("upstream timeout")
	ErrAIUnavailable   = errors.New("ai unavailable")
	ErrMalformedOutput = errors.New("malformed model output")
	ErrSchemaInvalid   = errors.New("schema invalid")
	ErrInternal        = errors.New("internal error")
)
