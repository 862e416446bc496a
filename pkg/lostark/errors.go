package lostark

import "errors"

var (
	// ErrInvalidConfig is returned when the client configuration is incomplete
	ErrInvalidConfig = errors.New("invalid lostark client configuration")

	// ErrMissingAPIKey is returned when no API key is configured
	ErrMissingAPIKey = errors.New("LOSTARK_API_KEY is not configured")

	// ErrUnauthorized is returned when the API key is rejected
	ErrUnauthorized = errors.New("unauthorized: invalid API key")

	// ErrRateLimited is returned when the upstream rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrUpstream is returned for any other non-2xx upstream response
	ErrUpstream = errors.New("upstream API error")
)
