package service

import "errors"

// Sentinel errors returned by the service layer. Handlers map these to HTTP
// status codes with [errors.Is].
var (
	// ErrEmptyMessage is returned by ChatService.Chat when the user message
	// is empty after trimming whitespace.
	ErrEmptyMessage = errors.New("message must not be empty")

	// ErrInvalidDataProvided is returned when a request is missing required
	// fields (e.g. a contact without a name).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrContactsUnavailable is returned by ContactService methods when no
	// contact database is configured for this deployment.
	ErrContactsUnavailable = errors.New("contact storage is not configured")

	// ErrAdminDisabled is returned by AuthService.AdminLogin when no admin
	// token is configured.
	ErrAdminDisabled = errors.New("admin access is disabled")

	// ErrWrongAdminToken is returned when the presented admin token does not
	// match the configured one.
	ErrWrongAdminToken = errors.New("wrong admin token")

	// ErrTokenCreationFailed wraps JWT signing failures.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrTokenIsExpiredOrInvalid is the normalised result of any session
	// token validation failure (expired, wrong issuer, malformed).
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
