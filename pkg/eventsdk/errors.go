package eventsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ============================================================================
// Error Codes
// ============================================================================

const (
	ErrorCodeValidation           = "validation_error"
	ErrorCodeInvalidRequest       = "invalid_request"
	ErrorCodeUnauthorized         = "unauthorized"
	ErrorCodeForbidden            = "forbidden"
	ErrorCodeInvalidCredentials   = "invalid_credentials"
	ErrorCodeInvalidRefreshToken  = "invalid_refresh_token"
	ErrorCodeInvitationNotFound   = "invitation_not_found"
	ErrorCodeInvitationExpired    = "invitation_expired"
	ErrorCodeInvitationNotPending = "invitation_not_pending"
	ErrorCodeEventNotFound        = "event_not_found"
	ErrorCodeEventFull            = "event_full"
	ErrorCodeConflict             = "conflict"
	ErrorCodeNotificationFailed   = "notification_failed"
	ErrorCodeRateLimited          = "rate_limit_exceeded"
	ErrorCodeServerError          = "server_error"
)

var (
	// ErrNetwork wraps transport failures: the request never got an HTTP
	// answer. Callers may offer a retry.
	ErrNetwork = errors.New("eventsdk: network error")

	// ErrNotAuthenticated is returned by Session calls made without
	// credentials.
	ErrNotAuthenticated = errors.New("eventsdk: not authenticated")

	// ErrSessionExpired is returned when a 401 could not be recovered by a
	// refresh. The session has been cleared.
	ErrSessionExpired = errors.New("eventsdk: session expired, please sign in again")
)

// ============================================================================
// APIError
// ============================================================================

// APIError is a non-2xx response from the API.
type APIError struct {
	StatusCode int

	// Code is the machine readable error code, e.g. "invitation_expired".
	Code string

	// Message is the server's human readable message, unchanged.
	Message string

	// Details maps field names to messages for validation errors.
	Details map[string]string

	// Status is the invitation's current status on invitation_not_pending.
	Status string

	ExpiredAt *time.Time
	IsExpired bool
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// AsAPIError unwraps err into an *APIError.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports a 404.
func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// IsExpired reports an expired invitation, either as a 410 or as an error
// body flagged is_expired.
func IsExpired(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && (apiErr.StatusCode == http.StatusGone || apiErr.IsExpired)
}

// IsConflict reports a 409: the invitation was already used or canceled, the
// event is full, or the account already exists.
func IsConflict(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusConflict
}

// IsUnauthorized reports a 401.
func IsUnauthorized(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusUnauthorized
}

// ============================================================================
// Error Parsing Helpers
// ============================================================================

// parseErrorResponse turns an error body into *APIError. Bodies that are not
// the API's JSON shape (proxies, load balancers) still produce an APIError
// with a status derived message.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		apiErr.Code = errResp.Code
		apiErr.Message = errResp.Message
		apiErr.Details = errResp.Details
		apiErr.Status = errResp.Status
		apiErr.ExpiredAt = errResp.ExpiredAt
		apiErr.IsExpired = errResp.IsExpired
	}

	if apiErr.Code == "" {
		apiErr.Code = ErrorCodeServerError
	}

	return apiErr
}
