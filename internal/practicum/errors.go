package practicum

import "errors"

var (
	// ErrEndpointUnreachable covers network-level failures: connection
	// refused, timeout, DNS.
	ErrEndpointUnreachable = errors.New("practicum: endpoint unreachable")

	// ErrEndpointUnavailable is returned for any non-200 HTTP status.
	ErrEndpointUnavailable = errors.New("practicum: endpoint unavailable")

	// ErrDecode is returned when the response body is not valid JSON.
	ErrDecode = errors.New("practicum: response body is not valid JSON")

	ErrMalformedResponse = errors.New("practicum: response is not a JSON object")
	ErrMissingField      = errors.New(`practicum: response has no "homeworks" key`)
	ErrMalformedField    = errors.New(`practicum: "homeworks" is not a list`)

	ErrUnknownStatus = errors.New("practicum: unknown or missing homework status")
	ErrMissingName   = errors.New("practicum: homework record has no name")
)
