// Copyright (C) 2017 ScyllaDB

package reaperclient

import "fmt"

// HTTPError is a non-2xx response from the service. Body holds the raw
// response text so it can be shown to the operator as is.
type HTTPError struct {
	StatusCode int
	Body       string
}

// Error implements error.
func (e HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("service returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("service returned status %d: %s", e.StatusCode, e.Body)
}

// TransportError marks error as caused by a failed connection, DNS failure
// or timeout, the request never produced a response.
type TransportError struct {
	Cause error
}

// Error implements error.
func (e TransportError) Error() string {
	if e.Cause == nil {
		return "transport failure"
	}
	return e.Cause.Error()
}

// Unwrap returns the underlying cause.
func (e TransportError) Unwrap() error {
	return e.Cause
}

// RemoteRejectedTransitionError is a HTTPError raised by the service
// refusing a requested run state change. It is handled exactly like any
// other HTTP failure, the client does not second-guess the service's
// transition rules.
type RemoteRejectedTransitionError struct {
	RunID  string
	Target string
	Cause  HTTPError
}

// Error implements error.
func (e RemoteRejectedTransitionError) Error() string {
	return fmt.Sprintf("service rejected state change of run %s to %s: %s", e.RunID, e.Target, e.Cause)
}

// Unwrap returns the underlying HTTP error.
func (e RemoteRejectedTransitionError) Unwrap() error {
	return e.Cause
}
