package mcpclient

import (
	"fmt"
	"strings"
)

// ConnectionError means the endpoint could not be reached: unsupported URI
// scheme, refused connection, or a failed initialize handshake.
type ConnectionError struct {
	Endpoint string
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot connect to %s: %v", e.Endpoint, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// ToolNotFoundError means the remote lists no tool matching the wanted name.
type ToolNotFoundError struct {
	Endpoint  string
	Tool      string
	Available []string
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("tool %q not found on %s (available: %s)",
		e.Tool, e.Endpoint, strings.Join(e.Available, ", "))
}

// RemoteInvocationError means the remote accepted the call but returned an
// application-level error. Message is passed through from the remote.
type RemoteInvocationError struct {
	Endpoint string
	Tool     string
	Message  string
}

func (e *RemoteInvocationError) Error() string {
	return fmt.Sprintf("remote %s returned an error from %s: %s", e.Endpoint, e.Tool, e.Message)
}

// TransportError means an in-flight call failed: network error, timeout, or
// context cancellation while the request was on the wire.
type TransportError struct {
	Endpoint string
	Tool     string
	Err      error
}

func (e *TransportError) Error() string {
	if e.Tool == "" {
		return fmt.Sprintf("transport failure on %s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("transport failure calling %s on %s: %v", e.Tool, e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
