// Package clients contains the HTTP clients for the peer services the
// catalog depends on: the user directory and the order history service.
package clients

import "fmt"

// PeerError reports a failed peer call. Status is the upstream HTTP
// status, or 0 when the request never produced a response (timeout,
// connection refused, open circuit).
type PeerError struct {
	Service string
	Status  int
	Message string
}

func (e *PeerError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s returned status %d: %s", e.Service, e.Status, e.Message)
	}
	return fmt.Sprintf("%s unreachable: %s", e.Service, e.Message)
}
