package directory

import "fmt"

// ServiceError wraps any transport or API failure from a directory service.
// Status is the HTTP status code, 0 when the request never got a response.
type ServiceError struct {
	Service string // "inventory" or "network"
	Op      string // e.g. "list hosts"
	Status  int
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: %s: service returned %d", e.Service, e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %s: %v", e.Service, e.Op, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// ValidationError reports an endpoint config problem with a suggested fix.
type ValidationError struct {
	Field      string // dotted path, e.g. "directory.network.api_url"
	Message    string // what's wrong
	Suggestion string // how to fix it
}
