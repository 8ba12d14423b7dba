package resolve

import "fmt"

// HostNotFoundError means no directory entry matched the identifier, neither
// by UUID nor by hostname.
type HostNotFoundError struct {
	Identifier string
}

func (e *HostNotFoundError) Error() string {
	return fmt.Sprintf("host %q not found in directory", e.Identifier)
}

// LocalIdentityError means the UUID of the running host could not be
// determined; resolution without an explicit identifier cannot proceed.
type LocalIdentityError struct {
	Err error
}

func (e *LocalIdentityError) Error() string {
	return fmt.Sprintf("local host identity unavailable: %v", e.Err)
}

func (e *LocalIdentityError) Unwrap() error {
	return e.Err
}

// AggregationInvariantError means an admin-tagged aggregation carried no
// member MACs. The network service guarantees aggregations are non-empty, so
// this indicates corrupted directory data and is not recoverable.
type AggregationInvariantError struct {
	AggregationID string
}

func (e *AggregationInvariantError) Error() string {
	return fmt.Sprintf("aggregation %q is tagged admin but has no MACs", e.AggregationID)
}
