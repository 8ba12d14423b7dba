package model

// Host is a registered fleet host. The UUID is its identity; the hostname is
// a human-readable alias treated as unique for lookup purposes.
type Host struct {
	UUID     string
	Hostname string

	// Aggregations is supplementary metadata attached by the pipeline's
	// enrichment stage, not part of the directory's host record.
	Aggregations []Aggregation
}
