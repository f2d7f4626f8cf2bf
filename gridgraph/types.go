package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrNoPath indicates no path exists between the requested endpoints.
	ErrNoPath = errors.New("gridgraph: no path between specified cells")
)
