package storage

import "context"

// Fetcher resolves a caption-track source referenced by URI instead of
// inlined in the request body.
type Fetcher interface {
	Fetch(ctx context.Context, uri string) ([]byte, error)
}
