package ports

import "context"

// StatusProvider queries the homework review status API.
// The result is the decoded JSON body, left unvalidated.
type StatusProvider interface {
	FetchStatus(ctx context.Context, windowStart int64) (any, error)
}
