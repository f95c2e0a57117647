package ports

import "context"

// VisitCounter tracks per-user members-page visits.
type VisitCounter interface {
	Increment(ctx context.Context, username string) (int64, error)
}
