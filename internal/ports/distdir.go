package ports

import "context"

// DistDirPort locates the root of the void-packages checkout.
type DistDirPort interface {
	Locate(ctx context.Context) (string, error)
}
