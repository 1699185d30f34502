package ports

import "context"

// SubmissionGuard rejects a write whose idempotency key was already used.
type SubmissionGuard interface {
	// Acquire returns false when key was seen within the guard's window.
	Acquire(ctx context.Context, key string) (bool, error)
	// Release frees key after a failed write so the operator can retry.
	Release(ctx context.Context, key string) error
}
