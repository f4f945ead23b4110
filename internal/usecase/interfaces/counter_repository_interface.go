package interfaces

import "context"

// ICounterRepository issues year-scoped sequence values.
//
// Next is the single serialization point of the whole issuance pipeline: it
// must be an atomic upsert-increment on the durable counter item, so two
// concurrent calls with the same key can never observe the same value.
// Consumed values are never rolled back; gaps are acceptable, duplicates are
// not.
//
// Current reads the last-used value without consuming one (number preview).

type ICounterRepository interface {
	Next(ctx context.Context, key string) (int, error)
	Current(ctx context.Context, key string) (int, error)
}
