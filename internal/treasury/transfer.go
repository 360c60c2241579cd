// Package treasury abstracts the external asset-transfer service that
// moves fungible value and mints/transfers coverage tokens. The engine
// treats it as a synchronous collaborator: a failed call aborts the
// enclosing operation with no state mutation.
package treasury

import "context"

// AssetTransfer exposes the two operations the engine needs.
type AssetTransfer interface {
	// Transfer moves amount (6-decimal base units for fungible value,
	// quantity 1 for coverage tokens) from one account to another.
	Transfer(ctx context.Context, from, to string, amount uint64) error

	// Mint issues quantity units of a new token to the given account and
	// returns the minted token identifier.
	Mint(ctx context.Context, to string, quantity uint64) (string, error)
}
