// Package blob provides the persistence adapter for the hospital records
// document. Backends expose load-all/save-all semantics over one opaque
// serialized document; the store neither knows nor cares where the bytes
// live. Implementations: filesystem, Postgres, and in-memory for tests.
package blob

import (
	"context"
	"errors"
)

// ErrNotExist is returned by Load when no document has been saved yet.
var ErrNotExist = errors.New("document does not exist")

// Store is the contract every persistence backend implements.
type Store interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}
