// Package stores holds the thin adapters over the two backing stores. An
// adapter never synthesizes defaults: Get returns the empty string when a
// key is absent and errors only when its backend is unreachable. Writes
// are confined to exactly the store being written; adapters never
// cross-write.
package stores

import (
	"context"

	"github.com/google/uuid"

	"github.com/meettonyg/guestify-backend/internal/catalog"
)

type Adapter interface {
	ID() catalog.StoreID
	Get(ctx context.Context, recordID uuid.UUID, key string) (string, error)
	Set(ctx context.Context, recordID uuid.UUID, key, value string) error
}

// EntryResolver maps a record to its legacy submission entry ID. Zero
// means no entry is associated. Owning this association is deliberately
// outside the submission adapter.
type EntryResolver interface {
	ResolveEntry(ctx context.Context, recordID uuid.UUID) (int64, error)
}
