package stores

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/meettonyg/guestify-backend/internal/catalog"
	"github.com/meettonyg/guestify-backend/internal/logger"
	"github.com/meettonyg/guestify-backend/internal/pkg/errors"
	"github.com/meettonyg/guestify-backend/internal/repos"
)

type attributeAdapter struct {
	attrs repos.AttributeRepo
	log   *logger.Logger
}

func NewAttributeAdapter(attrs repos.AttributeRepo, baseLog *logger.Logger) Adapter {
	return &attributeAdapter{
		attrs: attrs,
		log:   baseLog.With("adapter", "AttributeStore"),
	}
}

func (a *attributeAdapter) ID() catalog.StoreID { return catalog.StoreAttribute }

func (a *attributeAdapter) Get(ctx context.Context, recordID uuid.UUID, key string) (string, error) {
	value, found, err := a.attrs.Get(ctx, nil, recordID, key)
	if err != nil {
		return "", fmt.Errorf("attribute get %q: %w", key, errors.ErrStoreUnavailable)
	}
	if !found {
		return "", nil
	}
	return value, nil
}

func (a *attributeAdapter) Set(ctx context.Context, recordID uuid.UUID, key, value string) error {
	if err := a.attrs.Upsert(ctx, nil, recordID, key, value); err != nil {
		a.log.Error("attribute write failed", "key", key, "error", err)
		return fmt.Errorf("attribute set %q: %w", key, errors.ErrStoreUnavailable)
	}
	return nil
}
