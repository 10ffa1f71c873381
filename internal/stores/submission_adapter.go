package stores

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/meettonyg/guestify-backend/internal/catalog"
	"github.com/meettonyg/guestify-backend/internal/logger"
	"github.com/meettonyg/guestify-backend/internal/pkg/errors"
	"github.com/meettonyg/guestify-backend/internal/repos"
)

type submissionAdapter struct {
	subs    repos.SubmissionRepo
	entries EntryResolver
	log     *logger.Logger
}

func NewSubmissionAdapter(subs repos.SubmissionRepo, entries EntryResolver, baseLog *logger.Logger) Adapter {
	return &submissionAdapter{
		subs:    subs,
		entries: entries,
		log:     baseLog.With("adapter", "SubmissionStore"),
	}
}

func (s *submissionAdapter) ID() catalog.StoreID { return catalog.StoreSubmission }

func (s *submissionAdapter) Get(ctx context.Context, recordID uuid.UUID, key string) (string, error) {
	fieldID, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return "", fmt.Errorf("submission key %q is not a field ID: %w", key, err)
	}
	entryID, err := s.entries.ResolveEntry(ctx, recordID)
	if err != nil {
		return "", fmt.Errorf("resolve entry for %s: %w", recordID, errors.ErrStoreUnavailable)
	}
	if entryID == 0 {
		// No legacy entry linked; everything reads as absent.
		return "", nil
	}
	value, found, err := s.subs.Get(ctx, nil, entryID, fieldID)
	if err != nil {
		return "", fmt.Errorf("submission get field %d: %w", fieldID, errors.ErrStoreUnavailable)
	}
	if !found {
		return "", nil
	}
	return value, nil
}

func (s *submissionAdapter) Set(ctx context.Context, recordID uuid.UUID, key, value string) error {
	fieldID, err := strconv.ParseInt(key, 10, 64)
	if err != nil {
		return fmt.Errorf("submission key %q is not a field ID: %w", key, err)
	}
	entryID, err := s.entries.ResolveEntry(ctx, recordID)
	if err != nil {
		return fmt.Errorf("resolve entry for %s: %w", recordID, errors.ErrStoreUnavailable)
	}
	if entryID == 0 {
		return fmt.Errorf("record %s has no legacy entry: %w", recordID, errors.ErrStoreUnavailable)
	}
	if err := s.subs.Upsert(ctx, nil, entryID, fieldID, value); err != nil {
		s.log.Error("submission write failed", "field_id", fieldID, "error", err)
		return fmt.Errorf("submission set field %d: %w", fieldID, errors.ErrStoreUnavailable)
	}
	return nil
}

// RecordEntryResolver resolves the legacy entry from the record row.
type recordEntryResolver struct {
	records repos.RecordRepo
}

func NewRecordEntryResolver(records repos.RecordRepo) EntryResolver {
	return &recordEntryResolver{records: records}
}

func (r *recordEntryResolver) ResolveEntry(ctx context.Context, recordID uuid.UUID) (int64, error) {
	return r.records.LegacyEntryID(ctx, nil, recordID)
}
