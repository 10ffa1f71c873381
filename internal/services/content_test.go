package services

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/meettonyg/guestify-backend/internal/catalog"
	"github.com/meettonyg/guestify-backend/internal/logger"
	"github.com/meettonyg/guestify-backend/internal/persist"
	"github.com/meettonyg/guestify-backend/internal/pkg/errors"
	"github.com/meettonyg/guestify-backend/internal/resolver"
	"github.com/meettonyg/guestify-backend/internal/stores"
	"github.com/meettonyg/guestify-backend/internal/types"
)

func nopLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// fakeRecordRepo knows a single record.
type fakeRecordRepo struct {
	record *types.Record
}

func (f *fakeRecordRepo) GetByID(_ context.Context, _ *gorm.DB, recordID uuid.UUID) (*types.Record, error) {
	if f.record != nil && f.record.ID == recordID {
		return f.record, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRecordRepo) Exists(_ context.Context, _ *gorm.DB, recordID uuid.UUID) (bool, error) {
	return f.record != nil && f.record.ID == recordID, nil
}

func (f *fakeRecordRepo) LegacyEntryID(_ context.Context, _ *gorm.DB, recordID uuid.UUID) (int64, error) {
	if f.record != nil && f.record.ID == recordID {
		return f.record.LegacyEntryID, nil
	}
	return 0, nil
}

func newTestContentService(t *testing.T, record *types.Record) ContentService {
	t.Helper()
	cat, err := catalog.Default(nil)
	if err != nil {
		t.Fatalf("catalog.Default: %v", err)
	}
	adapters := []stores.Adapter{
		stores.NewMemoryAdapter(catalog.StoreAttribute),
		stores.NewMemoryAdapter(catalog.StoreSubmission),
	}
	engine, err := resolver.NewEngine(cat, adapters, nopLogger())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	coordinator := persist.NewCoordinator(engine, adapters, nopLogger())
	return NewContentService(nopLogger(), &fakeRecordRepo{record: record}, engine, coordinator)
}

func TestContentServiceRoundTrip(t *testing.T) {
	record := &types.Record{ID: uuid.New(), LegacyEntryID: 42}
	svc := newTestContentService(t, record)
	ctx := context.Background()

	// A brand-new record resolves to a clean slate.
	before, err := svc.Resolve(ctx, record.ID, catalog.GroupPositioning)
	if err != nil {
		t.Fatalf("Resolve before save: %v", err)
	}
	if before.FillCount != 0 || before.Quality != "missing" {
		t.Fatalf("fresh record: fill=%d quality=%q, want 0/missing", before.FillCount, before.Quality)
	}

	report, err := svc.Save(ctx, record.ID, catalog.GroupPositioning, map[string]string{
		catalog.FieldWho:    "SaaS founders",
		catalog.FieldResult: "scale past $1M",
		catalog.FieldWhen:   "they hit a growth plateau",
		catalog.FieldHow:    "a 90-day system",
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !report.Succeeded || report.SavedCount != 4 {
		t.Fatalf("save report: succeeded=%v saved=%d, want true/4", report.Succeeded, report.SavedCount)
	}

	after, err := svc.Resolve(ctx, record.ID, catalog.GroupPositioning)
	if err != nil {
		t.Fatalf("Resolve after save: %v", err)
	}
	wantFields := map[string]string{
		catalog.FieldWho:    "SaaS founders",
		catalog.FieldResult: "scale past $1M",
		catalog.FieldWhen:   "they hit a growth plateau",
		catalog.FieldHow:    "a 90-day system",
	}
	for name, want := range wantFields {
		if got := after.Fields[name].Value; got != want {
			t.Fatalf("field %s=%q, want %q", name, got, want)
		}
	}
	if after.Quality != "excellent" {
		t.Fatalf("quality=%q, want excellent", after.Quality)
	}

	composite, err := svc.Composite(ctx, record.ID)
	if err != nil {
		t.Fatalf("Composite: %v", err)
	}
	want := "I help SaaS founders scale past $1M when they hit a growth plateau a 90-day system."
	if composite != want {
		t.Fatalf("composite=%q, want %q", composite, want)
	}
}

func TestContentServiceUnknownRecord(t *testing.T) {
	svc := newTestContentService(t, &types.Record{ID: uuid.New()})
	ctx := context.Background()
	stranger := uuid.New()

	if _, err := svc.Resolve(ctx, stranger, catalog.GroupTopic); !stderrors.Is(err, errors.ErrRecordNotFound) {
		t.Fatalf("Resolve err=%v, want ErrRecordNotFound", err)
	}
	if _, err := svc.Save(ctx, stranger, catalog.GroupTopic, map[string]string{"topic_1": "anything"}); !stderrors.Is(err, errors.ErrRecordNotFound) {
		t.Fatalf("Save err=%v, want ErrRecordNotFound", err)
	}
	if _, err := svc.Composite(ctx, stranger); !stderrors.Is(err, errors.ErrRecordNotFound) {
		t.Fatalf("Composite err=%v, want ErrRecordNotFound", err)
	}
}
