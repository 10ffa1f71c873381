package resolver

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/meettonyg/guestify-backend/internal/catalog"
	"github.com/meettonyg/guestify-backend/internal/logger"
	"github.com/meettonyg/guestify-backend/internal/stores"
)

func nopLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func newTestEngine(t *testing.T) (*Engine, *stores.MemoryAdapter, *stores.MemoryAdapter) {
	t.Helper()
	cat, err := catalog.Default(nil)
	if err != nil {
		t.Fatalf("catalog.Default: %v", err)
	}
	attr := stores.NewMemoryAdapter(catalog.StoreAttribute)
	sub := stores.NewMemoryAdapter(catalog.StoreSubmission)
	engine, err := NewEngine(cat, []stores.Adapter{attr, sub}, nopLogger())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return engine, attr, sub
}

func legacyKey(t *testing.T, engine *Engine, name string) string {
	t.Helper()
	def, err := engine.Catalog().GetDefinition(name)
	if err != nil {
		t.Fatalf("GetDefinition(%s): %v", name, err)
	}
	for _, ref := range def.Stores {
		if ref.Store == catalog.StoreSubmission {
			return ref.Key
		}
	}
	t.Fatalf("field %s has no submission store", name)
	return ""
}

func TestResolvePrecedenceFirstAcceptableWins(t *testing.T) {
	engine, attr, sub := newTestEngine(t)
	recordID := uuid.New()

	attr.Seed(recordID, "topic_1", "from attribute store")
	sub.Seed(recordID, legacyKey(t, engine, "topic_1"), "from legacy store")

	field, err := engine.ResolveField(context.Background(), recordID, "topic_1")
	if err != nil {
		t.Fatalf("ResolveField: %v", err)
	}
	if field.Value != "from attribute store" {
		t.Fatalf("value=%q, want attribute-store value regardless of legacy content", field.Value)
	}
	if field.Source != catalog.StoreAttribute {
		t.Fatalf("source=%q, want %q", field.Source, catalog.StoreAttribute)
	}
}

func TestResolveFallsBackToLegacy(t *testing.T) {
	engine, _, sub := newTestEngine(t)
	recordID := uuid.New()

	sub.Seed(recordID, legacyKey(t, engine, "topic_2"), "legacy only")

	field, err := engine.ResolveField(context.Background(), recordID, "topic_2")
	if err != nil {
		t.Fatalf("ResolveField: %v", err)
	}
	if field.Value != "legacy only" || field.Source != catalog.StoreSubmission {
		t.Fatalf("got %+v, want legacy value from submission store", field)
	}
}

func TestResolvePoisonedValuesReadAsAbsent(t *testing.T) {
	engine, attr, _ := newTestEngine(t)
	recordID := uuid.New()

	attr.Seed(recordID, "hook_who", "  Your Audience ")

	field, err := engine.ResolveField(context.Background(), recordID, catalog.FieldWho)
	if err != nil {
		t.Fatalf("ResolveField: %v", err)
	}
	if field.Value != "" {
		t.Fatalf("value=%q, want empty for poisoned placeholder", field.Value)
	}
	if field.Source != "" {
		t.Fatalf("source=%q, want none", field.Source)
	}
}

func TestResolvePoisonedPrimaryFallsThroughToLegacy(t *testing.T) {
	engine, attr, sub := newTestEngine(t)
	recordID := uuid.New()

	attr.Seed(recordID, "topic_1", "Interview Topic")
	sub.Seed(recordID, legacyKey(t, engine, "topic_1"), "How to scale support teams")

	field, err := engine.ResolveField(context.Background(), recordID, "topic_1")
	if err != nil {
		t.Fatalf("ResolveField: %v", err)
	}
	if field.Value != "How to scale support teams" || field.Source != catalog.StoreSubmission {
		t.Fatalf("got %+v, want clean legacy value past the poisoned primary", field)
	}
}

func TestResolveCleanSlateWhenNothingAcceptable(t *testing.T) {
	engine, _, _ := newTestEngine(t)
	recordID := uuid.New()

	result, err := engine.Resolve(context.Background(), recordID, catalog.GroupPositioning)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	for name, field := range result.Fields {
		if field.Value != "" {
			t.Fatalf("field %s=%q, want empty (no synthetic defaults)", name, field.Value)
		}
	}
	if result.FillCount != 0 {
		t.Fatalf("fill_count=%d, want 0", result.FillCount)
	}
	if result.Quality != "missing" {
		t.Fatalf("quality=%q, want missing", result.Quality)
	}
}

func TestResolveIdempotent(t *testing.T) {
	engine, attr, sub := newTestEngine(t)
	recordID := uuid.New()

	attr.Seed(recordID, "hook_who", "SaaS founders")
	sub.Seed(recordID, legacyKey(t, engine, catalog.FieldResult), "scale past $1M")

	first, err := engine.Resolve(context.Background(), recordID, catalog.GroupPositioning)
	if err != nil {
		t.Fatalf("first Resolve: %v", err)
	}
	second, err := engine.Resolve(context.Background(), recordID, catalog.GroupPositioning)
	if err != nil {
		t.Fatalf("second Resolve: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("resolve not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

// failingAdapter simulates an unreachable backend.
type failingAdapter struct {
	id catalog.StoreID
}

func (f *failingAdapter) ID() catalog.StoreID { return f.id }
func (f *failingAdapter) Get(context.Context, uuid.UUID, string) (string, error) {
	return "", fmt.Errorf("backend down")
}
func (f *failingAdapter) Set(context.Context, uuid.UUID, string, string) error {
	return fmt.Errorf("backend down")
}

func TestResolveSkipsUnavailableStore(t *testing.T) {
	cat, err := catalog.Default(nil)
	if err != nil {
		t.Fatalf("catalog.Default: %v", err)
	}
	sub := stores.NewMemoryAdapter(catalog.StoreSubmission)
	engine, err := NewEngine(cat, []stores.Adapter{&failingAdapter{id: catalog.StoreAttribute}, sub}, nopLogger())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	recordID := uuid.New()
	sub.Seed(recordID, legacyKey(t, engine, "topic_3"), "still readable")

	field, err := engine.ResolveField(context.Background(), recordID, "topic_3")
	if err != nil {
		t.Fatalf("ResolveField: %v", err)
	}
	if field.Value != "still readable" || field.Source != catalog.StoreSubmission {
		t.Fatalf("got %+v, want legacy value despite attribute-store outage", field)
	}
}

func TestNewEngineRequiresAllAdapters(t *testing.T) {
	cat, err := catalog.Default(nil)
	if err != nil {
		t.Fatalf("catalog.Default: %v", err)
	}
	_, err = NewEngine(cat, []stores.Adapter{stores.NewMemoryAdapter(catalog.StoreAttribute)}, nopLogger())
	if err == nil {
		t.Fatal("NewEngine accepted a catalog with an unwired store")
	}
}

func TestResolveQualityTracksFillCount(t *testing.T) {
	engine, attr, _ := newTestEngine(t)
	recordID := uuid.New()

	for n := 1; n <= 4; n++ {
		attr.Seed(recordID, catalog.TopicFieldName(n), fmt.Sprintf("Topic number %d", n))
	}

	result, err := engine.Resolve(context.Background(), recordID, catalog.GroupTopic)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if result.FillCount != 4 {
		t.Fatalf("fill_count=%d, want 4", result.FillCount)
	}
	if result.Quality != "good" {
		t.Fatalf("quality=%q, want good", result.Quality)
	}
}
