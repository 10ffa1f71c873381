// Package resolver implements multi-source field resolution: for each
// semantic field, consult its stores in catalog precedence and accept the
// first non-empty, non-poisoned value. The engine is stateless; results
// are recomputed on every call and never cached across requests.
package resolver

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/meettonyg/guestify-backend/internal/catalog"
	"github.com/meettonyg/guestify-backend/internal/logger"
	"github.com/meettonyg/guestify-backend/internal/quality"
	"github.com/meettonyg/guestify-backend/internal/stores"
)

// ResolvedField is transient per request. Source is empty when no store
// yielded an acceptable value.
type ResolvedField struct {
	Name   string          `json:"name"`
	Value  string          `json:"value"`
	Source catalog.StoreID `json:"source,omitempty"`
}

type GroupResult struct {
	Group     catalog.Group            `json:"group"`
	Fields    map[string]ResolvedField `json:"fields"`
	FillCount int                      `json:"fill_count"`
	Quality   quality.Level            `json:"quality"`
}

type Engine struct {
	cat      *catalog.Catalog
	adapters map[catalog.StoreID]stores.Adapter
	log      *logger.Logger
}

// NewEngine fails fast when any store the catalog references has no
// adapter wired.
func NewEngine(cat *catalog.Catalog, adapters []stores.Adapter, baseLog *logger.Logger) (*Engine, error) {
	byID := make(map[catalog.StoreID]stores.Adapter, len(adapters))
	for _, a := range adapters {
		byID[a.ID()] = a
	}
	for _, id := range cat.StoreIDs() {
		if _, ok := byID[id]; !ok {
			return nil, fmt.Errorf("resolver: no adapter wired for store %q", id)
		}
	}
	return &Engine{
		cat:      cat,
		adapters: byID,
		log:      baseLog.With("service", "ResolutionEngine"),
	}, nil
}

func (e *Engine) Catalog() *catalog.Catalog { return e.cat }

// ResolveField walks the field's stores in declared precedence. First
// acceptable value wins unconditionally; there is no recency or length
// tie-break. A store I/O failure skips that store and continues. When
// every store returns empty or poisoned, the field resolves to empty:
// clean slate, never a synthetic default.
func (e *Engine) ResolveField(ctx context.Context, recordID uuid.UUID, name string) (ResolvedField, error) {
	def, err := e.cat.GetDefinition(name)
	if err != nil {
		return ResolvedField{}, err
	}
	resolved := ResolvedField{Name: name}
	for _, ref := range def.Stores {
		adapter := e.adapters[ref.Store]
		value, err := adapter.Get(ctx, recordID, ref.Key)
		if err != nil {
			e.log.Warn("store read failed, skipping in precedence", "field", name, "store", ref.Store, "error", err)
			continue
		}
		if value == "" {
			continue
		}
		if def.IsPoisoned(value) {
			e.log.Debug("poisoned value filtered", "field", name, "store", ref.Store)
			continue
		}
		resolved.Value = value
		resolved.Source = ref.Store
		break
	}
	return resolved, nil
}

// Resolve builds a fresh group result: every field in the group resolved
// in catalog order, fill count of non-empty values, and a quality level.
func (e *Engine) Resolve(ctx context.Context, recordID uuid.UUID, group catalog.Group) (*GroupResult, error) {
	spec, err := e.cat.GroupSpec(group)
	if err != nil {
		return nil, err
	}
	result := &GroupResult{
		Group:  group,
		Fields: make(map[string]ResolvedField, len(spec.Fields)),
	}
	for _, name := range spec.Fields {
		field, err := e.ResolveField(ctx, recordID, name)
		if err != nil {
			return nil, err
		}
		result.Fields[name] = field
		if field.Value != "" {
			result.FillCount++
		}
	}
	result.Quality = quality.Assess(result.FillCount, len(spec.Fields))
	return result, nil
}
