// Package persist coordinates writes across the two stores. Saves are
// partial-failure tolerant: one bad field never rolls back its neighbors,
// and the caller always gets a per-field outcome report instead of a
// first-failure error.
package persist

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/meettonyg/guestify-backend/internal/catalog"
	"github.com/meettonyg/guestify-backend/internal/compose"
	"github.com/meettonyg/guestify-backend/internal/logger"
	"github.com/meettonyg/guestify-backend/internal/pkg/errors"
	"github.com/meettonyg/guestify-backend/internal/resolver"
	"github.com/meettonyg/guestify-backend/internal/stores"
)

type Outcome string

const (
	OutcomeSaved          Outcome = "saved"
	OutcomeSkippedInvalid Outcome = "skipped-invalid"
	OutcomeStoreError     Outcome = "store-error"
)

type FieldOutcome struct {
	Name    string  `json:"name"`
	Outcome Outcome `json:"outcome"`
	Reason  string  `json:"reason,omitempty"`
}

type SaveReport struct {
	Group      catalog.Group           `json:"group"`
	Outcomes   map[string]FieldOutcome `json:"per_field_outcomes"`
	SavedCount int                     `json:"saved_count"`
	Composite  string                  `json:"composite_string"`
	// Succeeded means at least one field saved and the group's minimum
	// fill constraint holds afterwards. Not transactional by design.
	Succeeded bool `json:"succeeded"`
}

type Coordinator struct {
	engine   *resolver.Engine
	adapters map[catalog.StoreID]stores.Adapter
	log      *logger.Logger
}

func NewCoordinator(engine *resolver.Engine, adapters []stores.Adapter, baseLog *logger.Logger) *Coordinator {
	byID := make(map[catalog.StoreID]stores.Adapter, len(adapters))
	for _, a := range adapters {
		byID[a.ID()] = a
	}
	return &Coordinator{
		engine:   engine,
		adapters: byID,
		log:      baseLog.With("service", "PersistenceCoordinator"),
	}
}

// Save validates and writes the provided fields, then refreshes the
// composite positioning statement. Unknown field names are a programmer
// error and abort the whole operation; everything else degrades per
// field.
func (co *Coordinator) Save(ctx context.Context, recordID uuid.UUID, group catalog.Group, values map[string]string) (*SaveReport, error) {
	cat := co.engine.Catalog()
	spec, err := cat.GroupSpec(group)
	if err != nil {
		return nil, err
	}

	inGroup := make(map[string]bool, len(spec.Fields))
	for _, name := range spec.Fields {
		inGroup[name] = true
	}
	for name := range values {
		if !inGroup[name] {
			return nil, fmt.Errorf("field %q not in group %q: %w", name, group, errors.ErrFieldNotConfigured)
		}
	}

	report := &SaveReport{
		Group:    group,
		Outcomes: make(map[string]FieldOutcome, len(values)),
	}

	// Iterate in catalog order so logs and reports stay deterministic.
	for _, name := range spec.Fields {
		raw, provided := values[name]
		if !provided {
			continue
		}
		value := strings.TrimSpace(raw)

		def, err := cat.GetDefinition(name)
		if err != nil {
			return nil, err
		}
		if verr := validate(def, value); verr != nil {
			co.log.Debug("field skipped by validation", "field", name, "reason", verr.Reason)
			report.Outcomes[name] = FieldOutcome{Name: name, Outcome: OutcomeSkippedInvalid, Reason: verr.Reason}
			continue
		}

		primary := def.Stores[0]
		if err := co.adapters[primary.Store].Set(ctx, recordID, primary.Key, value); err != nil {
			co.log.Warn("primary store write failed", "field", name, "store", primary.Store, "error", err)
			report.Outcomes[name] = FieldOutcome{Name: name, Outcome: OutcomeStoreError, Reason: err.Error()}
			continue
		}
		report.Outcomes[name] = FieldOutcome{Name: name, Outcome: OutcomeSaved}
		report.SavedCount++

		// Legacy mirrors are read-compatibility copies; a mirror failure
		// does not downgrade the outcome.
		for _, mirror := range def.Stores[1:] {
			if err := co.adapters[mirror.Store].Set(ctx, recordID, mirror.Key, value); err != nil {
				co.log.Warn("mirror write failed", "field", name, "store", mirror.Store, "error", err)
			}
		}
	}

	composite, err := co.RefreshComposite(ctx, recordID)
	if err != nil {
		co.log.Warn("composite refresh failed", "record_id", recordID, "error", err)
	}
	report.Composite = composite

	report.Succeeded = report.SavedCount >= 1
	if report.Succeeded && spec.MinFilled > 0 {
		current, err := co.engine.Resolve(ctx, recordID, group)
		if err != nil {
			return nil, err
		}
		if current.FillCount < spec.MinFilled {
			co.log.Debug("group below minimum fill", "group", group, "fill", current.FillCount, "min", spec.MinFilled)
			report.Succeeded = false
		}
	}
	return report, nil
}

// RefreshComposite recomposes the positioning statement from the current
// resolved components and persists the legacy-compatibility copy. The
// stored composite is a cache: always reproducible, safely regenerable.
func (co *Coordinator) RefreshComposite(ctx context.Context, recordID uuid.UUID) (string, error) {
	result, err := co.engine.Resolve(ctx, recordID, catalog.GroupPositioning)
	if err != nil {
		return "", err
	}
	composite := compose.PositioningStatement(
		result.Fields[catalog.FieldWho].Value,
		result.Fields[catalog.FieldResult].Value,
		result.Fields[catalog.FieldWhen].Value,
		result.Fields[catalog.FieldHow].Value,
	)
	attr := co.adapters[catalog.StoreAttribute]
	if err := attr.Set(ctx, recordID, catalog.CompositeKey, composite); err != nil {
		return composite, err
	}
	return composite, nil
}

func validate(def catalog.FieldDefinition, value string) *errors.ValidationError {
	length := len([]rune(value))
	if def.Constraints.MinLen > 0 && length > 0 && length < def.Constraints.MinLen {
		return errors.NewValidationError(def.Name, fmt.Sprintf("shorter than %d characters", def.Constraints.MinLen))
	}
	if def.Constraints.MaxLen > 0 && length > def.Constraints.MaxLen {
		return errors.NewValidationError(def.Name, fmt.Sprintf("longer than %d characters", def.Constraints.MaxLen))
	}
	return nil
}
