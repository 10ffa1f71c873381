package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/meettonyg/guestify-backend/internal/catalog"
	"github.com/meettonyg/guestify-backend/internal/compose"
	"github.com/meettonyg/guestify-backend/internal/logger"
	"github.com/meettonyg/guestify-backend/internal/persist"
	"github.com/meettonyg/guestify-backend/internal/pkg/errors"
	"github.com/meettonyg/guestify-backend/internal/repos"
	"github.com/meettonyg/guestify-backend/internal/resolver"
)

// ContentService is the only surface the transport layer talks to. It
// gates on record existence (fatal per spec) and delegates to the
// resolution engine and persistence coordinator.
type ContentService interface {
	Resolve(ctx context.Context, recordID uuid.UUID, group catalog.Group) (*resolver.GroupResult, error)
	Save(ctx context.Context, recordID uuid.UUID, group catalog.Group, values map[string]string) (*persist.SaveReport, error)
	Composite(ctx context.Context, recordID uuid.UUID) (string, error)
}

type contentService struct {
	log         *logger.Logger
	records     repos.RecordRepo
	engine      *resolver.Engine
	coordinator *persist.Coordinator
}

func NewContentService(log *logger.Logger, records repos.RecordRepo, engine *resolver.Engine, coordinator *persist.Coordinator) ContentService {
	return &contentService{
		log:         log.With("service", "ContentService"),
		records:     records,
		engine:      engine,
		coordinator: coordinator,
	}
}

func (cs *contentService) requireRecord(ctx context.Context, recordID uuid.UUID) error {
	exists, err := cs.records.Exists(ctx, nil, recordID)
	if err != nil {
		return fmt.Errorf("record lookup: %w", err)
	}
	if !exists {
		return fmt.Errorf("record %s: %w", recordID, errors.ErrRecordNotFound)
	}
	return nil
}

func (cs *contentService) Resolve(ctx context.Context, recordID uuid.UUID, group catalog.Group) (*resolver.GroupResult, error) {
	if err := cs.requireRecord(ctx, recordID); err != nil {
		return nil, err
	}
	return cs.engine.Resolve(ctx, recordID, group)
}

func (cs *contentService) Save(ctx context.Context, recordID uuid.UUID, group catalog.Group, values map[string]string) (*persist.SaveReport, error) {
	if err := cs.requireRecord(ctx, recordID); err != nil {
		return nil, err
	}
	return cs.coordinator.Save(ctx, recordID, group, values)
}

// Composite recomposes the positioning statement from the current
// resolved components without persisting anything.
func (cs *contentService) Composite(ctx context.Context, recordID uuid.UUID) (string, error) {
	if err := cs.requireRecord(ctx, recordID); err != nil {
		return "", err
	}
	result, err := cs.engine.Resolve(ctx, recordID, catalog.GroupPositioning)
	if err != nil {
		return "", err
	}
	return compose.PositioningStatement(
		result.Fields[catalog.FieldWho].Value,
		result.Fields[catalog.FieldResult].Value,
		result.Fields[catalog.FieldWhen].Value,
		result.Fields[catalog.FieldHow].Value,
	), nil
}
