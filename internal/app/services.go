package app

import (
	"fmt"

	redisclient "github.com/meettonyg/guestify-backend/internal/clients/redis"

	"github.com/meettonyg/guestify-backend/internal/catalog"
	"github.com/meettonyg/guestify-backend/internal/clients/openai"
	"github.com/meettonyg/guestify-backend/internal/logger"
	"github.com/meettonyg/guestify-backend/internal/persist"
	"github.com/meettonyg/guestify-backend/internal/resolver"
	"github.com/meettonyg/guestify-backend/internal/services"
	"github.com/meettonyg/guestify-backend/internal/stores"
)

type Services struct {
	Content    services.ContentService
	Generation services.GenerationService
	Notifier   redisclient.Notifier
}

func wireServices(log *logger.Logger, cfg Config, reposet Repos) (Services, error) {
	log.Info("Wiring services...")

	override, err := catalog.LoadOverride(cfg.CatalogOverridePath)
	if err != nil {
		return Services{}, fmt.Errorf("load catalog override: %w", err)
	}
	cat, err := catalog.Default(override)
	if err != nil {
		return Services{}, fmt.Errorf("build field catalog: %w", err)
	}

	adapters := []stores.Adapter{
		stores.NewAttributeAdapter(reposet.Attribute, log),
		stores.NewSubmissionAdapter(reposet.Submission, stores.NewRecordEntryResolver(reposet.Record), log),
	}

	engine, err := resolver.NewEngine(cat, adapters, log)
	if err != nil {
		return Services{}, fmt.Errorf("init resolution engine: %w", err)
	}
	coordinator := persist.NewCoordinator(engine, adapters, log)

	contentService := services.NewContentService(log, reposet.Record, engine, coordinator)

	aiClient, err := openai.NewClient(log)
	if err != nil {
		log.Warn("Could not init OpenAIClient, generation endpoints disabled", "error", err)
		aiClient = nil
	}

	var notifier redisclient.Notifier
	notifier, err = redisclient.NewNotifier(log)
	if err != nil {
		log.Warn("Could not init RedisNotifier, generation events disabled", "error", err)
		notifier = redisclient.NoopNotifier{}
	}

	generationService := services.NewGenerationService(log, aiClient, contentService, reposet.AICallLog, notifier)

	return Services{
		Content:    contentService,
		Generation: generationService,
		Notifier:   notifier,
	}, nil
}
