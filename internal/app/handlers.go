package app

import (
	"github.com/meettonyg/guestify-backend/internal/handlers"
	"github.com/meettonyg/guestify-backend/internal/logger"
)

type Handlers struct {
	Content    *handlers.ContentHandler
	Generation *handlers.GenerationHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Content:    handlers.NewContentHandler(log, serviceset.Content),
		Generation: handlers.NewGenerationHandler(log, serviceset.Generation),
	}
}
