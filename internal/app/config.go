package app

import (
	"strings"

	"github.com/meettonyg/guestify-backend/internal/logger"
	"github.com/meettonyg/guestify-backend/internal/utils"
)

type Config struct {
	JWTSecretKey        string
	Port                string
	Environment         string
	Version             string
	AllowOrigins        []string
	CatalogOverridePath string
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	port := utils.GetEnv("PORT", "8080", log)
	environment := utils.GetEnv("ENVIRONMENT", "development", log)
	version := utils.GetEnv("SERVICE_VERSION", "dev", log)
	originsRaw := utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000", log)
	overridePath := utils.GetEnv("CATALOG_OVERRIDE_PATH", "", log)

	var origins []string
	for _, o := range strings.Split(originsRaw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}

	return Config{
		JWTSecretKey:        jwtSecretKey,
		Port:                port,
		Environment:         environment,
		Version:             version,
		AllowOrigins:        origins,
		CatalogOverridePath: overridePath,
	}
}
