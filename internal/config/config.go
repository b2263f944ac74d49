package config

import (
	"path"

	"github.com/mdjukic/inventory-api/internal/modules/env"

	"go.uber.org/zap"
)

const (
	PortEnv        = "PORT"
	DatabaseUrlEnv = "DATABASE_URL"
	RootPathEnv    = "ROOT_PATH"

	JwtSecretEnv          = "JWT_SECRET"
	JwtIssuerEnv          = "JWT_ISSUER"
	JwtAudienceEnv        = "JWT_AUDIENCE"
	JwtExpirationHoursEnv = "JWT_EXPIRATION_HOURS"

	AdminEmailEnv    = "ADMIN_EMAIL"
	AdminPasswordEnv = "ADMIN_PASSWORD"
)

type AuthConfiguration struct {
	Secret          string
	Issuer          string
	Audience        string
	ExpirationHours int

	AdminEmail    string
	AdminPassword string
}

type Config struct {
	Logger *zap.Logger

	Port           int
	DatabaseURL    string
	MigrationsPath string

	Auth AuthConfiguration
}

func Load() (Config, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return Config{}, err
	}

	port := env.MustGetInt(PortEnv)
	dbURL := env.MustGetString(DatabaseUrlEnv)

	rootPath := env.MustGetString(RootPathEnv)
	migrationsPath := path.Join(rootPath, "db", "migrations")

	return Config{
		Logger:         logger,
		Port:           port,
		DatabaseURL:    dbURL,
		MigrationsPath: migrationsPath,
		Auth: AuthConfiguration{
			Secret:          env.MustGetString(JwtSecretEnv),
			Issuer:          env.MustGetString(JwtIssuerEnv),
			Audience:        env.MustGetString(JwtAudienceEnv),
			ExpirationHours: env.MustGetInt(JwtExpirationHoursEnv),
			AdminEmail:      env.MustGetString(AdminEmailEnv),
			AdminPassword:   env.MustGetString(AdminPasswordEnv),
		},
	}, nil
}
