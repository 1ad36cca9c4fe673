package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port            string
	DatabaseURL     string
	UploadsDir      string
	VaultUploadsDir string
	DeployMode      string
	SessionTTL      time.Duration
	VaultPasswords  map[string]string
	CORSOrigins     []string
}

func Load() *Config {
	cfg := &Config{
		Port:        getenv("PORT", "8080"),
		DatabaseURL: getenv("DATABASE_URL", filepath.Join("data", "database.db")),
		UploadsDir:  getenv("UPLOADS_DIR", "uploads"),
		DeployMode:  getenv("DEPLOY_MODE", "development"),
		SessionTTL:  time.Duration(getenvInt("SESSION_TTL_HOURS", 7*24)) * time.Hour,
		VaultPasswords: map[string]string{
			"collector": getenv("VAULT_PASSWORD_COLLECTOR", "vault123"),
			"developer": getenv("VAULT_PASSWORD_DEVELOPER", "devvault456"),
		},
		CORSOrigins: strings.Split(getenv("CORS_ORIGINS", "http://localhost:3000"), ","),
	}

	// Vault blobs move to an ephemeral location in production deployments.
	defaultVaultDir := "vault-uploads"
	if cfg.IsProduction() {
		defaultVaultDir = filepath.Join(os.TempDir(), "vault-uploads")
	}
	cfg.VaultUploadsDir = getenv("VAULT_UPLOADS_DIR", defaultVaultDir)

	return cfg
}

func (c *Config) IsProduction() bool {
	return c.DeployMode == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
