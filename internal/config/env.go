package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/orgsite/internal/logfields"
)

// envFiles are loaded in order; godotenv never overrides a variable that is
// already set, so earlier files take precedence over later ones.
var envFiles = []string{".env.local", ".env"}

// loadEnvFiles merges the dotenv files that exist into the process environment.
func loadEnvFiles() {
	for _, name := range envFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			slog.Warn("Failed to load env file", logfields.Path(name), logfields.Error(err))
			continue
		}
		slog.Debug("Loaded environment variables", logfields.Path(name))
	}
}
