package main

import (
	"os"

	"github.com/joho/godotenv"
)

// loadEnvFiles reads .env and .env.local without overriding environment
// already provided by the runtime (e.g. Docker).
func loadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// migrationsDir resolves where the goose SQL files live; MIGRATIONS_DIR
// overrides the in-repo default.
func migrationsDir() string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return "db/migrations"
}
