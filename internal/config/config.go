package config

import "os"

type Config struct {
	DatabaseURL string
	Port        string
	SeedDemo    bool
	ForceReset  bool
}

func Load() *Config {
	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", "mastermind.db"),
		Port:        getEnv("PORT", "8080"),
		SeedDemo:    getEnv("SEED_DEMO", "true") == "true",
		ForceReset:  getEnv("FORCE_RESET", "false") == "true",
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
