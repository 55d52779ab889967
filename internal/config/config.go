package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the settings of the bannergen tool. Everything has a default;
// values come from the environment, optionally seeded from a .env file.
type Config struct {
	Output OutputConfig
	Banner BannerConfig
	Data   DataConfig
}

// OutputConfig holds export settings.
type OutputConfig struct {
	WorkbookPath string
}

// BannerConfig holds banner computation settings.
type BannerConfig struct {
	Workers int
}

// DataConfig holds synthetic-data settings.
type DataConfig struct {
	Rows int
	Seed int64
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; a missing file is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Output: OutputConfig{
			WorkbookPath: envString("XTAB_WORKBOOK", "banner.xlsx"),
		},
		Banner: BannerConfig{
			Workers: envInt("XTAB_WORKERS", 4),
		},
		Data: DataConfig{
			Rows: envInt("XTAB_ROWS", 500),
			Seed: int64(envInt("XTAB_SEED", 42)),
		},
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
