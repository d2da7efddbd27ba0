package update

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	domainmodel "wordkeep/internal/model"
)

type RuntimeConfig struct {
	DataDir      string
	DefaultTheme domainmodel.Theme
	LogLevel     string
	ChartDays    int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DataDir:      defaultDataDir(),
		DefaultTheme: domainmodel.ThemeLight,
		LogLevel:     "info",
		ChartDays:    14,
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "data"
	}
	return filepath.Join(home, ".wordkeep")
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v := strings.TrimSpace(os.Getenv("WORDKEEP_DATA_DIR")); v != "" {
		cfg.DataDir = v
	}
	if v, err := domainmodel.ParseTheme(os.Getenv("WORDKEEP_THEME")); err == nil {
		cfg.DefaultTheme = v
	}
	if v := strings.TrimSpace(os.Getenv("WORDKEEP_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v, ok := getEnvInt("WORDKEEP_CHART_DAYS"); ok && v > 0 {
		cfg.ChartDays = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
