// Package config loads the runtime configuration of the parkspot commands
// from the environment and the lot description from JSON.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/ironsheep/parkspot/internal/simulation"
	"github.com/ironsheep/parkspot/internal/tuning"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// DefaultEnvFile is the dotenv file preloaded when PARKSPOT_ENV_FILE is unset.
const DefaultEnvFile = ".env"

// Config holds every environment setting of the three commands.
type Config struct {
	LotFile        string
	Threshold      int // 0 or less keeps the lot threshold
	AdaptiveMethod string
	SpotBounds     string
	LogLevel       string

	Image         string
	DebugImage    string
	DebugSpots    string
	FreeColor     string
	OccupiedColor string
	SimImage      string
	SimStore      string
	SimIndex      string
	SimDatabase   string

	TuneImage  string
	TuneReport string
	TuneMask   string
	TuneGrid   tuning.Grid
}

// Load reads the configuration from the environment, after preloading the
// dotenv file named by PARKSPOT_ENV_FILE (default .env) if it exists.
// Variables already set in the environment win over the dotenv file.
func Load() (*Config, error) {
	if err := LoadEnvFile(getEnv("PARKSPOT_ENV_FILE", DefaultEnvFile)); err != nil {
		return nil, err
	}

	grid := tuning.DefaultGrid()

	return &Config{
		LotFile:        getEnv("PARKSPOT_LOT_FILE", ""),
		Threshold:      getEnvAsInt("PARKSPOT_THRESHOLD", 0),
		AdaptiveMethod: getEnv("PARKSPOT_ADAPTIVE_METHOD", ""),
		SpotBounds:     getEnv("PARKSPOT_SPOT_BOUNDS", "clip"),
		LogLevel:       getEnv("PARKSPOT_LOG_LEVEL", "warn"),

		Image:         getEnv("PARKSPOT_IMAGE", "image.png"),
		DebugImage:    getEnv("PARKSPOT_DEBUG_IMAGE", ""),
		DebugSpots:    getEnv("PARKSPOT_DEBUG_SPOTS", ""),
		FreeColor:     getEnv("PARKSPOT_DEBUG_FREE_COLOR", "#00FF00"),
		OccupiedColor: getEnv("PARKSPOT_DEBUG_OCCUPIED_COLOR", "#FF0000"),
		SimImage:      getEnv("PARKSPOT_SIM_IMAGE", "parkLot.jpg"),
		SimStore:      strings.ToLower(getEnv("PARKSPOT_SIM_STORE", "file")),
		SimIndex:      getEnv("PARKSPOT_SIM_INDEX", simulation.DefaultIndexFile),
		SimDatabase:   getEnv("PARKSPOT_SIM_DB", simulation.DefaultDatabaseFile),

		TuneImage:  getEnv("PARKSPOT_TUNE_IMAGE", "parkLot.jpg"),
		TuneReport: getEnv("PARKSPOT_TUNE_REPORT", tuning.DefaultReportFile),
		TuneMask:   getEnv("PARKSPOT_TUNE_MASK", ""),
		TuneGrid: tuning.Grid{
			Width:   getEnvAsInt("PARKSPOT_TUNE_WIDTH", grid.Width),
			Columns: getEnvAsInt("PARKSPOT_TUNE_COLUMNS", grid.Columns),
			Y:       getEnvAsInt("PARKSPOT_TUNE_Y", grid.Y),
			Height:  getEnvAsInt("PARKSPOT_TUNE_HEIGHT", grid.Height),
		},
	}, nil
}

// LoadEnvFile loads variables from a dotenv file without overriding the
// environment. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.Wrapf(err, "failed to load env file %s", path)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intValue
		}
	}
	return defaultValue
}
