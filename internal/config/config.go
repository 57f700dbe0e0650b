package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

var ExportFormats = []string{"csv", "json", "cbor"}

type AppConfig struct {
	Env                Environment
	LogLevel           string
	ServerPort         string
	RawBodyLog         bool
	HttpTimeoutSeconds int
	CorsOrigins        []string
}

type PaperlessConfig struct {
	URL   string
	Token string
}

type StopWordsConfig struct {
	Language string
	File     string
}

type FrequencyConfig struct {
	KeywordsFile string
	Cap          int
}

type SatelliteConfig struct {
	CorrelationThreshold float64
	LowerBand            float64
	UpperBand            float64
	CandidateCap         int
}

type ExportConfig struct {
	OutputDir string
	Format    string
}

type Config struct {
	App       AppConfig
	Paperless PaperlessConfig
	StopWords StopWordsConfig
	Frequency FrequencyConfig
	Satellite SatelliteConfig
	Export    ExportConfig
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	appEnv := getEnv("APP_ENV", "development")
	env := parseEnvironment(appEnv)

	logLevel := getLogLevel(env)

	return &Config{
		App: AppConfig{
			Env:                env,
			LogLevel:           logLevel,
			ServerPort:         getEnv("APP_SERVER_PORT", "8080"),
			RawBodyLog:         getEnvBool("APP_RAW_BODY_LOG", false),
			HttpTimeoutSeconds: getEnvInt("APP_HTTP_TIMEOUT_SECONDS", 30),
			CorsOrigins:        getEnvList("APP_CORS_ORIGINS", []string{"http://localhost:3000"}),
		},
		Paperless: PaperlessConfig{
			URL:   getEnv("PAPERLESS_URL", ""),
			Token: getEnv("PAPERLESS_TOKEN", ""),
		},
		StopWords: StopWordsConfig{
			Language: getEnv("STOPWORDS_LANGUAGE", "russian"),
			File:     getEnv("STOPWORDS_FILE", ""),
		},
		Frequency: FrequencyConfig{
			KeywordsFile: getEnv("FREQUENCY_KEYWORDS_FILE", ""),
			Cap:          getEnvInt("FREQUENCY_CAP", 21),
		},
		Satellite: SatelliteConfig{
			CorrelationThreshold: getEnvFloat("SATELLITE_CORRELATION_THRESHOLD", 0.25),
			LowerBand:            getEnvFloat("SATELLITE_LOWER_BAND", 0.15),
			UpperBand:            getEnvFloat("SATELLITE_UPPER_BAND", 0.25),
			CandidateCap:         getEnvInt("SATELLITE_CANDIDATE_CAP", 5),
		},
		Export: ExportConfig{
			OutputDir: getEnv("EXPORT_OUTPUT_DIR", "output"),
			Format:    strings.ToLower(getEnv("EXPORT_FORMAT", "csv")),
		},
	}, nil
}

func (c *Config) Validate() error {
	if c.Frequency.Cap < 1 {
		return fmt.Errorf("FREQUENCY_CAP must be at least 1, got %d", c.Frequency.Cap)
	}
	if c.Satellite.CandidateCap < 1 {
		return fmt.Errorf("SATELLITE_CANDIDATE_CAP must be at least 1, got %d", c.Satellite.CandidateCap)
	}
	if c.Satellite.LowerBand > c.Satellite.UpperBand {
		return fmt.Errorf("SATELLITE_LOWER_BAND (%v) exceeds SATELLITE_UPPER_BAND (%v)",
			c.Satellite.LowerBand, c.Satellite.UpperBand)
	}
	if !slices.Contains(ExportFormats, c.Export.Format) {
		return fmt.Errorf("EXPORT_FORMAT must be one of %s, got %q", strings.Join(ExportFormats, ", "), c.Export.Format)
	}
	if (c.Paperless.URL == "") != (c.Paperless.Token == "") {
		return fmt.Errorf("PAPERLESS_URL and PAPERLESS_TOKEN must be set together")
	}
	return nil
}

func parseEnvironment(envStr string) Environment {
	env := Environment(strings.ToLower(envStr))

	switch env {
	case Development, Production:
		return env
	default:
		return Development
	}
}

func getLogLevel(env Environment) string {
	if env == Production {
		return getEnv("APP_LOG_LEVEL", "info")
	}

	return getEnv("APP_LOG_LEVEL", "debug")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value == "true" {
		return true
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
