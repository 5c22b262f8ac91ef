package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	BaseURL           string
	PageDelay         time.Duration
	ProductDelay      time.Duration
	AIDelay           time.Duration
	OpenAIKey         string
	OpenAIModel       string
	LogLevel          slog.Level
	MetricsPort       string
	RawDataFile       string
	ProcessedDataFile string
	RedisURL          string
	DatabaseURL       string
	DataDir           string
}

func Load() *Config {
	// Try the project root first, then the current directory.
	_ = godotenv.Load("../../.env")
	_ = godotenv.Load()
	return &Config{
		BaseURL:           getEnv("BASE_URL", "https://medex.com.bd/generics?page="),
		PageDelay:         getSeconds("PAGE_SLEEP_TIME", 1.0),
		ProductDelay:      getSeconds("PRODUCT_SLEEP_TIME", 0.5),
		AIDelay:           getSeconds("AI_SLEEP_TIME", 1.0),
		OpenAIKey:         os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		LogLevel:          getLevel("LOG_LEVEL", slog.LevelInfo),
		MetricsPort:       getEnv("METRICS_PORT", "9090"),
		RawDataFile:       getEnv("RAW_DATA_FILE", "raw_medicine_data.json"),
		ProcessedDataFile: getEnv("PROCESSED_DATA_FILE", "processed_medicine_data.json"),
		RedisURL:          os.Getenv("REDIS_URL"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		DataDir:           getEnv("DATA_DIR", "data"),
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// getSeconds reads a delay expressed in (possibly fractional) seconds.
func getSeconds(k string, d float64) time.Duration {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return time.Duration(f * float64(time.Second))
		}
	}
	return time.Duration(d * float64(time.Second))
}

func getLevel(k string, d slog.Level) slog.Level {
	v := os.Getenv(k)
	if v == "" {
		return d
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(v)); err != nil {
		return d
	}
	return lvl
}
