package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath       string
	UploadsDir   string
	ResultsDir   string
	PatternsPath string

	ListenAddr string

	// OCR supplementation kicks in when the vector text of the whole
	// document is shorter than OCRCharThreshold characters.
	OCRCharThreshold int
	OCRLanguages     string
	OCREnabled       bool

	// FittingsWindow is the number of lines searched on each side of a
	// fitting keyword for an associated size token.
	FittingsWindow int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		DBPath:       getEnv("DB_PATH", filepath.Join(cwd, "data", "app.db")),
		UploadsDir:   getEnv("UPLOADS_DIR", filepath.Join(cwd, "uploads")),
		ResultsDir:   getEnv("RESULTS_DIR", filepath.Join(cwd, "results")),
		PatternsPath: getEnv("PATTERNS_PATH", filepath.Join(cwd, "patterns.yaml")),

		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),

		OCRCharThreshold: getEnvInt("OCR_CHAR_THRESHOLD", 500),
		OCRLanguages:     getEnv("OCR_LANGUAGES", "eng+pol"),
		OCREnabled:       getEnvBool("OCR_ENABLED", true),

		FittingsWindow: getEnvInt("FITTINGS_WINDOW", 1),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	switch getEnv(key, "") {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return fallback
}
