package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads the .env file if present. Missing files are fine: in that
// case every setting falls back to its default.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using defaults")
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// DatasetPath is the CSV snapshot every stage reads from.
func DatasetPath() string {
	return getEnv("DATASET_PATH", "data/raw/grades.csv")
}

// ExportDir is where batch stages write their artifacts (CSV exports,
// chart PNGs, the PDF report).
func ExportDir() string {
	return getEnv("EXPORT_DIR", "exports")
}

// APIPort is the listen port of the query API server.
func APIPort() string {
	return getEnv("PORT", "8080")
}

// DashboardPort is the listen port of the dashboard server.
func DashboardPort() string {
	return getEnv("DASHBOARD_PORT", "8081")
}
