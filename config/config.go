package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	BaseURL string

	// Search filters, passed to the site verbatim. Range-style filters use
	// the suffix convention: "N-" at least, "-N" at most, "N" exact.
	Destinations string
	CheckIn      string
	CheckOut     string
	Category     string
	Cabins       string
	Price        string
	Year         string
	Sail         string
	BoatLength   string
	Services     string
	Sort         string
	Equipment    []string
	Cockpit      []string

	// Element wait budgets: mandatory elements abort the run on expiry,
	// optional ones fall back to an absent value.
	WaitTimeoutSec  int
	OptionalWaitSec int
	SettleDelayMs   int

	CSVOutputPath string
	ChromeBin     string

	PostgresEnabled  bool
	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		BaseURL: getEnv("BASE_URL", "https://www.boataround.com"),

		Destinations: getEnv("DESTINATIONS", "croatia"),
		CheckIn:      getEnv("CHECK_IN", "2024-05-18"),
		CheckOut:     getEnv("CHECK_OUT", "2024-05-25"),
		Category:     getEnv("CATEGORY", "sailing-yacht"),
		Cabins:       getEnv("CABINS", "3"),
		Price:        getEnv("PRICE", "-2000"),
		Year:         getEnv("YEAR", "2012-"),
		Sail:         getEnv("SAIL", "rolling-mainsail"),
		BoatLength:   getEnv("BOAT_LENGTH", ""),
		Services:     getEnv("SERVICES", "deposit-insurance"),
		Sort:         getEnv("SORT", "priceUp"),
		Equipment:    getEnvList("EQUIPMENT", nil),
		Cockpit:      getEnvList("COCKPIT", nil),

		WaitTimeoutSec:  getEnvInt("WAIT_TIMEOUT_SEC", 15),
		OptionalWaitSec: getEnvInt("OPTIONAL_WAIT_SEC", 5),
		SettleDelayMs:   getEnvInt("SETTLE_DELAY_MS", 2000),

		CSVOutputPath: getEnv("CSV_OUTPUT_PATH", "./output/boats.csv"),
		ChromeBin:     getEnv("CHROME_BIN", ""),

		PostgresEnabled:  getEnvBool("POSTGRES_ENABLED", false),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "scraper"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "scraper123"),
		PostgresDB:       getEnv("POSTGRES_DB", "boat_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
	}
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	var items []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
