package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	devBaseURL  = "http://localhost:8080"
	prodBaseURL = "https://kuckuc.rs"
)

type LogConfig struct {
	Level  string
	IsJSON bool
}

// AppConfig holds the whole console configuration.
type AppConfig struct {
	Env        string
	APIBaseURL string
	DBPath     string
	Logger     LogConfig
}

// Load reads configuration from the environment, optionally seeded from a
// .env file. A missing .env file is not an error for a desktop app.
func Load(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: could not load .env file (path: %v): %v", envPath, err)
	}

	cfg := &AppConfig{}
	cfg.Env = getEnvAsString("APP_ENV", "production")
	cfg.APIBaseURL = os.Getenv("API_BASE_URL")
	if cfg.APIBaseURL == "" {
		if cfg.Env == "development" {
			cfg.APIBaseURL = devBaseURL
		} else {
			cfg.APIBaseURL = prodBaseURL
		}
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	cfg.DBPath = getEnvAsString("DB_PATH", "data/console.db")
	cfg.Logger.Level = getEnvAsString("LOG_LEVEL", "info")
	cfg.Logger.IsJSON = getEnvAsBool("LOG_JSON", false)
	return cfg, nil
}

// APIURL joins an endpoint path onto the configured base URL.
func (c *AppConfig) APIURL(endpoint string) string {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return c.APIBaseURL + endpoint
}

// FileURL builds the public URL of an uploaded file. Static assets live in
// the /uploads URL space parallel to the API.
func (c *AppConfig) FileURL(filePath string) string {
	return c.APIBaseURL + "/uploads/" + strings.TrimLeft(filePath, "/")
}

func getEnvAsString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	switch strings.ToLower(valStr) {
	case "1", "t", "true", "yes":
		return true
	case "0", "f", "false", "no":
		return false
	default:
		log.Printf("Warning: environment variable %s (value: %s) is not a bool, using default %t", key, valStr, defaultValue)
		return defaultValue
	}
}
