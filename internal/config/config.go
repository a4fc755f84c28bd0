package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	StorageMemory   = "memory"
	StorageDisk     = "disk"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
	StorageMongo    = "mongo"
)

type Config struct {
	Environment string // ENV: production, development, etc.
	Port        string
	Host        string // Raw HOST env (e.g. https://api.mindjournal.com)
	AllowedHost string // Hostname only for strict host check (production only)
	TrustProxy  bool   // honour X-Forwarded-For when resolving client IPs
	FrontendURL string
	// CORS: from ALLOWED_ORIGINS or FRONTEND_URL(s); must include production frontend origin
	AllowedOrigins []string

	StorageDriver string
	DataDir       string
	MongoURI      string
	PostgresURI   string
	RedisURI      string
	EncryptionKey string // base64 AES-256 key; when set every stored value is sealed

	Timezone           string
	SessionTTL         time.Duration
	SuperAdminPassword string
	LogLevel           string

	CloudinaryName      string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
}

func Load() *Config {
	env := strings.ToLower(strings.TrimSpace(getEnv("ENV", "development")))
	host := getEnv("HOST", "http://localhost:8080")

	// AllowedHost is only set in production; host check is skipped in development
	var allowedHost string
	if env == "production" {
		allowedHost = hostname(host)
	}

	return &Config{
		Environment:    env,
		Port:           getEnv("PORT", "8080"),
		Host:           host,
		AllowedHost:    allowedHost,
		TrustProxy:     getEnvBool("TRUST_PROXY", false),
		FrontendURL:    getEnv("FRONTEND_URL", "http://localhost:3000"),
		AllowedOrigins: allowedOrigins(host),

		StorageDriver: strings.ToLower(strings.TrimSpace(getEnv("STORAGE_DRIVER", StorageMemory))),
		DataDir:       getEnv("DATA_DIR", "./data"),
		MongoURI:      getEnv("MONGODB_URI", getEnv("MONGO_URI", "mongodb://localhost:27017/mindjournal")),
		PostgresURI:   getEnv("POSTGRES_URI", "postgres://localhost:5432/mindjournal?sslmode=disable"),
		RedisURI:      getEnv("REDIS_URI", "redis://localhost:6379/0"),
		EncryptionKey: getEnv("ENCRYPTION_KEY", ""),

		Timezone:           getEnv("TIMEZONE", "UTC"),
		SessionTTL:         getEnvDuration("SESSION_TTL", 7*24*time.Hour),
		SuperAdminPassword: getEnv("SUPERADMIN_PASSWORD", "Admin@123"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),

		CloudinaryName:      getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
	}
}

// allowedOrigins reads ALLOWED_ORIGINS, falling back to FRONTEND_URL(s). When
// HOST is a backend subdomain (api.example.com) the apex and www origins of
// its domain are added so preflight works even without explicit config.
func allowedOrigins(host string) []string {
	origins := parseOrigins(getEnv("ALLOWED_ORIGINS", ""))
	if len(origins) == 0 {
		for _, u := range []string{getEnv("FRONTEND_URL", "http://localhost:3000"), getEnv("FRONTEND_URL_2", ""), getEnv("FRONTEND_URL_3", "")} {
			if u = strings.TrimSpace(u); u != "" {
				origins = append(origins, u)
			}
		}
	}

	if h := hostname(host); h != "" && h != "localhost" {
		if parts := strings.Split(h, "."); len(parts) > 2 {
			domain := strings.Join(parts[1:], ".")
			for _, origin := range []string{"https://" + domain, "https://www." + domain} {
				if !containsOrigin(origins, origin) {
					origins = append(origins, origin)
				}
			}
		}
	}

	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	return origins
}

// hostname strips scheme, path and port from a HOST value.
func hostname(host string) string {
	h := strings.TrimSpace(host)
	for _, prefix := range []string{"https://", "http://"} {
		h = strings.TrimPrefix(h, prefix)
	}
	if idx := strings.Index(h, "/"); idx != -1 {
		h = h[:idx]
	}
	if idx := strings.Index(h, ":"); idx != -1 {
		h = h[:idx]
	}
	return strings.TrimSpace(h)
}

func parseOrigins(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func containsOrigin(list []string, o string) bool {
	o = strings.TrimSpace(strings.ToLower(o))
	for _, v := range list {
		if strings.TrimSpace(strings.ToLower(v)) == o {
			return true
		}
	}
	return false
}

// IsProduction returns true when ENV is set to "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// CloudinaryEnabled reports whether all three Cloudinary credentials are set.
func (c *Config) CloudinaryEnabled() bool {
	return c.CloudinaryName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

// Location resolves TIMEZONE, falling back to UTC for unknown names.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC, err
	}
	return loc, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
