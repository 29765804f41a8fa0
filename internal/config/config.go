package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Store backends the lookup engine can run against.
const (
	BackendPostgres = "postgres"
	BackendDynamo   = "dynamo"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort        string
	AppEnv         string
	AllowedOrigins []string // CORS allowed origins

	Backend            string `validate:"oneof=postgres dynamo"`
	DatabaseURL        string
	DatabaseServiceURL string // elevated read credentials, preferred when set

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string

	LookupTimeout time.Duration `validate:"gt=0"`

	Verification VerificationConfig
}

// VerificationConfig is the operator-supplied schema hypothesis. All lists
// default to empty; the candidate registry only uses it when both Table and
// at least one token column are present.
type VerificationConfig struct {
	Table              string
	TokenColumns       []string
	StatusColumns      []string
	ExpiryColumns      []string
	RevokedAtColumns   []string
	SuspendedAtColumns []string
	ActiveColumns      []string
	ApprovedAtColumns  []string
	IDColumns          []string
	ApprovedValues     []string
	RevokedValues      []string
	SuspendedValues    []string
}

// ServiceRoleConfigured reports whether elevated read credentials are
// available for the selected backend. It only ever influences the failure
// reason hint and the usingServiceRole response field, never the lookup path.
func (c *Config) ServiceRoleConfigured() bool {
	if c.Backend == BackendDynamo {
		return c.AWSAccessKeyID != ""
	}
	return c.DatabaseServiceURL != ""
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort:        getEnv("APP_PORT", "3000"),
		AppEnv:         getEnv("APP_ENV", "development"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),

		Backend:            getEnv("VERIFICATION_BACKEND", BackendPostgres),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		DatabaseServiceURL: getEnv("DATABASE_SERVICE_URL", ""),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),

		LookupTimeout: time.Duration(getEnvInt("VERIFICATION_LOOKUP_TIMEOUT_MS", 3000)) * time.Millisecond,

		Verification: VerificationConfig{
			Table:              getEnv("VERIFICATION_TABLE", ""),
			TokenColumns:       getEnvList("VERIFICATION_TOKEN_COLUMNS", "VERIFICATION_TOKEN_COLUMN"),
			StatusColumns:      getEnvList("VERIFICATION_STATUS_COLUMNS", "VERIFICATION_STATUS_COLUMN"),
			ExpiryColumns:      getEnvList("VERIFICATION_EXPIRES_AT_COLUMNS", "VERIFICATION_EXPIRES_AT_COLUMN"),
			RevokedAtColumns:   getEnvList("VERIFICATION_REVOKED_AT_COLUMNS", "VERIFICATION_REVOKED_AT_COLUMN"),
			SuspendedAtColumns: getEnvList("VERIFICATION_SUSPENDED_AT_COLUMNS", "VERIFICATION_SUSPENDED_AT_COLUMN"),
			ActiveColumns:      getEnvList("VERIFICATION_ACTIVE_COLUMNS", "VERIFICATION_ACTIVE_COLUMN"),
			ApprovedAtColumns:  getEnvList("VERIFICATION_APPROVED_AT_COLUMNS", "VERIFICATION_APPROVED_AT_COLUMN"),
			IDColumns:          getEnvList("VERIFICATION_ID_COLUMNS", "VERIFICATION_ID_COLUMN"),
			ApprovedValues:     getEnvList("VERIFICATION_APPROVED_VALUES"),
			RevokedValues:      getEnvList("VERIFICATION_REVOKED_VALUES"),
			SuspendedValues:    getEnvList("VERIFICATION_SUSPENDED_VALUES"),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// getEnvList reads the first set key among keys as a comma-separated list,
// trimming whitespace and dropping empty entries. Both plural and singular
// key spellings are accepted (plural checked first).
func getEnvList(keys ...string) []string {
	for _, key := range keys {
		v := os.Getenv(key)
		if v == "" {
			continue
		}
		var out []string
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return nil
}
