package config

import (
	"os"
	"strconv"
	"strings"
)

var (
	BIND_ADDRESS      = "0.0.0.0:8080"
	TLS_DOMAINS       = "" // e.g. "example.com,example2.com"
	MYSQL_DSN         = "" // MySQL will be used if this is set
	POSTGRES_DSN      = "" // Postgres will be used if MYSQL_DSN is not configured and this is set
	SQLITE_FILE       = "blogly.db"
	DEBUG_MODE        = true
	SESSION_SECRET    = "change me in production"
	SESSION_MAX_AGE   = 30 * 86400 // 30 days
	CORS_ORIGINS      = "*"
	DEFAULT_IMAGE_URL = "https://www.freeiconspng.com/uploads/icon-user-blue-symbol-people-person-generic--public-domain--21.png"
)

func init() {
	Load()
}

// Load re-reads every setting from the environment, keeping the current value for unset ones
func Load() {
	readEnvString("BIND_ADDRESS", &BIND_ADDRESS)
	readEnvString("TLS_DOMAINS", &TLS_DOMAINS)
	readEnvString("MYSQL_DSN", &MYSQL_DSN)
	readEnvString("POSTGRES_DSN", &POSTGRES_DSN)
	readEnvString("SQLITE_FILE", &SQLITE_FILE)
	readEnvBool("DEBUG_MODE", &DEBUG_MODE)
	readEnvString("SESSION_SECRET", &SESSION_SECRET)
	readEnvInt("SESSION_MAX_AGE", &SESSION_MAX_AGE)
	readEnvString("CORS_ORIGINS", &CORS_ORIGINS)
	readEnvString("DEFAULT_IMAGE_URL", &DEFAULT_IMAGE_URL)
}

// CORSOrigins splits CORS_ORIGINS on commas
func CORSOrigins() []string {
	result := []string{}
	for _, origin := range strings.Split(CORS_ORIGINS, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}

func readEnvString(name string, value *string) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	*value = v
}

func readEnvBool(name string, value *bool) {
	v := strings.ToLower(os.Getenv(name))
	if v == "true" || v == "1" || v == "yes" || v == "on" {
		*value = true
	} else if v == "false" || v == "0" || v == "no" || v == "off" {
		*value = false
	}
}

func readEnvInt(name string, value *int) {
	v := os.Getenv(name)
	if v == "" {
		return
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*value = i
}
