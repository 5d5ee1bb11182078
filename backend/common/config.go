package common

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// InitConf loads configuration in increasing priority: built-in defaults,
// the config file under ~/.config/docboard, a .env file in the working
// directory, and finally real environment variables.
func InitConf() {
	_ = godotenv.Load()
	if err := loadConfigFile(); err != nil {
		SysError("failed to load config file: " + err.Error())
	}
	applyEnv()
}

func applyEnv() {
	for _, key := range []string{"SQL_DSN", "DB_HOST", "DB_NAME", "DB_USER", "DB_PASS"} {
		if os.Getenv(key) != "" {
			MySQLEnabled = true
			break
		}
	}
	DBHost = GetEnvOrDefault("DB_HOST", DBHost)
	DBName = GetEnvOrDefault("DB_NAME", DBName)
	DBUser = GetEnvOrDefault("DB_USER", DBUser)
	DBPass = GetEnvOrDefault("DB_PASS", DBPass)
	SQLitePath = GetEnvOrDefault("SQLITE_PATH", SQLitePath)
	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		SessionSecret = secret
	}
	if portStr := os.Getenv("PORT"); portStr != "" {
		portInt, err := strconv.Atoi(portStr)
		if err != nil {
			FatalLog("invalid value for PORT: " + portStr)
		}
		*Port = portInt
	}
}

// UsingMySQL reports whether MySQL credentials were supplied, via the
// config file or the environment. Without them the store falls back to
// SQLite.
func UsingMySQL() bool {
	return os.Getenv("SQL_DSN") != "" || MySQLEnabled
}

func GetEnvOrDefault(key string, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}
