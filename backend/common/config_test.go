package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetDBConfig(t *testing.T) {
	t.Helper()
	for _, key := range []string{"SQL_DSN", "DB_HOST", "DB_NAME", "DB_USER", "DB_PASS"} {
		t.Setenv(key, "")
	}
	originalHost, originalName := DBHost, DBName
	originalUser, originalPass := DBUser, DBPass
	originalEnabled := MySQLEnabled
	originalSQLitePath := SQLitePath
	MySQLEnabled = false
	t.Cleanup(func() {
		DBHost, DBName = originalHost, originalName
		DBUser, DBPass = originalUser, originalPass
		MySQLEnabled = originalEnabled
		SQLitePath = originalSQLitePath
	})
}

func TestUsingMySQLDefaultsToSQLite(t *testing.T) {
	resetDBConfig(t)

	assert.False(t, UsingMySQL())
}

// Credentials supplied only through the config file must select MySQL too,
// not just DB_* environment variables.
func TestApplyConfigMapMySQLCredentials(t *testing.T) {
	resetDBConfig(t)

	err := applyConfigMap(map[string]string{
		"DB_HOST": "db.internal",
		"DB_NAME": "docs",
		"DB_USER": "writer",
		"DB_PASS": "secret",
	})
	assert.NoError(t, err)
	assert.Equal(t, "db.internal", DBHost)
	assert.Equal(t, "docs", DBName)
	assert.Equal(t, "writer", DBUser)
	assert.Equal(t, "secret", DBPass)
	assert.True(t, UsingMySQL())
}

func TestApplyConfigMapWithoutCredentials(t *testing.T) {
	resetDBConfig(t)

	err := applyConfigMap(map[string]string{"SQLITE_PATH": "data/test.db"})
	assert.NoError(t, err)
	assert.False(t, UsingMySQL())
}

func TestApplyEnvUserAndPassSelectMySQL(t *testing.T) {
	resetDBConfig(t)
	t.Setenv("DB_USER", "writer")
	t.Setenv("DB_PASS", "secret")

	applyEnv()
	assert.Equal(t, "writer", DBUser)
	assert.Equal(t, "secret", DBPass)
	assert.True(t, UsingMySQL())
}
