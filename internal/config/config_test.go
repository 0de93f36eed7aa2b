package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("parses the yaml file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte(`
api:
  environment: "test"
  base_url: "localhost"
  port: "8080"
  jwt_signing_key: "test-signing-key"
  allowed_cors_domains: "http://localhost:3000"
gin:
  mode: "test"
postgres:
  host: "localhost"
  port: "5432"
  user: "postgres"
  password: "postgres"
  db_name: "eventpass"
  sslmode: "disable"
`), 0o600))

		conf, err := Load(path)
		require.NoError(t, err)

		require.NotNil(t, conf.API)
		assert.Equal(t, "test", conf.API.Environment)
		assert.Equal(t, "8080", conf.API.Port)
		assert.Equal(t, "test-signing-key", conf.API.JWTSigningKey)

		require.NotNil(t, conf.Gin)
		assert.Equal(t, "test", conf.Gin.Mode)

		require.NotNil(t, conf.Postgres)
		assert.Equal(t, "eventpass", conf.Postgres.DBName)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
		assert.Error(t, err)
	})
}
