package helper

import (
	"net/url"
	"strings"
	"testing"

	"tablebook/config"
	"tablebook/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationURLEscapesCredentials(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "dev_"
	cfg.DB.Postgres.MigrationTable = "schema_migrations"
	cfg.DB.Postgres.Write.Host = "db"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Username = "book"
	cfg.DB.Postgres.Write.Password = "p@ss/word"
	cfg.DB.Postgres.Write.Name = "tablebook"
	cfg.DB.Postgres.Write.SSLMode = "disable"

	parsed, err := url.Parse(migrationURL(cfg))
	require.NoError(t, err)

	password, _ := parsed.User.Password()
	assert.Equal(t, "p@ss/word", password)
	assert.Equal(t, "db:5432", parsed.Host)
	assert.Equal(t, "/dev_tablebook", parsed.Path)
	assert.Equal(t, "schema_migrations", parsed.Query().Get("x-migrations-table"))
	assert.Equal(t, "disable", parsed.Query().Get("sslmode"))
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := migrations.Postgres.ReadDir(migrations.PostgresDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	ups, downs := 0, 0

	for _, entry := range entries {
		switch {
		case strings.HasSuffix(entry.Name(), ".up.sql"):
			ups++
		case strings.HasSuffix(entry.Name(), ".down.sql"):
			downs++
		}
	}

	assert.Equal(t, ups, downs)
}

func TestRunRejectsUnknownAction(t *testing.T) {
	err := run(nil, "sideways")
	assert.ErrorIs(t, err, ErrUnknownAction)
}
