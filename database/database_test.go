package database

import (
	"path/filepath"
	"testing"

	"game-catalog/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteDSN(t *testing.T) {
	tests := map[string]string{
		"":                                  "file::memory:?_pragma=foreign_keys(1)",
		":memory:":                          "file::memory:?_pragma=foreign_keys(1)",
		"sqlite::memory:":                   "file::memory:?_pragma=foreign_keys(1)",
		"sqlite:data/catalog.db":            "data/catalog.db?_pragma=foreign_keys(1)",
		"sqlite://data/catalog.db":          "data/catalog.db?_pragma=foreign_keys(1)",
		"file:catalog.db?cache=shared":      "file:catalog.db?cache=shared&_pragma=foreign_keys(1)",
		"file:x.db?_pragma=foreign_keys(1)": "file:x.db?_pragma=foreign_keys(1)",
	}
	for in, want := range tests {
		assert.Equal(t, want, sqliteDSN(in), "dsn %q", in)
	}
}

func TestOpenAndMigrateCreatesTables(t *testing.T) {
	db, err := OpenAndMigrate("sqlite:"+filepath.Join(t.TempDir(), "catalog.db"), false)
	require.NoError(t, err)

	for _, table := range []string{"developers", "genres", "platforms", "games", "prices", "sales"} {
		assert.True(t, db.Migrator().HasTable(table), "table %s", table)
	}
	assert.True(t, db.Migrator().HasIndex(&catalog.Game{}, "idx_games_title_platform"))
	assert.True(t, db.Migrator().HasIndex(&catalog.Developer{}, "idx_developers_name"))

	// migrating twice is harmless
	require.NoError(t, Migrate(db))
}

func TestOpenEnablesForeignKeys(t *testing.T) {
	db, err := Open(":memory:", false)
	require.NoError(t, err)

	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)
}

func TestForeignKeysSurviveReconnect(t *testing.T) {
	db, err := Open("sqlite:"+filepath.Join(t.TempDir(), "catalog.db"), false)
	require.NoError(t, err)

	// drop the pooled connection so the next query dials a fresh one
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(0)
	sqlDB.SetMaxIdleConns(2)

	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)
}
