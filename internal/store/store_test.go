package store

import (
	"context"
	"testing"

	"game-catalog/database"
	"game-catalog/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := database.OpenAndMigrate(":memory:", false)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return New(db)
}

// seed creates a developer, genre and platform; an empty name skips that row.
func seed(t *testing.T, s *Store, developer, genre, platform string) {
	t.Helper()
	ctx := context.Background()
	if developer != "" {
		_, err := s.Developers().Create(ctx, developer)
		require.NoError(t, err)
	}
	if genre != "" {
		_, err := s.Genres().Create(ctx, genre)
		require.NoError(t, err)
	}
	if platform != "" {
		_, err := s.Platforms().Create(ctx, platform)
		require.NoError(t, err)
	}
}

func newGame(title, developer, genre, platform string) catalog.NewGame {
	return catalog.NewGame{
		Title:         title,
		Description:   "Open-air adventure",
		ReleaseDate:   "March/3/2017",
		GameplayModes: "Single-player",
		Developer:     developer,
		Genre:         genre,
		Platform:      platform,
	}
}

func createGame(t *testing.T, s *Store, title, platform string) catalog.GameView {
	t.Helper()
	game, err := s.CreateGame(context.Background(), newGame(title, "Nintendo", "Adventure", platform))
	require.NoError(t, err)
	return game
}

func countRows(t *testing.T, s *Store, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, s.db.Table(table).Count(&n).Error)
	return n
}

func TestStore_MissingGameLookups(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.GetGame(ctx, 42)
	var notFound *catalog.NotFoundError
	assert.ErrorAs(t, err, &notFound)

	_, err = s.GetGame(ctx, 0)
	var invalid *catalog.InvalidArgumentError
	assert.ErrorAs(t, err, &invalid)

	games, err := s.ListGames(ctx)
	require.NoError(t, err)
	assert.NotNil(t, games)
	assert.Empty(t, games)
}
