package store

import (
	"context"
	"testing"

	"game-catalog/internal/domain/catalog"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CreateAndList(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Sony", "Nintendo"} {
		_, err := s.Developers().Create(ctx, name)
		require.NoError(t, err)
	}

	rows, err := s.Developers().List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Sony", rows[0].Name)
	assert.Equal(t, "Nintendo", rows[1].Name)
	assert.Less(t, rows[0].ID, rows[1].ID)

	got, err := s.Developers().Get(ctx, rows[1].ID)
	require.NoError(t, err)
	assert.Equal(t, rows[1], got)
}

func TestRegistry_DuplicateNameConflicts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.Platforms().Create(ctx, "PlayStation")
	require.NoError(t, err)

	_, err = s.Platforms().Create(ctx, "PlayStation")
	var conflict *catalog.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "platform", conflict.Entity)

	// names are compared exactly
	_, err = s.Platforms().Create(ctx, "playstation")
	assert.NoError(t, err)

	// the same name may live in another table
	_, err = s.Genres().Create(ctx, "PlayStation")
	assert.NoError(t, err)
}

func TestRegistry_RejectsBlankName(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Genres().Create(context.Background(), "   ")
	var invalid *catalog.InvalidArgumentError
	assert.ErrorAs(t, err, &invalid)
}

func TestRegistry_Update(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.Genres().Create(ctx, "RPG")
	require.NoError(t, err)
	second, err := s.Genres().Create(ctx, "Puzzle")
	require.NoError(t, err)

	renamed, err := s.Genres().Update(ctx, first.ID, "Role-playing")
	require.NoError(t, err)
	assert.Equal(t, catalog.Reference{ID: first.ID, Name: "Role-playing"}, renamed)

	// keeping its own name is fine
	_, err = s.Genres().Update(ctx, first.ID, "Role-playing")
	assert.NoError(t, err)

	_, err = s.Genres().Update(ctx, second.ID, "Role-playing")
	var conflict *catalog.ConflictError
	assert.ErrorAs(t, err, &conflict)

	_, err = s.Genres().Update(ctx, 999, "Strategy")
	var notFound *catalog.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestRegistry_DeleteMissing(t *testing.T) {
	s := newTestStore(t)

	err := s.Developers().Delete(context.Background(), 7)
	var notFound *catalog.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestRegistry_DeleteCascadesToGamesAndLedgers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seed(t, s, "Nintendo", "Adventure", "Switch")
	_, err := s.Platforms().Create(ctx, "Wii U")
	require.NoError(t, err)

	onSwitch := createGame(t, s, "Zelda", "Switch")
	onWiiU := createGame(t, s, "Zelda", "Wii U")

	for _, g := range []catalog.GameView{onSwitch, onWiiU} {
		_, err := s.CreatePricing(ctx, g.ID, 2022, decimal.RequireFromString("59.99"))
		require.NoError(t, err)
		_, err = s.CreateSales(ctx, catalog.Sales{GameID: g.ID, Year: 2022, DigitalSales: 10, HardCopySales: 5})
		require.NoError(t, err)
	}

	require.NoError(t, s.Platforms().Delete(ctx, onSwitch.PlatformID))

	_, err = s.GetGame(ctx, onSwitch.ID)
	var notFound *catalog.NotFoundError
	assert.ErrorAs(t, err, &notFound)

	_, err = s.GetGame(ctx, onWiiU.ID)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, countRows(t, s, "prices"))
	assert.EqualValues(t, 1, countRows(t, s, "sales"))

	// deleting the developer takes the remaining game with it
	require.NoError(t, s.Developers().Delete(ctx, onWiiU.DeveloperID))
	assert.EqualValues(t, 0, countRows(t, s, "games"))
	assert.EqualValues(t, 0, countRows(t, s, "prices"))
	assert.EqualValues(t, 0, countRows(t, s, "sales"))
	assert.EqualValues(t, 1, countRows(t, s, "genres"))
}
