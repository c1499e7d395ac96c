package store

import (
	"context"
	"fmt"
	"strings"

	"game-catalog/internal/domain/catalog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListGames returns every game with its developer, genre and platform names,
// ordered by id.
func (s *Store) ListGames(ctx context.Context) ([]catalog.GameView, error) {
	rows := make([]catalog.GameView, 0)
	err := s.read(ctx, "list games", func(db *gorm.DB) error {
		return catalog.WrapError(
			gameViewQuery(db).Order("games.id ASC").Scan(&rows).Error,
			"game", "list games", "",
		)
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) GetGame(ctx context.Context, id uint) (catalog.GameView, error) {
	if err := validID("game", id); err != nil {
		return catalog.GameView{}, err
	}

	var view catalog.GameView
	err := s.read(ctx, "get game", func(db *gorm.DB) error {
		var err error
		view, err = getGameView(db, id)
		return err
	})
	return view, err
}

func getGameView(db *gorm.DB, id uint) (catalog.GameView, error) {
	var rows []catalog.GameView
	if err := gameViewQuery(db).Where("games.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return catalog.GameView{}, catalog.WrapError(err, "game", "get game", fmt.Sprintf("id=%d", id))
	}
	if len(rows) == 0 {
		return catalog.GameView{}, catalog.NotFound("game", "id=%d", id)
	}
	return rows[0], nil
}

// CreateGame resolves the platform, checks (title, platform) is free, then
// resolves developer and genre, then validates the title and parses the
// release date, in that order.
// Nothing is written unless every step succeeds.
func (s *Store) CreateGame(ctx context.Context, in catalog.NewGame) (catalog.GameView, error) {
	var view catalog.GameView
	err := s.transaction(ctx, "create game", func(tx *gorm.DB) error {
		platform, err := s.Platforms().findByName(tx, in.Platform)
		if err != nil {
			return err
		}

		var taken int64
		if err := tx.Model(&catalog.Game{}).
			Where("title = ? AND platform_id = ?", in.Title, platform.ID).
			Count(&taken).Error; err != nil {
			return catalog.WrapError(err, "game", "check game title", fmt.Sprintf("title=%q", in.Title))
		}
		if taken > 0 {
			return catalog.Conflict("game", "title=%q platform=%q", in.Title, in.Platform)
		}

		developer, err := s.Developers().findByName(tx, in.Developer)
		if err != nil {
			return err
		}
		genre, err := s.Genres().findByName(tx, in.Genre)
		if err != nil {
			return err
		}

		if strings.TrimSpace(in.Title) == "" {
			return catalog.InvalidArgument("title must not be empty")
		}

		released, err := catalog.ParseReleaseDate(in.ReleaseDate)
		if err != nil {
			return err
		}

		game := catalog.Game{
			Title:         in.Title,
			ReleaseDate:   released,
			Description:   in.Description,
			GameplayModes: in.GameplayModes,
			ImageURL:      in.ImageURL,
			DeveloperID:   developer.ID,
			GenreID:       genre.ID,
			PlatformID:    platform.ID,
		}
		if err := tx.Omit(clause.Associations).Create(&game).Error; err != nil {
			return catalog.WrapError(err, "game", "create game",
				fmt.Sprintf("title=%q platform=%q", in.Title, in.Platform))
		}

		view, err = getGameView(tx, game.ID)
		return err
	})
	if err != nil {
		return catalog.GameView{}, err
	}
	return view, nil
}

// UpdateGame changes only title, description, gameplay modes and image url.
// Developer, genre, platform and release date are fixed at creation.
func (s *Store) UpdateGame(ctx context.Context, id uint, patch catalog.GamePatch) (catalog.GameView, error) {
	if err := validID("game", id); err != nil {
		return catalog.GameView{}, err
	}
	if patch.Empty() {
		return catalog.GameView{}, catalog.InvalidArgument("nothing to update")
	}
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return catalog.GameView{}, catalog.InvalidArgument("title must not be empty")
	}

	details := fmt.Sprintf("id=%d", id)
	var view catalog.GameView
	err := s.transaction(ctx, "update game", func(tx *gorm.DB) error {
		var game catalog.Game
		if err := tx.Where("id = ?", id).Take(&game).Error; err != nil {
			return catalog.WrapError(err, "game", "update game", details)
		}

		updates := map[string]interface{}{}
		if patch.Title != nil {
			if *patch.Title != game.Title {
				var taken int64
				if err := tx.Model(&catalog.Game{}).
					Where("title = ? AND platform_id = ? AND id <> ?", *patch.Title, game.PlatformID, id).
					Count(&taken).Error; err != nil {
					return catalog.WrapError(err, "game", "check game title", details)
				}
				if taken > 0 {
					return catalog.Conflict("game", "title=%q platform_id=%d", *patch.Title, game.PlatformID)
				}
			}
			updates["title"] = *patch.Title
		}
		if patch.Description != nil {
			updates["description"] = *patch.Description
		}
		if patch.GameplayModes != nil {
			updates["gameplay_modes"] = *patch.GameplayModes
		}
		if patch.ImageURL != nil {
			updates["image_url"] = *patch.ImageURL
		}

		if err := tx.Model(&game).Updates(updates).Error; err != nil {
			return catalog.WrapError(err, "game", "update game", details)
		}

		var err error
		view, err = getGameView(tx, id)
		return err
	})
	if err != nil {
		return catalog.GameView{}, err
	}
	return view, nil
}

// DeleteGame removes the game and its pricing and sales rows.
func (s *Store) DeleteGame(ctx context.Context, id uint) error {
	if err := validID("game", id); err != nil {
		return err
	}

	details := fmt.Sprintf("id=%d", id)
	return s.transaction(ctx, "delete game", func(tx *gorm.DB) error {
		n, err := deleteGamesWhere(tx, "id", id)
		if err != nil {
			return catalog.WrapError(err, "game", "delete game", details)
		}
		if n == 0 {
			return catalog.NotFound("game", "%s", details)
		}
		return nil
	})
}
