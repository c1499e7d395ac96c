package store

import (
	"context"
	"errors"

	"game-catalog/internal/domain/catalog"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Store is the catalog's only gateway to the database. Every write runs in
// its own transaction, so existence and uniqueness checks see the same
// snapshot as the write that follows them.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) transaction(ctx context.Context, operation string, fn func(tx *gorm.DB) error) error {
	err := s.db.WithContext(ctx).Transaction(fn)
	logUnexpected(err, operation)
	return err
}

func (s *Store) read(ctx context.Context, operation string, fn func(db *gorm.DB) error) error {
	err := fn(s.db.WithContext(ctx))
	logUnexpected(err, operation)
	return err
}

func logUnexpected(err error, operation string) {
	var dbErr *catalog.DatabaseError
	if errors.As(err, &dbErr) {
		log.Error().Err(dbErr.Inner).Str("operation", operation).Msg("catalog store failure")
	}
}

func validID(entity string, id uint) error {
	if id == 0 {
		return catalog.InvalidArgument("%s id must be positive", entity)
	}
	return nil
}

func validYear(year int) error {
	if year <= 0 {
		return catalog.InvalidArgument("year must be positive, got %d", year)
	}
	return nil
}
