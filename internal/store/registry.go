package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"game-catalog/internal/domain/catalog"

	"gorm.io/gorm"
)

// Registry serves one reference table: developers, genres or platforms.
type Registry struct {
	store *Store
	kind  catalog.Kind
}

func (s *Store) Registry(kind catalog.Kind) *Registry {
	return &Registry{store: s, kind: kind}
}

func (s *Store) Developers() *Registry { return s.Registry(catalog.KindDeveloper) }
func (s *Store) Genres() *Registry     { return s.Registry(catalog.KindGenre) }
func (s *Store) Platforms() *Registry  { return s.Registry(catalog.KindPlatform) }

func (r *Registry) Kind() catalog.Kind { return r.kind }

func (r *Registry) table(db *gorm.DB) *gorm.DB {
	return db.Table(r.kind.Table())
}

func (r *Registry) entity() string { return string(r.kind) }

func (r *Registry) List(ctx context.Context) ([]catalog.Reference, error) {
	rows := make([]catalog.Reference, 0)
	err := r.store.read(ctx, "list "+r.entity(), func(db *gorm.DB) error {
		return catalog.WrapError(
			r.table(db).Order("id ASC").Find(&rows).Error,
			r.entity(), "list "+r.entity(), "",
		)
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *Registry) Get(ctx context.Context, id uint) (catalog.Reference, error) {
	if err := validID(r.entity(), id); err != nil {
		return catalog.Reference{}, err
	}

	var ref catalog.Reference
	err := r.store.read(ctx, "get "+r.entity(), func(db *gorm.DB) error {
		return catalog.WrapError(
			r.table(db).Where("id = ?", id).Take(&ref).Error,
			r.entity(), "get "+r.entity(), fmt.Sprintf("id=%d", id),
		)
	})
	return ref, err
}

// Create adds a row, refusing a name that is already taken (exact,
// case-sensitive match).
func (r *Registry) Create(ctx context.Context, name string) (catalog.Reference, error) {
	if strings.TrimSpace(name) == "" {
		return catalog.Reference{}, catalog.InvalidArgument("%s name must not be empty", r.entity())
	}

	ref := catalog.Reference{Name: name}
	err := r.store.transaction(ctx, "create "+r.entity(), func(tx *gorm.DB) error {
		if _, err := r.findByName(tx, name); err == nil {
			return catalog.Conflict(r.entity(), "name=%q", name)
		} else if !isNotFound(err) {
			return err
		}

		return catalog.WrapError(
			r.table(tx).Create(&ref).Error,
			r.entity(), "create "+r.entity(), fmt.Sprintf("name=%q", name),
		)
	})
	if err != nil {
		return catalog.Reference{}, err
	}
	return ref, nil
}

func (r *Registry) Update(ctx context.Context, id uint, name string) (catalog.Reference, error) {
	if err := validID(r.entity(), id); err != nil {
		return catalog.Reference{}, err
	}
	if strings.TrimSpace(name) == "" {
		return catalog.Reference{}, catalog.InvalidArgument("%s name must not be empty", r.entity())
	}

	details := fmt.Sprintf("id=%d", id)
	var ref catalog.Reference
	err := r.store.transaction(ctx, "update "+r.entity(), func(tx *gorm.DB) error {
		if err := r.table(tx).Where("id = ?", id).Take(&ref).Error; err != nil {
			return catalog.WrapError(err, r.entity(), "update "+r.entity(), details)
		}

		if existing, err := r.findByName(tx, name); err == nil && existing.ID != id {
			return catalog.Conflict(r.entity(), "name=%q", name)
		} else if err != nil && !isNotFound(err) {
			return err
		}

		if err := r.table(tx).Where("id = ?", id).Update("name", name).Error; err != nil {
			return catalog.WrapError(err, r.entity(), "update "+r.entity(), details)
		}
		ref.Name = name
		return nil
	})
	if err != nil {
		return catalog.Reference{}, err
	}
	return ref, nil
}

// Delete removes the row and every game that references it, along with
// those games' pricing and sales.
func (r *Registry) Delete(ctx context.Context, id uint) error {
	if err := validID(r.entity(), id); err != nil {
		return err
	}

	details := fmt.Sprintf("id=%d", id)
	return r.store.transaction(ctx, "delete "+r.entity(), func(tx *gorm.DB) error {
		var ref catalog.Reference
		if err := r.table(tx).Where("id = ?", id).Take(&ref).Error; err != nil {
			return catalog.WrapError(err, r.entity(), "delete "+r.entity(), details)
		}

		if _, err := deleteGamesWhere(tx, r.kind.GameColumn(), id); err != nil {
			return catalog.WrapError(err, "game", "cascade delete "+r.entity(), details)
		}

		return catalog.WrapError(
			r.table(tx).Where("id = ?", id).Delete(&catalog.Reference{}).Error,
			r.entity(), "delete "+r.entity(), details,
		)
	})
}

func (r *Registry) findByName(tx *gorm.DB, name string) (catalog.Reference, error) {
	var ref catalog.Reference
	err := r.table(tx).Where("name = ?", name).Take(&ref).Error
	return ref, catalog.WrapError(err, r.entity(), "find "+r.entity(), fmt.Sprintf("name=%q", name))
}

func isNotFound(err error) bool {
	var notFound *catalog.NotFoundError
	return errors.As(err, &notFound)
}
