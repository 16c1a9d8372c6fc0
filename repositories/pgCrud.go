package repositories

import (
	"errors"

	"content-server/db"
	"content-server/entities"

	"gorm.io/gorm"
)

type pgCrudRepository[T any] struct {
	db db.Database
}

func NewCrudPgRepository[T any](database db.Database) CrudRepository[T] {
	return &pgCrudRepository[T]{db: database}
}

func (r *pgCrudRepository[T]) Create(rec *T) error {
	return r.db.GetDB().Create(rec).Error
}

func (r *pgCrudRepository[T]) GetAll() ([]T, error) {
	var recs []T
	err := r.db.GetDB().Find(&recs).Error
	return recs, err
}

func (r *pgCrudRepository[T]) GetByID(id int64) (*T, error) {
	var rec T
	err := r.db.GetDB().Where("id = ?", id).First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// UpdateByID replaces every column except id (and any extra omitted columns)
// with the values in rec. Updating an id that matches no row succeeds
// vacuously; callers that need a not-found signal must look the row up.
func (r *pgCrudRepository[T]) UpdateByID(id int64, rec *T, omitColumns ...string) error {
	omit := append([]string{"id"}, omitColumns...)
	return r.db.GetDB().Model(rec).Where("id = ?", id).Select("*").Omit(omit...).Updates(rec).Error
}

// DeleteByID removes the row if present. A missing row is not an error.
func (r *pgCrudRepository[T]) DeleteByID(id int64) error {
	var rec T
	return r.db.GetDB().Where("id = ?", id).Delete(&rec).Error
}
