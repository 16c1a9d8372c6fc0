package usecases

import (
	"content-server/entities"
	"content-server/repositories"
)

// CrudUseCase binds one record kind to the five canonical operations. T is
// the entity type, PT its pointer type carrying the Record methods.
type CrudUseCase[T any, PT entities.RecordOf[T]] struct {
	Repo repositories.CrudRepository[T]
}

func NewCrudUseCase[T any, PT entities.RecordOf[T]](repo repositories.CrudRepository[T]) *CrudUseCase[T, PT] {
	return &CrudUseCase[T, PT]{Repo: repo}
}

// Create validates rec, discards any caller-supplied id, and inserts. The
// store-assigned id is filled into rec on return.
func (uc *CrudUseCase[T, PT]) Create(rec *T) error {
	if err := PT(rec).Validate(); err != nil {
		return err
	}
	PT(rec).SetID(0)
	return uc.Repo.Create(rec)
}

func (uc *CrudUseCase[T, PT]) GetAll() ([]T, error) {
	recs, err := uc.Repo.GetAll()
	if recs == nil {
		recs = []T{}
	}
	return recs, err
}

func (uc *CrudUseCase[T, PT]) Get(id int64) (*T, error) {
	return uc.Repo.GetByID(id)
}

// Update replaces every field except id and returns the stored row. A write
// against a missing id surfaces entities.ErrNotFound from the read-back.
func (uc *CrudUseCase[T, PT]) Update(id int64, rec *T) (*T, error) {
	if err := PT(rec).Validate(); err != nil {
		return nil, err
	}
	PT(rec).SetID(0)
	if err := uc.Repo.UpdateByID(id, rec); err != nil {
		return nil, err
	}
	return uc.Repo.GetByID(id)
}

// Delete is idempotent: removing an id that was never created is a success.
func (uc *CrudUseCase[T, PT]) Delete(id int64) error {
	return uc.Repo.DeleteByID(id)
}
