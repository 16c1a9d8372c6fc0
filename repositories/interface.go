package repositories

// CrudRepository is the table-scoped store gateway shared by every record
// kind. The table is resolved from T's gorm TableName.
type CrudRepository[T any] interface {
	Create(rec *T) error
	GetAll() ([]T, error)
	GetByID(id int64) (*T, error)
	UpdateByID(id int64, rec *T, omitColumns ...string) error
	DeleteByID(id int64) error
}
