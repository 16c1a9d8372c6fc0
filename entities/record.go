package entities

// Record is implemented by every table-backed entity. The id accessors let
// generic code strip caller-supplied ids before writes and restore the
// store-assigned id afterwards.
type Record interface {
	GetID() int64
	SetID(id int64)
	Validate() error
}

// RecordOf constrains a type parameter to entity types whose pointer
// implements Record.
type RecordOf[T any] interface {
	*T
	Record
}
