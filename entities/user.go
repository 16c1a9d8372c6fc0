package entities

import "fmt"

// User represents an account in the content management system. Password holds
// a bcrypt hash once the record has been persisted; plaintext only exists on
// the inbound request.
type User struct {
	ID          int64   `gorm:"primaryKey" json:"id"`
	UserID      string  `gorm:"column:user_id" json:"user_id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Password    string  `json:"password"`
	Preferences JSONMap `gorm:"type:jsonb" json:"preferences"`
}

func (User) TableName() string { return "users" }

func (u *User) GetID() int64   { return u.ID }
func (u *User) SetID(id int64) { u.ID = id }

// Validate checks every required field except password, which is only
// mandatory on create and is checked by the user use case.
func (u *User) Validate() error {
	if u.UserID == "" {
		return fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	if u.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if u.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	return nil
}
