package usecases

import (
	"fmt"

	"content-server/entities"
	"content-server/repositories"

	"golang.org/x/crypto/bcrypt"
)

// UserUseCase mirrors the generic CRUD operations for the users table but
// bcrypt-hashes passwords on the way in.
type UserUseCase struct {
	Repo repositories.CrudRepository[entities.User]
}

func NewUserUseCase(repo repositories.CrudRepository[entities.User]) *UserUseCase {
	return &UserUseCase{Repo: repo}
}

// Create inserts a new user, replacing the plaintext password with its hash.
// The stored record (hash included) is filled back into user.
func (uc *UserUseCase) Create(user *entities.User) error {
	if err := user.Validate(); err != nil {
		return err
	}
	if user.Password == "" {
		return fmt.Errorf("%w: password is required", entities.ErrInvalidInput)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.Password = string(hash)
	user.ID = 0
	return uc.Repo.Create(user)
}

func (uc *UserUseCase) GetAll() ([]entities.User, error) {
	users, err := uc.Repo.GetAll()
	if users == nil {
		users = []entities.User{}
	}
	return users, err
}

func (uc *UserUseCase) Get(id int64) (*entities.User, error) {
	return uc.Repo.GetByID(id)
}

// Update replaces the user's fields. A supplied password is hashed before the
// write; an empty password leaves the stored hash untouched.
func (uc *UserUseCase) Update(id int64, user *entities.User) (*entities.User, error) {
	if err := user.Validate(); err != nil {
		return nil, err
	}

	var omit []string
	if user.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.Password = string(hash)
	} else {
		omit = append(omit, "password")
	}

	user.ID = 0
	if err := uc.Repo.UpdateByID(id, user, omit...); err != nil {
		return nil, err
	}
	return uc.Repo.GetByID(id)
}

func (uc *UserUseCase) Delete(id int64) error {
	return uc.Repo.DeleteByID(id)
}

// VerifyPassword reports whether the plaintext matches the stored hash for
// the given user id.
func (uc *UserUseCase) VerifyPassword(id int64, password string) error {
	user, err := uc.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return fmt.Errorf("%w: password does not match", entities.ErrInvalidInput)
	}
	return nil
}
