package jsonfile

import (
	"context"

	"github.com/liderlab/assessment-system/internal/core/domain"
)

// usersDocument is the on-disk shape of users.json.
type usersDocument struct {
	Users []storedUser `json:"users"`
}

// storedUser persists the password hash, which the domain type deliberately
// excludes from JSON serialization.
type storedUser struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"`
}

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) List(_ context.Context) ([]domain.User, error) {
	doc := &usersDocument{Users: []storedUser{}}
	if err := r.store.load(usersFile, &usersDocument{Users: []storedUser{}}, doc); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(doc.Users))
	for _, su := range doc.Users {
		role := su.Role
		if role == "" {
			role = domain.RoleStandard
		}
		users = append(users, domain.User{
			ID:           su.ID,
			Email:        su.Email,
			PasswordHash: su.PasswordHash,
			Role:         role,
		})
	}
	return users, nil
}

func (r *UserRepository) Insert(_ context.Context, u *domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	doc := &usersDocument{Users: []storedUser{}}
	if err := r.store.load(usersFile, &usersDocument{Users: []storedUser{}}, doc); err != nil {
		return err
	}

	doc.Users = append(doc.Users, storedUser{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
	})
	return r.store.save(usersFile, doc)
}
