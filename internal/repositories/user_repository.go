package repositories

import "loja/internal/models"

// UserRepository defines the interface for user data access. Update is
// used by the identity layer to persist lockout counters.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	Update(user *models.User) error
}
