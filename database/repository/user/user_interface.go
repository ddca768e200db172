package userRepo

import (
	"urbanfix/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(user *models.User) error
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByEmail retrieves a user by email.
	GetByEmail(email string) (*models.User, error)
	// GetByIDWithProjection retrieves a user by ID with a projection.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	// UpdateWithDocument patches a user document with the specified update document.
	UpdateWithDocument(id string, updateDoc bson.M) error
	// Count returns the total number of users.
	Count() (int64, error)
}
