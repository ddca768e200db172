package user

import (
	"context"
	"time"

	userRepo "urbanfix/database/repository/user"
	"urbanfix/models"
	"urbanfix/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 72 * time.Hour

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo      userRepo.UserRepository
	AuthCache *redis.Client
}

// Register creates a customer account and signs the user in.
func (s *DefaultUserService) Register(name, email, password string) (*AuthResult, error) {
	if name == "" || email == "" || password == "" {
		return nil, utils.NewValidationError("Missing name, email or password")
	}
	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewValidationError("An account with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}
	return s.issueSession(u)
}

// Authenticate verifies credentials and issues a fresh session token.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, utils.NewValidationError("Missing email or password")
	}
	u, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, utils.NewAuthError("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, utils.NewAuthError("Invalid email or password")
	}
	return s.issueSession(u)
}

// issueSession mints a JWT, stores its hash on the user record and primes
// the auth cache so the middleware can validate without a DB round trip.
func (s *DefaultUserService) issueSession(u *models.User) (*AuthResult, error) {
	token, err := utils.GenerateToken(u.ID, string(u.Role), tokenTTL)
	if err != nil {
		return nil, err
	}
	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateWithDocument(u.ID, bson.M{"$set": bson.M{
		"tokenHash": tokenHash,
		"updatedAt": time.Now(),
	}}); err != nil {
		return nil, err
	}

	if s.AuthCache != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.AuthCache.Set(ctx, utils.AuthCachePrefix+u.ID, tokenHash, time.Hour).Err(); err != nil {
			utils.GetLogger().Warn("failed to prime auth cache", zap.String("userId", u.ID), zap.Error(err))
		}
	}

	u.PasswordHash = ""
	u.TokenHash = ""
	return &AuthResult{User: u, Token: token}, nil
}

func (s *DefaultUserService) GetByID(id string) (*models.User, error) {
	u, err := s.Repo.GetByIDWithProjection(id, bson.M{"passwordHash": 0, "tokenHash": 0})
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, utils.NewNotFoundError("User not found")
	}
	return u, nil
}
