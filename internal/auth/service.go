package auth

import (
	"errors"
	"fmt"

	"roost-backend/internal/database"
	"roost-backend/internal/models"
)

var (
	ErrMissingFields = errors.New("name, email and password are required")
	ErrWrongPassword = errors.New("password not correct")
)

// Service handles registration and login
type Service struct {
	users  *database.UserRepo
	tokens *TokenService
}

// NewService creates a new auth service
func NewService(users *database.UserRepo, tokens *TokenService) *Service {
	return &Service{users: users, tokens: tokens}
}

// Tokens exposes the token service for middleware wiring.
func (s *Service) Tokens() *TokenService {
	return s.tokens
}

// Register validates the request, hashes the password and persists the
// user. Returns database.ErrEmailTaken on a duplicate email.
func (s *Service) Register(req models.RegisterRequest) (*models.User, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, ErrMissingFields
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates by email and password and issues a session token.
// An unknown email returns database.ErrUserNotFound; a bad password
// returns ErrWrongPassword. The two are deliberately distinct, matching
// the platform's public login contract.
func (s *Service) Login(req models.LoginRequest) (*models.User, string, error) {
	user, err := s.users.GetByEmail(req.Email)
	if err != nil {
		return nil, "", err
	}

	if !CheckPassword(req.Password, user.PasswordHash) {
		return nil, "", ErrWrongPassword
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("issuing token: %w", err)
	}

	return user, token, nil
}
