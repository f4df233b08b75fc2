package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"contactbox/internal/models"
	"contactbox/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	// bcryptCost matches the work factor used when the user table was seeded.
	bcryptCost = 10
	tokenTTL   = time.Hour
)

// AuthService handles password hashing, credential checks and JWT issuance
type AuthService interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	GenerateToken(user *models.User) (string, error)
}

// SessionClaims are the JWT claims issued on login.
type SessionClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// LoginResult carries the signed token and the public user projection.
type LoginResult struct {
	Token string             `json:"token"`
	User  *models.PublicUser `json:"user"`
}

type authService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
}

func NewAuthService(userRepo repositories.UserRepository, jwtSecret string) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
	}
}

// Login verifies the credentials and issues a session token. Unknown
// email and wrong password both surface as ErrInvalidCredentials.
func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &LoginResult{
		Token: token,
		User:  user.Public(),
	}, nil
}

// Register hashes the password and stores a new user.
func (s *authService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// GenerateToken signs an HS256 session token carrying {id, email, name}
// with a one hour expiry.
func (s *authService) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
