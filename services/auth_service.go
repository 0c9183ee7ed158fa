package services

import (
	"context"
	"errors"
	"time"

	"github.com/Yaser-2004/flipkart-clone-server/apperrors"
	"github.com/Yaser-2004/flipkart-clone-server/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
}

type ITokenService interface {
	GenerateToken(userID, email string) (string, error)
}

// LoginResult is the identity summary returned alongside the credential.
type LoginResult struct {
	Token  string            `json:"token"`
	UserID uuid.UUID         `json:"uid"`
	Name   string            `json:"userName"`
	Cart   []models.CartItem `json:"cart"`
}

type AuthService struct {
	userRepo     IUserRepository
	tokenService ITokenService
}

func NewAuthService(ur IUserRepository, ts ITokenService) *AuthService {
	return &AuthService{userRepo: ur, tokenService: ts}
}

// Register creates a new user with a bcrypt-hashed password and an
// empty cart. Email uniqueness is enforced by the store's unique index.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, err)
	}

	newUser := &models.User{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Password:  string(hashedPassword),
		Cart:      []models.CartItem{},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, newUser); err != nil {
		return nil, err
	}
	return newUser, nil
}

// Login verifies the credentials and issues a session token. A missing
// user and a wrong password are distinct outcomes so clients can branch.
// Password verification always completes before the result is built.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(apperrors.ErrInvalidCredentials, err)
	}

	token, err := s.tokenService.GenerateToken(user.ID.String(), user.Email)
	if err != nil {
		return nil, apperrors.New(500, "Failed to generate token", err)
	}

	return &LoginResult{
		Token:  token,
		UserID: user.ID,
		Name:   user.Name,
		Cart:   user.Cart,
	}, nil
}
