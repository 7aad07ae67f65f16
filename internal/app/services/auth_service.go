package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/emre/acadrecords/internal/app/models/dto"
	"github.com/emre/acadrecords/internal/app/repositories"
	"github.com/emre/acadrecords/internal/pkg/apperrors"
	"github.com/emre/acadrecords/internal/pkg/auth"
	"github.com/emre/acadrecords/internal/pkg/logger"
)

// AuthService authenticates operator accounts and issues access tokens
type AuthService struct {
	userRepo   repositories.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo repositories.UserRepository, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login verifies credentials and returns a signed access token. An unknown
// username and a wrong password both come back as invalid credentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.NewStorageError(fmt.Sprintf("error retrieving user: %v", err))
	}

	if !auth.CheckPassword(user.Password, password) {
		logger.Warn().Str("username", username).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info().Str("username", username).Str("role", string(user.RoleType)).Msg("User logged in")
	return &dto.LoginResponse{
		AccessToken: token,
		ExpiresIn:   expiresIn,
		Username:    user.Username,
		RoleType:    string(user.RoleType),
	}, nil
}
