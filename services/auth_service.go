package services

import (
	"context"
	"errors"

	"orderalone/logger"
	"orderalone/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores everything past 72 bytes, so longer passwords are refused.
const maxPasswordBytes = 72

type AuthService struct {
	users  UserRepository
	tokens *TokenManager
}

func NewAuthService(users UserRepository, tokens *TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

type SignupRequest struct {
	Name      string `json:"name" binding:"required"`
	AccountID string `json:"account_id" binding:"required"`
	Password  string `json:"password" binding:"required,min=4"`
}

type LoginRequest struct {
	AccountID string `json:"account_id" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type AuthResponse struct {
	User             *models.User `json:"user,omitempty"`
	AccessToken      string       `json:"access_token"`
	RefreshToken     string       `json:"refresh_token,omitempty"`
	TokenType        string       `json:"token_type"`
	ExpiresInMinutes int          `json:"expires_in_minutes"`
}

func (s *AuthService) Signup(ctx context.Context, req *SignupRequest) (*AuthResponse, error) {
	if len(req.Password) > maxPasswordBytes {
		return nil, ErrPasswordTooLong
	}

	if _, err := s.users.FindByAccountID(ctx, req.AccountID); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		AccountID: req.AccountID,
		Name:      req.Name,
		Password:  string(hashed),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Log.Info("user signed up", zap.Uint("user_id", user.ID), zap.String("account_id", user.AccountID))
	return s.issue(user, true)
}

func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if len(req.Password) > maxPasswordBytes {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.FindByAccountID(ctx, req.AccountID)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issue(user, true)
}

// Refresh trades a refresh token for a new access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	claims, err := s.tokens.Parse(refreshToken, RefreshToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	return s.issue(user, false)
}

func (s *AuthService) Profile(ctx context.Context, userID uint) (*models.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) issue(user *models.User, withRefresh bool) (*AuthResponse, error) {
	access, err := s.tokens.Issue(user, AccessToken)
	if err != nil {
		return nil, err
	}

	resp := &AuthResponse{
		AccessToken:      access,
		TokenType:        "bearer",
		ExpiresInMinutes: int(s.tokens.AccessTTL().Minutes()),
	}
	if withRefresh {
		refresh, err := s.tokens.Issue(user, RefreshToken)
		if err != nil {
			return nil, err
		}
		resp.User = user
		resp.RefreshToken = refresh
	}
	return resp, nil
}
