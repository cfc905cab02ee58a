package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Dishalex/PhotoShare/internal/config"
	"github.com/Dishalex/PhotoShare/internal/consts"
	"github.com/Dishalex/PhotoShare/internal/db"
	"github.com/Dishalex/PhotoShare/internal/logging"
	"github.com/Dishalex/PhotoShare/internal/model"
	moduledto "github.com/Dishalex/PhotoShare/internal/modules/auth/dto"
	platformservice "github.com/Dishalex/PhotoShare/internal/platform/service"
	"github.com/Dishalex/PhotoShare/internal/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 7 * 24 * time.Hour
)

// RegisterUser creates an account. The very first account becomes admin.
func (s *Service) RegisterUser(username, email, password string) (*model.User, error) {
	if !s.GetBool(consts.ConfigAllowRegister) {
		return nil, platformservice.NewForbiddenError("registration is closed")
	}

	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if ok, msg := utils.ValidateUsername(username); !ok {
		return nil, platformservice.NewValidationError(msg)
	}
	if ok, msg := utils.ValidatePassword(password); !ok {
		return nil, platformservice.NewValidationError(msg)
	}

	if _, err := s.userStore.FindByUsername(username); err == nil {
		return nil, platformservice.NewConflictError("account already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, platformservice.WrapInternalError("check username failed", err)
	}
	if _, err := s.userStore.FindByEmail(email); err == nil {
		return nil, platformservice.NewConflictError("account already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, platformservice.WrapInternalError("check email failed", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, platformservice.WrapInternalError("registration failed", err)
	}

	count, err := s.userStore.CountAll()
	if err != nil {
		return nil, platformservice.WrapInternalError("registration failed", err)
	}
	role := model.RoleUser
	if count == 0 {
		role = model.RoleAdmin
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.userStore.Create(user); err != nil {
		if db.IsDuplicateKey(err) {
			return nil, platformservice.NewConflictError("account already exists")
		}
		return nil, platformservice.WrapInternalError("registration failed", err)
	}
	logging.Info().Uint("user_id", user.ID).Str("role", string(role)).Msg("user registered")
	return user, nil
}

// LoginUser checks credentials and issues a token pair. login may be a username or an email.
func (s *Service) LoginUser(login, password string) (*moduledto.TokenResponse, error) {
	user, err := s.findByLogin(strings.TrimSpace(login))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewUnauthorizedError("invalid username or password")
		}
		return nil, platformservice.WrapInternalError("login failed", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, platformservice.NewUnauthorizedError("invalid username or password")
	}
	return s.issueTokens(user)
}

// RefreshTokens trades a refresh token for a new pair. The token must be the one stored on
// the user; a mismatch clears the stored token so a leaked one cannot be replayed.
func (s *Service) RefreshTokens(refreshToken string) (*moduledto.TokenResponse, error) {
	claims, err := utils.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, platformservice.NewUnauthorizedError("invalid refresh token")
	}

	user, err := s.userStore.FindByID(claims.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewUnauthorizedError("invalid refresh token")
		}
		return nil, platformservice.WrapInternalError("refresh failed", err)
	}
	if user.RefreshToken == "" || user.RefreshToken != refreshToken {
		if err := s.userStore.UpdateRefreshToken(user.ID, ""); err != nil {
			logging.Warn().Err(err).Uint("user_id", user.ID).Msg("failed to clear refresh token")
		}
		return nil, platformservice.NewUnauthorizedError("invalid refresh token")
	}
	return s.issueTokens(user)
}

// Logout forgets the refresh token and revokes the access token until it expires.
func (s *Service) Logout(ctx context.Context, userID uint, tokenID string, expiresAt time.Time) error {
	if err := s.userStore.UpdateRefreshToken(userID, ""); err != nil {
		return platformservice.WrapInternalError("logout failed", err)
	}
	if tokenID != "" {
		s.RevokeToken(ctx, tokenID, expiresAt)
	}
	return nil
}

func (s *Service) findByLogin(login string) (*model.User, error) {
	if strings.Contains(login, "@") {
		return s.userStore.FindByEmail(strings.ToLower(login))
	}
	return s.userStore.FindByUsername(login)
}

func (s *Service) issueTokens(user *model.User) (*moduledto.TokenResponse, error) {
	accessTTL, refreshTTL := tokenTTLs()

	access, err := utils.GenerateAccessToken(user.ID, user.Username, string(user.Role), accessTTL)
	if err != nil {
		return nil, platformservice.WrapInternalError("issue token failed", err)
	}
	refresh, err := utils.GenerateRefreshToken(user.ID, user.Username, string(user.Role), refreshTTL)
	if err != nil {
		return nil, platformservice.WrapInternalError("issue token failed", err)
	}
	if err := s.userStore.UpdateRefreshToken(user.ID, refresh); err != nil {
		return nil, platformservice.WrapInternalError("store refresh token failed", err)
	}
	return &moduledto.TokenResponse{AccessToken: access, RefreshToken: refresh, TokenType: "bearer"}, nil
}

func tokenTTLs() (time.Duration, time.Duration) {
	cfg := config.Get().JWT
	access, refresh := defaultAccessTTL, defaultRefreshTTL
	if cfg.AccessExpirationMinutes > 0 {
		access = time.Duration(cfg.AccessExpirationMinutes) * time.Minute
	}
	if cfg.RefreshExpirationDays > 0 {
		refresh = time.Duration(cfg.RefreshExpirationDays) * 24 * time.Hour
	}
	return access, refresh
}
