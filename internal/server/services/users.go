// Package services contains server-side business logic. UserService handles
// registration, login, and issuing or rotating JWT access tokens plus
// server-stored refresh tokens. EntryService owns diary entries and the AI
// features built on them.
package services

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/diarykeeper/internal/common"
	"github.com/dmitrijs2005/diarykeeper/internal/cryptox"
	"github.com/dmitrijs2005/diarykeeper/internal/server/auth"
	"github.com/dmitrijs2005/diarykeeper/internal/server/config"
	"github.com/dmitrijs2005/diarykeeper/internal/server/models"
	"github.com/dmitrijs2005/diarykeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

const minPasswordLength = 6

var (
	errBadCredentials      = common.NewError(common.ErrUnauthorized, "Invalid email or password")
	errInvalidRefreshToken = common.NewError(common.ErrUnauthorized, "Invalid refresh token")
	errRefreshTokenExpired = common.WrapError(common.ErrUnauthorized, common.ErrTokenExpired, "Refresh token expired")
)

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// UserService provides authentication-related operations:
// - Register: create users and sign them in
// - Login: verify credentials and mint tokens
// - RefreshToken: rotate refresh tokens and mint new access tokens
// - Logout: revoke a refresh token
type UserService struct {
	repos                        repomanager.RepositoryManager
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
	now                          func() time.Time
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		repos:                        m,
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
		now:                          time.Now,
	}
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", common.NewError(common.ErrValidation, "Invalid email address")
	}
	return email, nil
}

// Register creates an account and returns its first token pair.
func (s *UserService) Register(ctx context.Context, email, password, displayName string) (*TokenPair, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return nil, common.NewError(common.ErrValidation, "Password should be at least 6 characters")
	}

	salt, hash := cryptox.HashPassword([]byte(password))
	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		DisplayName:  strings.TrimSpace(displayName),
		Salt:         salt,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}

	var pair *TokenPair
	err = s.repos.WithTx(ctx, func(ctx context.Context, tx repomanager.RepositoryManager) error {
		if _, err := tx.Users().Create(ctx, user); err != nil {
			return err
		}
		var genErr error
		pair, genErr = s.generateTokenPair(ctx, tx, user)
		return genErr
	})
	if err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return nil, err
		}
		return nil, internal(err)
	}
	return pair, nil
}

// Login verifies the password and, on success, returns a new TokenPair.
// Unknown emails and wrong passwords fail the same way.
func (s *UserService) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repos.Users().GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, errBadCredentials
		}
		return nil, internal(err)
	}
	if !cryptox.VerifyPassword([]byte(password), user.Salt, user.PasswordHash) {
		return nil, errBadCredentials
	}

	pair, err := s.generateTokenPair(ctx, s.repos, user)
	if err != nil {
		return nil, internal(err)
	}
	return pair, nil
}

// RefreshToken validates a refresh token, rotates it transactionally, and
// returns a fresh TokenPair. The presented token is unusable afterwards.
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	var pair *TokenPair
	err := s.repos.WithTx(ctx, func(ctx context.Context, tx repomanager.RepositoryManager) error {
		token, err := tx.RefreshTokens().Find(ctx, refreshToken)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return errInvalidRefreshToken
			}
			return err
		}

		if err := tx.RefreshTokens().Delete(ctx, refreshToken); err != nil {
			return err
		}
		if token.Expired(s.now()) {
			return errRefreshTokenExpired
		}

		user, err := tx.Users().GetByID(ctx, token.UserID)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return errInvalidRefreshToken
			}
			return err
		}

		var genErr error
		pair, genErr = s.generateTokenPair(ctx, tx, user)
		return genErr
	})
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			return nil, err
		}
		return nil, internal(err)
	}
	return pair, nil
}

// Logout revokes refreshToken. Unknown tokens are ignored.
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	if err := s.repos.RefreshTokens().Delete(ctx, refreshToken); err != nil {
		return internal(err)
	}
	return nil
}

func (s *UserService) generateTokenPair(ctx context.Context, m repomanager.RepositoryManager, user *models.User) (*TokenPair, error) {
	access, expiresAt, err := auth.GenerateToken(auth.Principal{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
	}, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, err
	}

	refresh, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, err
	}
	if err := m.RefreshTokens().Create(ctx, user.ID, refresh, s.now().Add(s.refreshTokenValidityDuration)); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh, ExpiresAt: expiresAt}, nil
}

func internal(err error) error {
	return common.WrapError(common.ErrInternal, err, "")
}
