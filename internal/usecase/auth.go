package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ErlanBelekov/communication-service/internal/credential"
	"github.com/ErlanBelekov/communication-service/internal/domain"
	"github.com/ErlanBelekov/communication-service/internal/metrics"
	"github.com/ErlanBelekov/communication-service/internal/repository"
	"github.com/ErlanBelekov/communication-service/internal/token"
)

// decoyArtifact is a well-formed artifact no password matches. Verifying
// against it when the email is unknown keeps both failure paths equally slow.
var decoyArtifact = strings.Repeat("A", 64)

type TokenService interface {
	IssueAccessToken(subject, email string) (token.Token, error)
	IssueRefreshToken(subject, email string) (token.Token, error)
	ValidateRefreshToken(raw string) (*token.Claims, error)
}

type AuthUsecase struct {
	users  repository.UserRepository
	hasher credential.Hasher
	tokens TokenService
	logger *slog.Logger
}

func NewAuthUsecase(users repository.UserRepository, hasher credential.Hasher, tokens TokenService, logger *slog.Logger) *AuthUsecase {
	return &AuthUsecase{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger.With("component", "auth_usecase"),
	}
}

// Login exchanges email and password for a token pair. An unknown email and a
// wrong password both yield domain.ErrInvalidCredentials.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_, _ = u.hasher.Verify(password, decoyArtifact)
			metrics.AuthAttemptsTotal.WithLabelValues("login", "invalid").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		metrics.AuthAttemptsTotal.WithLabelValues("login", "error").Inc()
		return nil, fmt.Errorf("find user: %w", err)
	}

	ok, err := u.hasher.Verify(password, user.PasswordHash)
	if err != nil {
		u.logger.ErrorContext(ctx, "stored credential is corrupt", "user_id", user.ID, "error", err)
		metrics.AuthAttemptsTotal.WithLabelValues("login", "error").Inc()
		return nil, fmt.Errorf("verify credential: %w", err)
	}
	if !ok {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "invalid").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	pair, err := u.issuePair(user.ID, user.Email)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("login", "error").Inc()
		return nil, err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("login", "success").Inc()
	return pair, nil
}

// Refresh mints a new pair for the identity embedded in a valid refresh token.
// The user record is not re-read, so a deleted user keeps refreshing until the
// refresh token itself expires.
func (u *AuthUsecase) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := u.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		u.logger.DebugContext(ctx, "refresh token rejected", "error", err)
		metrics.AuthAttemptsTotal.WithLabelValues("refresh", "invalid").Inc()
		return nil, err
	}

	pair, err := u.issuePair(claims.Subject, claims.Email)
	if err != nil {
		metrics.AuthAttemptsTotal.WithLabelValues("refresh", "error").Inc()
		return nil, err
	}
	metrics.AuthAttemptsTotal.WithLabelValues("refresh", "success").Inc()
	return pair, nil
}

func (u *AuthUsecase) issuePair(subject, email string) (*domain.TokenPair, error) {
	access, err := u.tokens.IssueAccessToken(subject, email)
	if err != nil {
		return nil, fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := u.tokens.IssueRefreshToken(subject, email)
	if err != nil {
		return nil, fmt.Errorf("issue refresh token: %w", err)
	}
	return &domain.TokenPair{
		AccessToken:           access.Value,
		AccessTokenExpiresAt:  access.ExpiresAt,
		RefreshToken:          refresh.Value,
		RefreshTokenExpiresAt: refresh.ExpiresAt,
	}, nil
}
