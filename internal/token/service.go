// Package token issues and validates the service's HS256 access and refresh tokens.
package token

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/ErlanBelekov/communication-service/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const purposeRefresh = "refresh"

// Every validation failure wraps domain.ErrTokenInvalid; these name the reason.
var (
	ErrTokenExpired   = fmt.Errorf("%w: expired", domain.ErrTokenInvalid)
	ErrTokenPurpose   = fmt.Errorf("%w: wrong token purpose", domain.ErrTokenInvalid)
	ErrTokenMalformed = fmt.Errorf("%w: malformed or unverifiable", domain.ErrTokenInvalid)
)

// Config is fixed for the life of the process.
type Config struct {
	Secret     []byte
	Issuer     string
	Audience   string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// LogValue omits Secret.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("issuer", c.Issuer),
		slog.String("audience", c.Audience),
		slog.Duration("access_ttl", c.AccessTTL),
		slog.Duration("refresh_ttl", c.RefreshTTL),
	)
}

// Claims is the signed claim set. Type is "refresh" on refresh tokens and
// absent on access tokens.
type Claims struct {
	Email string `json:"email"`
	Type  string `json:"typ,omitempty"`
	jwt.RegisteredClaims
}

type Token struct {
	Value     string
	ExpiresAt time.Time
}

type Option func(*Service)

// WithClock overrides time.Now for issuing and validating.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// Service holds only immutable configuration and is safe for concurrent use.
type Service struct {
	cfg       Config
	now       func() time.Time
	parser    *jwt.Parser
	validator *jwt.Validator
}

func NewService(cfg Config, opts ...Option) (*Service, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("token: empty signing secret")
	}
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return nil, errors.New("token: lifetimes must be positive")
	}

	s := &Service{cfg: cfg, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	// Claims are validated separately in parse so the purpose check can run
	// before expiry.
	s.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	s.validator = jwt.NewValidator(
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	return s, nil
}

// IssueAccessToken signs a short-lived token for subject. Each call carries a
// fresh jti, so two calls never return the same token.
func (s *Service) IssueAccessToken(subject, email string) (Token, error) {
	return s.issue(subject, email, "", s.cfg.AccessTTL)
}

// IssueRefreshToken signs a long-lived token marked typ=refresh.
func (s *Service) IssueRefreshToken(subject, email string) (Token, error) {
	return s.issue(subject, email, purposeRefresh, s.cfg.RefreshTTL)
}

// ValidateRefreshToken accepts only unexpired refresh tokens signed by this
// service for the configured issuer and audience.
func (s *Service) ValidateRefreshToken(raw string) (*Claims, error) {
	claims, err := s.parse(raw, purposeRefresh)
	if err != nil {
		return nil, err
	}
	if claims.Email == "" {
		return nil, fmt.Errorf("%w: missing email claim", ErrTokenMalformed)
	}
	return claims, nil
}

// ValidateAccessToken is the mirror of ValidateRefreshToken: refresh tokens are
// rejected so they cannot authorize API calls.
func (s *Service) ValidateAccessToken(raw string) (*Claims, error) {
	return s.parse(raw, "")
}

func (s *Service) issue(subject, email, purpose string, ttl time.Duration) (Token, error) {
	now := s.now()
	exp := jwt.NewNumericDate(now.Add(ttl))

	claims := Claims{
		Email: email,
		Type:  purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.cfg.Issuer,
			Subject:   subject,
			Audience:  jwt.ClaimStrings{s.cfg.Audience},
			ExpiresAt: exp,
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.cfg.Secret)
	if err != nil {
		return Token{}, fmt.Errorf("sign jwt: %w", err)
	}
	return Token{Value: signed, ExpiresAt: exp.Time}, nil
}

// parse checks, in order: signature and algorithm, issuer and audience,
// purpose, then expiry. A token of the wrong kind is reported as
// ErrTokenPurpose even when it has also expired.
func (s *Service) parse(raw, purpose string) (*Claims, error) {
	claims := &Claims{}
	_, err := s.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return s.cfg.Secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
	if claims.Issuer != s.cfg.Issuer || !slices.Contains(claims.Audience, s.cfg.Audience) {
		return nil, fmt.Errorf("%w: issuer or audience mismatch", ErrTokenMalformed)
	}
	if claims.Type != purpose {
		return nil, ErrTokenPurpose
	}
	if err := s.validator.Validate(claims); err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject claim", ErrTokenMalformed)
	}
	return claims, nil
}
