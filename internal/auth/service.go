package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"phishing-simulator-backend/internal/database/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrTokenRevoked   = errors.New("token has been revoked")
	ErrWrongTokenType = errors.New("wrong token type")
)

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID         string `json:"user_id" example:"3f6c1e0a-8a1b-4c55-9d1e-2b9a6f0c1d2e"`
	Username       string `json:"username" example:"jdoe"`
	Email          string `json:"email" example:"john.doe@example.com"`
	Role           string `json:"role" example:"customer"`
	OrganizationID string `json:"organization_id,omitempty"`
	TokenType      string `json:"token_type" example:"access"`
	// Standard JWT fields; ID carries the jti
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// UUID parses the user id claim
func (c *AuthClaims) UUID() (uuid.UUID, error) {
	return uuid.Parse(c.UserID)
}

// OrganizationUUID parses the organization claim; nil when the user has none
func (c *AuthClaims) OrganizationUUID() *uuid.UUID {
	if c.OrganizationID == "" {
		return nil
	}
	id, err := uuid.Parse(c.OrganizationID)
	if err != nil {
		return nil
	}
	return &id
}

// TokenPair is what a successful login returns
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AuthService issues and validates tokens
type AuthService struct {
	config    *AuthConfig
	blacklist Blacklist
	now       func() time.Time
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, blacklist Blacklist) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{
		config:    config,
		blacklist: blacklist,
		now:       time.Now,
	}, nil
}

// GenerateTokenPair issues an access and a refresh token for the user
func (s *AuthService) GenerateTokenPair(user *models.User) (*TokenPair, error) {
	access, err := s.generate(user, TokenTypeAccess, s.config.AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.generate(user, TokenTypeRefresh, s.config.RefreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{Access: access, Refresh: refresh}, nil
}

// GenerateAccessToken issues an access token for the user
func (s *AuthService) GenerateAccessToken(user *models.User) (string, error) {
	return s.generate(user, TokenTypeAccess, s.config.AccessTokenTTL)
}

func (s *AuthService) generate(user *models.User, tokenType string, ttl time.Duration) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID:    user.ID.String(),
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   user.ID.String(),
		},
	}
	if user.OrganizationID != nil {
		claims.OrganizationID = user.OrganizationID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates an access token and returns its claims
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, ErrWrongTokenType
	}
	return claims, nil
}

// ValidateRefreshToken validates a refresh token and checks it has not been revoked
func (s *AuthService) ValidateRefreshToken(ctx context.Context, tokenString string) (*AuthClaims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeRefresh {
		return nil, ErrWrongTokenType
	}
	if s.blacklist != nil {
		revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check token blacklist: %w", err)
		}
		if revoked {
			return nil, ErrTokenRevoked
		}
	}
	return claims, nil
}

// RevokeRefreshToken blacklists a refresh token until it expires
func (s *AuthService) RevokeRefreshToken(ctx context.Context, tokenString string) error {
	claims, err := s.ValidateRefreshToken(ctx, tokenString)
	if err != nil {
		return err
	}
	if s.blacklist == nil {
		return nil
	}
	expiresAt := s.now().Add(s.config.RefreshTokenTTL)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	return s.blacklist.Revoke(ctx, claims.ID, expiresAt)
}

func (s *AuthService) parse(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
