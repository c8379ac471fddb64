package services

import (
	"context"
	"errors"
	"time"

	"partnerhub/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type CustomClaims struct {
	Username string      `json:"username"`
	Role     models.Role `json:"role"`
	jwt.RegisteredClaims
}

type Authentication struct {
	secret      []byte
	ttl         time.Duration
	revocations Revocations
}

func NewAuthentication(secret string, ttl time.Duration, revocations Revocations) (*Authentication, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	return &Authentication{[]byte(secret), ttl, revocations}, nil
}

func (authentication *Authentication) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (authentication *Authentication) ComparePassword(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (authentication *Authentication) CreateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := &CustomClaims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(authentication.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(authentication.secret)
}

func (authentication *Authentication) Validate(ctx context.Context, token string) (*models.UserFromAuth, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		return authentication.secret, nil
	}
	jwtToken, err := jwt.ParseWithClaims(token, &CustomClaims{}, keyFunc, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := jwtToken.Claims.(*CustomClaims)
	if !ok || claims.Subject == "" || claims.ID == "" || claims.ExpiresAt == nil {
		return nil, errors.New("invalid token claims")
	}

	revoked, err := authentication.revocations.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, ErrSessionRevoked
	}

	return &models.UserFromAuth{
		ID:        claims.Subject,
		Username:  claims.Username,
		Role:      claims.Role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Revoke blocks the token until it would have expired anyway.
func (authentication *Authentication) Revoke(ctx context.Context, session *models.UserFromAuth) error {
	return authentication.revocations.Revoke(ctx, session.TokenID, session.ExpiresAt)
}
