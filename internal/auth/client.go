// Package auth validates service tokens for the admin endpoints.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid service token")

// ServiceClaims are the claims carried by a service token.
type ServiceClaims struct {
	ServiceName string   `json:"service_name"`
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

// HasPermission reports whether the token grants the named permission.
func (c *ServiceClaims) HasPermission(permission string) bool {
	for _, p := range c.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// Client validates HMAC-signed service tokens.
type Client struct {
	secret []byte
}

func NewClient(secret string) *Client {
	return &Client{secret: []byte(secret)}
}

// ValidateServiceToken parses and validates a service token string.
func (c *Client) ValidateServiceToken(tokenString string) (*ServiceClaims, error) {
	if len(c.secret) == 0 {
		return nil, fmt.Errorf("%w: no signing secret configured", ErrInvalidToken)
	}

	claims := &ServiceClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// IssueServiceToken mints a token for the named service. Used by tests and
// local tooling.
func (c *Client) IssueServiceToken(serviceName string, permissions []string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &ServiceClaims{
		ServiceName: serviceName,
		Permissions: permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   serviceName,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}
