// Package auth authenticates API keys and carries the caller identity
// through request contexts.
package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"slices"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

// ScopeAdmin grants access to back-office operations.
const ScopeAdmin = "admin"

var (
	// ErrNotFound is returned by Repository when no key matches the hash.
	ErrNotFound = errors.New("api key not found")
	// ErrUnauthorized is returned for unknown, revoked or malformed keys.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIKey is a stored API key. Only the HMAC hash of the secret is kept.
type APIKey struct {
	ID      string
	KeyHash string
	Name    string
	UserID  *uuid.UUID
	Scopes  []string
	Active  bool
}

// Repository provides lookup of API keys by their HMAC hash.
type Repository interface {
	FindByHash(ctx context.Context, hash string) (*APIKey, error)
}

// Principal is the authenticated caller.
type Principal struct {
	KeyID  string
	Name   string
	UserID *uuid.UUID
	Admin  bool
}

// Owns reports whether the caller may see a resource belonging to userID.
func (p *Principal) Owns(userID *uuid.UUID) bool {
	if p == nil {
		return false
	}
	if p.Admin {
		return true
	}
	return p.UserID != nil && userID != nil && *p.UserID == *userID
}

// HashKey returns the hex HMAC-SHA256 of key under pepper.
func HashKey(pepper []byte, key string) string {
	mac := hmac.New(sha256.New, pepper)
	mac.Write([]byte(key))
	return hex.EncodeToString(mac.Sum(nil))
}

// Authenticator resolves raw API keys to principals.
type Authenticator struct {
	keys   Repository
	pepper []byte
}

// NewAuthenticator creates an Authenticator with the given key repository and
// HMAC pepper.
func NewAuthenticator(keys Repository, pepper []byte) *Authenticator {
	return &Authenticator{keys: keys, pepper: pepper}
}

// Authenticate hashes the raw key, looks it up and compares the stored hash
// in constant time.
func (a *Authenticator) Authenticate(ctx context.Context, raw string) (*Principal, error) {
	if raw == "" {
		return nil, ErrUnauthorized
	}
	hexHash := HashKey(a.pepper, raw)

	key, err := a.keys.FindByHash(ctx, hexHash)
	switch {
	case errors.Is(err, ErrNotFound):
		return nil, ErrUnauthorized
	case err != nil:
		return nil, errors.Wrap(err, "find api key")
	}
	if !key.Active {
		return nil, ErrUnauthorized
	}

	stored, err := hex.DecodeString(key.KeyHash)
	if err != nil {
		return nil, ErrUnauthorized
	}
	computed, _ := hex.DecodeString(hexHash)
	if subtle.ConstantTimeCompare(computed, stored) != 1 {
		return nil, ErrUnauthorized
	}

	return &Principal{
		KeyID:  key.ID,
		Name:   key.Name,
		UserID: key.UserID,
		Admin:  slices.Contains(key.Scopes, ScopeAdmin),
	}, nil
}

type principalKey struct{}

// WithPrincipal attaches p to ctx.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext returns the authenticated principal, or nil for anonymous
// callers.
func FromContext(ctx context.Context) *Principal {
	p, _ := ctx.Value(principalKey{}).(*Principal)
	return p
}
