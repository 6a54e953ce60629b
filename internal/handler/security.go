package handler

import (
	"context"

	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/xenking/jewel-store/gen/oas"
	"github.com/xenking/jewel-store/internal/domain/auth"
)

// Compile-time check ensuring SecurityHandler satisfies the ogen interface.
var _ oas.SecurityHandler = (*SecurityHandler)(nil)

// Authenticator resolves API keys.
type Authenticator interface {
	Authenticate(ctx context.Context, raw string) (*auth.Principal, error)
}

// SecurityHandler implements ogen's SecurityHandler interface. A key may be
// sent in the api_key header or as a Bearer token; either way it resolves to
// a principal on the request context. Operations that also allow anonymous
// access never reach it without credentials.
type SecurityHandler struct {
	auth Authenticator
}

// NewSecurityHandler creates a SecurityHandler backed by a.
func NewSecurityHandler(a Authenticator) *SecurityHandler {
	return &SecurityHandler{auth: a}
}

// HandleAPIKey authenticates the api_key header.
func (s *SecurityHandler) HandleAPIKey(ctx context.Context, _ oas.OperationName, t oas.APIKey) (context.Context, error) {
	return s.authenticate(ctx, t.APIKey)
}

// HandleBearer authenticates an Authorization: Bearer token.
func (s *SecurityHandler) HandleBearer(ctx context.Context, _ oas.OperationName, t oas.Bearer) (context.Context, error) {
	return s.authenticate(ctx, t.Token)
}

func (s *SecurityHandler) authenticate(ctx context.Context, raw string) (context.Context, error) {
	if p := auth.FromContext(ctx); p != nil {
		// Both headers were sent; the first one already authenticated.
		return ctx, nil
	}
	p, err := s.auth.Authenticate(ctx, raw)
	if err != nil {
		return ctx, err
	}
	ctx = auth.WithPrincipal(ctx, p)
	return zctx.With(ctx, zap.String("api_key_id", p.KeyID)), nil
}

// principal returns the authenticated caller, or auth.ErrUnauthorized.
func principal(ctx context.Context) (*auth.Principal, error) {
	p := auth.FromContext(ctx)
	if p == nil {
		return nil, auth.ErrUnauthorized
	}
	return p, nil
}

// requireAdmin rejects callers without the admin scope.
func requireAdmin(ctx context.Context) (*auth.Principal, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	if !p.Admin {
		return nil, errForbidden
	}
	return p, nil
}
