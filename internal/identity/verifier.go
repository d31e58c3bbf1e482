package identity

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/lumiderm/lumiderm/internal/config"
)

// System verifies raw bearer tokens into authenticated principals.
type System interface {
	Verify(ctx context.Context, rawToken string) (*Principal, error)
}

type verifier struct {
	cfg    config.IdentityConfig
	logger *slog.Logger

	mu   sync.Mutex
	oidc *oidc.IDTokenVerifier
}

// New creates an identity System for the configured OIDC issuer. Provider
// discovery is deferred to the first verification so the service can start
// while the identity provider is briefly unreachable.
func New(cfg config.IdentityConfig, logger *slog.Logger) System {
	return &verifier{
		cfg:    cfg,
		logger: logger.With("system", "identity"),
	}
}

func (v *verifier) Verify(ctx context.Context, rawToken string) (*Principal, error) {
	tokenVerifier, err := v.tokenVerifier(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	token, err := tokenVerifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	if token.Subject == "" {
		return nil, fmt.Errorf("%w: token missing subject", ErrInvalidResponse)
	}

	var claims struct {
		Email string `json:"email"`
	}
	if err := token.Claims(&claims); err != nil {
		return nil, fmt.Errorf("%w: decode claims: %w", ErrInvalidResponse, err)
	}

	return &Principal{
		ID:    token.Subject,
		Email: claims.Email,
	}, nil
}

func (v *verifier) tokenVerifier(ctx context.Context) (*oidc.IDTokenVerifier, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.oidc != nil {
		return v.oidc, nil
	}

	provider, err := oidc.NewProvider(ctx, v.cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("discover issuer %s: %w", v.cfg.Issuer, err)
	}

	v.oidc = provider.Verifier(&oidc.Config{ClientID: v.cfg.Audience})
	v.logger.Info("identity provider discovered", "issuer", v.cfg.Issuer)
	return v.oidc, nil
}
